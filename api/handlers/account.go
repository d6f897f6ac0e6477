package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/justiceflow/justiceflow-api/api"
	"github.com/justiceflow/justiceflow-api/config"
	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/models"
)

// Account exported for testing purposes
type Account struct {
	DB databases.AccountDatabase
}

// ListHandler returns all accounts with passwords stripped
func (a Account) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := a.DB.List(ctx)
	if err != nil {
		config.ErrorStatus("failed to get accounts", http.StatusInternalServerError, w, err)
		return
	}
	for i := range dbResp {
		dbResp[i].Password = ""
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateHandler validates and registers a new account
func (a Account) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := account.Validate(); err != nil {
		config.ErrorStatus("account validation failed", http.StatusBadRequest, w, err)
		return
	}
	if err := models.ValidatePassword(account.Password); err != nil {
		config.ErrorStatus("password validation failed", http.StatusBadRequest, w, err)
		return
	}

	created, err := a.DB.Create(ctx, account)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, databases.ErrEmailTaken) {
			status = http.StatusConflict
		}
		config.ErrorStatus("failed to create account", status, w, err)
		return
	}
	created.Password = ""

	b, err := json.Marshal(created)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UpdateHandler replaces an account's details, keeping its id and, when the
// request carries no password, its password
func (a Account) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	accountID := mux.Vars(r)["account_id"]

	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := account.Validate(); err != nil {
		config.ErrorStatus("account validation failed", http.StatusBadRequest, w, err)
		return
	}
	if account.Password != "" {
		if err := models.ValidatePassword(account.Password); err != nil {
			config.ErrorStatus("password validation failed", http.StatusBadRequest, w, err)
			return
		}
	}

	updated, err := a.DB.Update(ctx, accountID, account)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, databases.ErrAccountNotFound) {
			status = http.StatusNotFound
		}
		config.ErrorStatus("failed to update account", status, w, err)
		return
	}
	updated.Password = ""

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteHandler removes an account by id
func (a Account) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	accountID := mux.Vars(r)["account_id"]

	if err := a.DB.Delete(ctx, accountID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, databases.ErrAccountNotFound) {
			status = http.StatusNotFound
		}
		config.ErrorStatus("failed to delete account", status, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"deleted": "%s"}`, accountID)))
}

type passwordUpdateRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdatePasswordHandler changes a password after verifying the current one.
// The new password must meet the complexity rule before the store is touched.
func (a Account) UpdatePasswordHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var req passwordUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := models.ValidatePassword(req.NewPassword); err != nil {
		config.ErrorStatus("password validation failed", http.StatusBadRequest, w, err)
		return
	}

	if err := a.DB.UpdatePassword(ctx, req.Email, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, databases.ErrAccountNotFound):
			config.ErrorStatus("failed to get account by email", http.StatusNotFound, w, err)
		case errors.Is(err, databases.ErrPasswordMismatch):
			config.ErrorStatus("current password does not match", http.StatusForbidden, w, err)
		default:
			config.ErrorStatus("failed to update password", http.StatusInternalServerError, w, err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"updated": true}`))
}
