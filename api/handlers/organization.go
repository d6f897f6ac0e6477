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

// Organization exported for testing purposes. One instance serves one of the
// three collections; Kind only flavors the error messages.
type Organization struct {
	DB   databases.OrganizationDatabase
	Kind string
}

// ListHandler returns all organizations in the collection
func (o Organization) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := o.DB.List(ctx)
	if err != nil {
		config.ErrorStatus(fmt.Sprintf("failed to get %ss", o.Kind), http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateHandler validates and registers a new organization
func (o Organization) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var org models.Organization
	if err := json.NewDecoder(r.Body).Decode(&org); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := org.Validate(); err != nil {
		config.ErrorStatus(fmt.Sprintf("%s validation failed", o.Kind), http.StatusBadRequest, w, err)
		return
	}

	created, err := o.DB.Create(ctx, org)
	if err != nil {
		config.ErrorStatus(fmt.Sprintf("failed to create %s", o.Kind), http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(created)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UpdateHandler replaces an organization's details, keeping its id
func (o Organization) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	orgID := mux.Vars(r)["org_id"]

	var org models.Organization
	if err := json.NewDecoder(r.Body).Decode(&org); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := org.Validate(); err != nil {
		config.ErrorStatus(fmt.Sprintf("%s validation failed", o.Kind), http.StatusBadRequest, w, err)
		return
	}

	updated, err := o.DB.Update(ctx, orgID, org)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, databases.ErrOrganizationNotFound) {
			status = http.StatusNotFound
		}
		config.ErrorStatus(fmt.Sprintf("failed to update %s", o.Kind), status, w, err)
		return
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteHandler removes an organization by id
func (o Organization) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	orgID := mux.Vars(r)["org_id"]

	if err := o.DB.Delete(ctx, orgID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, databases.ErrOrganizationNotFound) {
			status = http.StatusNotFound
		}
		config.ErrorStatus(fmt.Sprintf("failed to delete %s", o.Kind), status, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"deleted": "%s"}`, orgID)))
}
