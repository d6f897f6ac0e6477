package databases

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/storage"
)

// AccountsKey is the storage key holding the login accounts collection
const AccountsKey = "justiceflow_accounts"

// Account lookup and credential errors
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrPasswordMismatch = errors.New("current password does not match")
	ErrEmailTaken       = errors.New("an account with this email already exists")
)

// AccountDatabase contains the methods to use with the accounts collection
type AccountDatabase interface {
	List(ctx context.Context) ([]models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	Create(ctx context.Context, account models.Account) (models.Account, error)
	Update(ctx context.Context, id string, account models.Account) (models.Account, error)
	Delete(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, email, current, next string) error
}

type accountDatabase struct {
	backend storage.Backend
}

// NewAccountDatabase initializes a new instance of the account database over
// the provided storage backend
func NewAccountDatabase(backend storage.Backend) AccountDatabase {
	return &accountDatabase{backend: backend}
}

func (a *accountDatabase) List(ctx context.Context) ([]models.Account, error) {
	raw, err := a.backend.Get(ctx, AccountsKey)
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, err
	}

	if err == nil {
		var accounts []models.Account
		if jsonErr := json.Unmarshal(raw, &accounts); jsonErr == nil {
			return accounts, nil
		}
		zap.S().Warnw("account blob is corrupt, reseeding", "key", AccountsKey)
	}

	accounts := SeedAccounts()
	if err := a.persist(ctx, accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// FindByEmail matches emails case-insensitively; the login form does not
// normalize what the user types.
func (a *accountDatabase) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	accounts, err := a.List(ctx)
	if err != nil {
		return models.Account{}, err
	}
	for _, account := range accounts {
		if strings.EqualFold(account.Email, email) {
			return account, nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

// Create assigns the next USR id and appends the account. Emails are unique
// across the collection.
func (a *accountDatabase) Create(ctx context.Context, account models.Account) (models.Account, error) {
	accounts, err := a.List(ctx)
	if err != nil {
		return models.Account{}, err
	}
	for _, existing := range accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return models.Account{}, ErrEmailTaken
		}
	}
	account.ID = nextAccountID(accounts)
	if account.Status == "" {
		account.Status = models.AccountActive
	}
	accounts = append(accounts, account)
	if err := a.persist(ctx, accounts); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// Update replaces every field except the id and, when the update carries no
// password, the stored password.
func (a *accountDatabase) Update(ctx context.Context, id string, account models.Account) (models.Account, error) {
	accounts, err := a.List(ctx)
	if err != nil {
		return models.Account{}, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			account.ID = id
			if account.Password == "" {
				account.Password = accounts[i].Password
			}
			accounts[i] = account
			if err := a.persist(ctx, accounts); err != nil {
				return models.Account{}, err
			}
			return account, nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

func (a *accountDatabase) Delete(ctx context.Context, id string) error {
	accounts, err := a.List(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			accounts = append(accounts[:i], accounts[i+1:]...)
			return a.persist(ctx, accounts)
		}
	}
	return ErrAccountNotFound
}

// UpdatePassword verifies the current password before writing the new one.
// The new password must already have passed models.ValidatePassword.
func (a *accountDatabase) UpdatePassword(ctx context.Context, email, current, next string) error {
	accounts, err := a.List(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) {
			if accounts[i].Password != current {
				return ErrPasswordMismatch
			}
			accounts[i].Password = next
			return a.persist(ctx, accounts)
		}
	}
	return ErrAccountNotFound
}

func (a *accountDatabase) persist(ctx context.Context, accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return errors.Wrap(err, "failed to marshal account collection")
	}
	return a.backend.Put(ctx, AccountsKey, raw)
}

func nextAccountID(accounts []models.Account) string {
	orgs := make([]models.Organization, len(accounts))
	for i, account := range accounts {
		orgs[i].ID = account.ID
	}
	return NextID(orgs, "USR")
}
