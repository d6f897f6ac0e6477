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

// CasesKey is the storage key holding the whole cases collection as one JSON
// array. Older deployments wrote under versioned keys (justiceflow_master_db,
// justiceflow_master_db_v2); those blobs are intentionally ignored so every
// install converges on the same key.
const CasesKey = "justiceflow_cases"

// ErrCaseNotFound is returned when no case matches the requested id
var ErrCaseNotFound = errors.New("case not found")

// CaseDatabase contains the methods to use with the case collection
type CaseDatabase interface {
	FetchAll(ctx context.Context) ([]models.Case, error)
	FindByID(ctx context.Context, id string) (models.Case, error)
	Insert(ctx context.Context, c models.Case) error
	UpdateByID(ctx context.Context, id string, update func(*models.Case)) error
}

type caseDatabase struct {
	backend storage.Backend
}

// NewCaseDatabase initializes a new instance of the case database over the
// provided storage backend
func NewCaseDatabase(backend storage.Backend) CaseDatabase {
	return &caseDatabase{backend: backend}
}

// FetchAll loads the full collection, newest first. A missing or corrupt blob
// is replaced with the seed data rather than surfaced as an error, so a fresh
// install and a damaged one both come up working.
func (c *caseDatabase) FetchAll(ctx context.Context) ([]models.Case, error) {
	raw, err := c.backend.Get(ctx, CasesKey)
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, err
	}

	if err == nil {
		var cases []models.Case
		if jsonErr := json.Unmarshal(raw, &cases); jsonErr == nil {
			normalizeCases(cases)
			return cases, nil
		}
		zap.S().Warnw("case collection blob is corrupt, reseeding", "key", CasesKey)
	}

	cases := SeedCases()
	if err := c.persist(ctx, cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// FindByID matches case ids case-insensitively; the dashboards accept
// hand-typed ids.
func (c *caseDatabase) FindByID(ctx context.Context, id string) (models.Case, error) {
	cases, err := c.FetchAll(ctx)
	if err != nil {
		return models.Case{}, err
	}
	for _, cs := range cases {
		if strings.EqualFold(cs.ID, id) {
			return cs, nil
		}
	}
	return models.Case{}, ErrCaseNotFound
}

// Insert prepends the new case so listings show newest first
func (c *caseDatabase) Insert(ctx context.Context, newCase models.Case) error {
	cases, err := c.FetchAll(ctx)
	if err != nil {
		return err
	}
	cases = append([]models.Case{newCase}, cases...)
	return c.persist(ctx, cases)
}

// UpdateByID applies update to the matching case in place and rewrites the
// collection. When no case matches, the collection is left untouched and no
// error is returned; absent records are not an update failure.
func (c *caseDatabase) UpdateByID(ctx context.Context, id string, update func(*models.Case)) error {
	cases, err := c.FetchAll(ctx)
	if err != nil {
		return err
	}
	for i := range cases {
		if strings.EqualFold(cases[i].ID, id) {
			update(&cases[i])
			return c.persist(ctx, cases)
		}
	}
	return nil
}

func (c *caseDatabase) persist(ctx context.Context, cases []models.Case) error {
	raw, err := json.Marshal(cases)
	if err != nil {
		return errors.Wrap(err, "failed to marshal case collection")
	}
	return c.backend.Put(ctx, CasesKey, raw)
}

func normalizeCases(cases []models.Case) {
	for i := range cases {
		cases[i].Status = models.NormalizeStatus(cases[i].Status)
	}
}
