package databases

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/storage"
)

// Storage keys for the three organization collections
const (
	StationsKey  = "justice_stations"
	HospitalsKey = "justice_hospitals"
	CourtsKey    = "justice_courts"
)

// ErrOrganizationNotFound is returned when no organization matches the id
var ErrOrganizationNotFound = errors.New("organization not found")

// OrganizationDatabase contains the methods to use with one organization
// collection. Stations, hospitals and courts each get their own instance.
type OrganizationDatabase interface {
	List(ctx context.Context) ([]models.Organization, error)
	Create(ctx context.Context, org models.Organization) (models.Organization, error)
	Update(ctx context.Context, id string, org models.Organization) (models.Organization, error)
	Delete(ctx context.Context, id string) error
}

type organizationDatabase struct {
	backend storage.Backend
	key     string
	prefix  string
	seed    func() []models.Organization
}

// NewStationDatabase initializes the police station collection
func NewStationDatabase(backend storage.Backend) OrganizationDatabase {
	return &organizationDatabase{backend: backend, key: StationsKey, prefix: "POL", seed: SeedStations}
}

// NewHospitalDatabase initializes the hospital collection
func NewHospitalDatabase(backend storage.Backend) OrganizationDatabase {
	return &organizationDatabase{backend: backend, key: HospitalsKey, prefix: "HOS", seed: SeedHospitals}
}

// NewCourtDatabase initializes the court collection
func NewCourtDatabase(backend storage.Backend) OrganizationDatabase {
	return &organizationDatabase{backend: backend, key: CourtsKey, prefix: "CRT", seed: SeedCourts}
}

func (o *organizationDatabase) List(ctx context.Context) ([]models.Organization, error) {
	raw, err := o.backend.Get(ctx, o.key)
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, err
	}

	if err == nil {
		var orgs []models.Organization
		if jsonErr := json.Unmarshal(raw, &orgs); jsonErr == nil {
			return orgs, nil
		}
		zap.S().Warnw("organization blob is corrupt, reseeding", "key", o.key)
	}

	orgs := o.seed()
	if err := o.persist(ctx, orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Create assigns the next sequential id and appends the organization
func (o *organizationDatabase) Create(ctx context.Context, org models.Organization) (models.Organization, error) {
	orgs, err := o.List(ctx)
	if err != nil {
		return models.Organization{}, err
	}
	org.ID = NextID(orgs, o.prefix)
	orgs = append(orgs, org)
	if err := o.persist(ctx, orgs); err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

func (o *organizationDatabase) Update(ctx context.Context, id string, org models.Organization) (models.Organization, error) {
	orgs, err := o.List(ctx)
	if err != nil {
		return models.Organization{}, err
	}
	for i := range orgs {
		if orgs[i].ID == id {
			org.ID = id
			orgs[i] = org
			if err := o.persist(ctx, orgs); err != nil {
				return models.Organization{}, err
			}
			return org, nil
		}
	}
	return models.Organization{}, ErrOrganizationNotFound
}

func (o *organizationDatabase) Delete(ctx context.Context, id string) error {
	orgs, err := o.List(ctx)
	if err != nil {
		return err
	}
	for i := range orgs {
		if orgs[i].ID == id {
			orgs = append(orgs[:i], orgs[i+1:]...)
			return o.persist(ctx, orgs)
		}
	}
	return ErrOrganizationNotFound
}

func (o *organizationDatabase) persist(ctx context.Context, orgs []models.Organization) error {
	raw, err := json.Marshal(orgs)
	if err != nil {
		return errors.Wrap(err, "failed to marshal organization collection")
	}
	return o.backend.Put(ctx, o.key, raw)
}

// NextID computes the next sequential id for a prefix, e.g. POL-003. The
// sequence is one past the highest existing suffix, so deleting the newest
// entry can reuse its number but deleting older entries never causes clashes.
func NextID(orgs []models.Organization, prefix string) string {
	max := 0
	for _, org := range orgs {
		rest, ok := strings.CutPrefix(org.ID, prefix+"-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, max+1)
}
