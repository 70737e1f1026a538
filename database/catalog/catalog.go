// Package catalog holds the fixed service and helper reference data. The
// catalog is seeded once at startup and never mutated afterwards, so reads
// need no synchronization.
package catalog

import (
	"fmt"

	"snabbit/models"
)

// ServiceRepository exposes read access to the service catalog.
type ServiceRepository interface {
	GetAll() []models.Service
	GetByID(id int) (*models.Service, error)
	GetByName(name string) (*models.Service, error)
}

// HelperRepository exposes read access to the helper catalog.
type HelperRepository interface {
	GetAll() []models.HelperProfile
	GetByID(id int) (*models.HelperProfile, error)
}

// MemoryCatalog is the in-memory catalog store backing both repositories.
type MemoryCatalog struct {
	services []models.Service
	helpers  []models.HelperProfile
}

// NewMemoryCatalog builds a catalog from the given reference data. Use
// NewSeededCatalog for the standard marketplace data set.
func NewMemoryCatalog(services []models.Service, helpers []models.HelperProfile) *MemoryCatalog {
	return &MemoryCatalog{services: services, helpers: helpers}
}

// NewSeededCatalog returns the catalog with the standard seeded data.
func NewSeededCatalog() *MemoryCatalog {
	return NewMemoryCatalog(seedServices(), seedHelpers())
}

// GetAll returns a copy of the service list in catalog order.
func (c *MemoryCatalog) GetAll() []models.Service {
	out := make([]models.Service, len(c.services))
	copy(out, c.services)
	return out
}

// GetByID returns the service with the given ID.
func (c *MemoryCatalog) GetByID(id int) (*models.Service, error) {
	for i := range c.services {
		if c.services[i].ID == id {
			svc := c.services[i]
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("service %d not found", id)
}

// GetByName returns the service with the given name (exact match).
func (c *MemoryCatalog) GetByName(name string) (*models.Service, error) {
	for i := range c.services {
		if c.services[i].Name == name {
			svc := c.services[i]
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("service %q not found", name)
}

// Helpers returns the helper-side view of the catalog.
func (c *MemoryCatalog) Helpers() HelperRepository {
	return (*helperView)(c)
}

// helperView adapts MemoryCatalog to HelperRepository.
type helperView MemoryCatalog

func (v *helperView) GetAll() []models.HelperProfile {
	out := make([]models.HelperProfile, len(v.helpers))
	copy(out, v.helpers)
	return out
}

func (v *helperView) GetByID(id int) (*models.HelperProfile, error) {
	for i := range v.helpers {
		if v.helpers[i].ID == id {
			h := v.helpers[i]
			return &h, nil
		}
	}
	return nil, fmt.Errorf("helper %d not found", id)
}
