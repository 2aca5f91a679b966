package venture

import (
	"fmt"

	"github.com/MyteScripts/investbot/internal/domain"
)

// Catalog holds the immutable set of purchasable venture types
type Catalog struct {
	types []domain.VentureType
	byKey map[string]*domain.VentureType
}

// NewCatalog creates a catalog from the built-in venture types
func NewCatalog() *Catalog {
	return NewCatalogWithTypes(catalogTypes)
}

// NewCatalogWithTypes creates a catalog from an explicit type list.
// Used by tests to pin catalog contents.
func NewCatalogWithTypes(types []domain.VentureType) *Catalog {
	byKey := make(map[string]*domain.VentureType, len(types))
	for i := range types {
		byKey[types[i].Key] = &types[i]
	}
	return &Catalog{types: types, byKey: byKey}
}

// Types returns all catalog entries in display order
func (c *Catalog) Types() []domain.VentureType {
	return c.types
}

// Get returns the venture type for key, or domain.ErrUnknownVentureType
func (c *Catalog) Get(key string) (*domain.VentureType, error) {
	vt, ok := c.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownVentureType, key)
	}
	return vt, nil
}
