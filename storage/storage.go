// Package storage persists the service catalog behind a small interface so
// the selection engine and admin handlers never see a concrete backend.
package storage

import "sreepix-backend/models"

// CatalogStore is the persistence contract for the service catalog.
//
// List never fails because the catalog is absent: a missing catalog is
// self-healing and yields an empty slice. Replace is a full overwrite of the
// catalog, not a merge; concurrent Replace calls race and the last writer
// wins. The tool assumes a single admin, so no optimistic concurrency is
// layered on top.
type CatalogStore interface {
	List() ([]models.ServiceItem, error)
	Replace(items []models.ServiceItem) error
}

// validateAll rejects catalogs containing structurally invalid items, most
// importantly unknown categories, which would otherwise vanish from every
// category group in the UI.
func validateAll(items []models.ServiceItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}
