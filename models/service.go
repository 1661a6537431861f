package models

import "fmt"

// Category is the ceremony phase a catalog item belongs to. The set is
// closed; catalog rows carrying anything else are rejected at load time.
type Category string

const (
	CategoryUrudhi      Category = "urudhi"
	CategoryMainEvents  Category = "ennai_seer_reception_wedding"
	CategoryPostWedding Category = "post_wedding"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryUrudhi, CategoryMainEvents, CategoryPostWedding}
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryUrudhi, CategoryMainEvents, CategoryPostWedding:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown service category %q", s)
}

// ServiceItem is one sellable catalog entry. Rates are whole rupees.
type ServiceItem struct {
	ID          string   `json:"id" gorm:"primaryKey"`
	Description string   `json:"description" gorm:"not null"`
	Category    Category `json:"category" gorm:"not null"`
	Unit        string   `json:"unit"`
	Rate        int      `json:"rate" gorm:"not null"`
	DefaultQty  int      `json:"defaultQty,omitempty"`
}

// Validate checks the structural invariants of a catalog entry.
func (s ServiceItem) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("service item missing id")
	}
	if _, err := ParseCategory(string(s.Category)); err != nil {
		return fmt.Errorf("service item %s: %w", s.ID, err)
	}
	if s.Rate < 0 {
		return fmt.Errorf("service item %s: negative rate %d", s.ID, s.Rate)
	}
	if s.DefaultQty < 0 {
		return fmt.Errorf("service item %s: negative default quantity %d", s.ID, s.DefaultQty)
	}
	return nil
}

// SelectedService is a catalog item with a chosen quantity and the computed
// amount. Entries with quantity 0 are removed from a selection, never kept.
// Selections live only for the duration of one booking request.
type SelectedService struct {
	ServiceItem
	Quantity int `json:"quantity"`
	Amount   int `json:"amount"`
}
