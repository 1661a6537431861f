package storage

import (
	"fmt"

	"gorm.io/gorm"

	"sreepix-backend/models"
)

// GormStore backs the catalog with a database table, for deployments that
// outgrow the flat file. Replace keeps full-overwrite semantics: the table is
// cleared and repopulated in one transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.ServiceItem{}); err != nil {
		return nil, fmt.Errorf("migrate catalog table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) List() ([]models.ServiceItem, error) {
	items := []models.ServiceItem{}
	if err := s.db.Order("category, id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if err := validateAll(items); err != nil {
		return nil, fmt.Errorf("catalog integrity: %w", err)
	}
	return items, nil
}

func (s *GormStore) Replace(items []models.ServiceItem) error {
	if err := validateAll(items); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ServiceItem{}).Error; err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
		if len(items) == 0 {
			return nil
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		return nil
	})
}
