// services/backup_service.go
package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"sreepix-backend/storage"
)

// BackupService writes a dated snapshot of the catalog every night. The
// catalog file has last-writer-wins semantics and no history of its own, so
// snapshots are the only way to recover from a bad replace.
type BackupService struct {
	store storage.CatalogStore
	dir   string
}

func NewBackupService(store storage.CatalogStore, dir string) *BackupService {
	if dir == "" {
		dir = filepath.Join("data", "backups")
	}
	return &BackupService{store: store, dir: dir}
}

// StartScheduler snapshots once immediately, then every day at 02:00.
func (s *BackupService) StartScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 2 * * *", func() {
		if err := s.Snapshot(); err != nil {
			log.Error().Err(err).Msg("catalog snapshot failed")
		}
	}); err != nil {
		log.Error().Err(err).Msg("backup schedule registration failed")
		return c
	}

	if err := s.Snapshot(); err != nil {
		log.Error().Err(err).Msg("initial catalog snapshot failed")
	}

	c.Start()
	log.Info().Str("dir", s.dir).Msg("catalog backup scheduler started")
	return c
}

// Snapshot writes the current catalog to a file named for today's date.
// Re-running on the same day overwrites that day's snapshot.
func (s *BackupService) Snapshot() error {
	items, err := s.store.List()
	if err != nil {
		return fmt.Errorf("snapshot catalog: %w", err)
	}

	content, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot catalog: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("snapshot catalog: %w", err)
	}

	name := filepath.Join(s.dir, "services-"+time.Now().Format("2006-01-02")+".json")
	if err := os.WriteFile(name, content, 0o644); err != nil {
		return fmt.Errorf("snapshot catalog: %w", err)
	}
	return nil
}
