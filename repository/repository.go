// Package repository persists solved dispatch plans to a local SQLite
// database, the way the teacher repository persists telemetry readings
// before upload - repurposed here to store FleetResults rather than stage
// them for upload to an external service (SPEC_FULL.md §9).
package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cepro/fleetoptimizer/results"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Repository stores solved FleetResults to the local file system (sqlite).
type Repository struct {
	db *gorm.DB
}

func New(path string) (*Repository, error) {

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Migrate the schema
	err = db.AutoMigrate(&StoredFleetResult{})
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

// StoreResult persists one site's solved FleetResult.
func (r *Repository) StoreResult(siteID int, requestedAt time.Time, res results.FleetResult) error {
	records := res.Power.Records()
	powerJSON, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode power table: %w", err)
	}

	stored := newStoredFleetResult(siteID, requestedAt, res.Status.String(), res.Objective, res.Nodes, res.PeakImport, res.PeakExport, string(powerJSON))
	result := r.db.Create(&stored)
	return result.Error
}

// GetResults returns the most recent results for a site, newest first.
func (r *Repository) GetResults(siteID int, limit int) ([]StoredFleetResult, error) {
	var rows []StoredFleetResult

	query := r.db.Where("site_id = ?", siteID).Limit(limit).Order("requested_at desc")
	result := query.Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// DeleteResult removes a stored result by ID.
func (r *Repository) DeleteResult(id uint) error {
	result := r.db.Delete(&StoredFleetResult{}, id)
	return result.Error
}
