package repository

import "time"

// StoredFleetResult is the row persisted to SQLite for one completed
// Optimize() call, so past dispatch plans can be queried back out without
// re-solving - a result table repurposing the original telemetry-reading
// persistence shape (status/attempt bookkeeping columns) for a domain
// where the "reading" is a solved objective value rather than a meter
// sample.
type StoredFleetResult struct {
	ID          uint `gorm:"primaryKey"`
	SiteID      int
	RequestedAt time.Time
	Status      string
	Objective   float64
	Nodes       int
	PeakImport  float64
	PeakExport  float64
	PowerJSON   string // the FleetResult.Power dataframe, JSON-records encoded
}

func newStoredFleetResult(siteID int, requestedAt time.Time, status string, objective float64, nodes int, peakImport, peakExport float64, powerJSON string) StoredFleetResult {
	return StoredFleetResult{
		SiteID:      siteID,
		RequestedAt: requestedAt,
		Status:      status,
		Objective:   objective,
		Nodes:       nodes,
		PeakImport:  peakImport,
		PeakExport:  peakExport,
		PowerJSON:   powerJSON,
	}
}
