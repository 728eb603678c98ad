package repository

import (
	"testing"
	"time"

	"github.com/cepro/fleetoptimizer/results"
	"github.com/cepro/fleetoptimizer/solver"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func fakeFleetResult(objective float64) results.FleetResult {
	df := dataframe.New(series.New([]string{"0", "1"}, series.String, "step"))
	return results.FleetResult{
		Status:     solver.StatusOptimal,
		Objective:  objective,
		Nodes:      4,
		PeakImport: 3,
		PeakExport: 1,
		Power:      df,
	}
}

func TestRepository_StoreAndGetResults(t *testing.T) {
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("unexpected error opening repository: %v", err)
	}

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := repo.StoreResult(1, now, fakeFleetResult(42)); err != nil {
		t.Fatalf("unexpected error storing result: %v", err)
	}
	if err := repo.StoreResult(1, now.Add(time.Hour), fakeFleetResult(50)); err != nil {
		t.Fatalf("unexpected error storing second result: %v", err)
	}
	if err := repo.StoreResult(2, now, fakeFleetResult(10)); err != nil {
		t.Fatalf("unexpected error storing result for a different site: %v", err)
	}

	rows, err := repo.GetResults(1, 10)
	if err != nil {
		t.Fatalf("unexpected error fetching results: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 stored results for site 1, got %d", len(rows))
	}
	if rows[0].Objective != 50 {
		t.Fatalf("expected newest result (objective 50) first, got %v", rows[0].Objective)
	}
}

func TestRepository_DeleteResult(t *testing.T) {
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("unexpected error opening repository: %v", err)
	}
	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.StoreResult(1, now, fakeFleetResult(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := repo.GetResults(1, 10)
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected 1 stored row, got %d rows (err=%v)", len(rows), err)
	}

	if err := repo.DeleteResult(rows[0].ID); err != nil {
		t.Fatalf("unexpected error deleting result: %v", err)
	}

	rows, err = repo.GetResults(1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected 0 rows after delete, got %d", len(rows))
	}
}
