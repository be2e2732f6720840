package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	maintenanceDomain "greenmarket-backend/internal/domain/maintenance"
	"greenmarket-backend/pkg/id"

	"gorm.io/gorm"
)

func scheduleMaintenance(t *testing.T, projectNumericID uint64) *maintenanceDomain.Maintenance {
	t.Helper()
	now := time.Now().UTC()
	m, err := maintenanceDomain.New(id.NewID32(), projectNumericID, "pppppppppppppppppppppppppppppppp", now.AddDate(0, 0, 7), "", now)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestMaintenance_OneOpenPerProject(t *testing.T) {
	db := openTestDB(t)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	first := scheduleMaintenance(t, 3)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, scheduleMaintenance(t, 3)); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("second open err = %v, want ErrDuplicatedKey", err)
	}
	// other projects are unaffected
	if err := repo.Create(ctx, scheduleMaintenance(t, 4)); err != nil {
		t.Fatalf("Create other project: %v", err)
	}

	open, err := repo.GetOpenByProject(ctx, 3)
	if err != nil || open.MaintenanceID != first.MaintenanceID {
		t.Fatalf("GetOpenByProject = %+v, %v", open, err)
	}

	locked, err := repo.GetByMaintenanceIDForUpdate(ctx, first.MaintenanceID)
	if err != nil {
		t.Fatalf("GetByMaintenanceIDForUpdate: %v", err)
	}
	now := time.Now().UTC()
	if err := locked.Confirm(now); err != nil {
		t.Fatal(err)
	}
	if err := locked.Complete(now); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, locked); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := repo.GetOpenByProject(ctx, 3); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetOpenByProject after complete err = %v", err)
	}
	if err := repo.Create(ctx, scheduleMaintenance(t, 3)); err != nil {
		t.Fatalf("next cycle: %v", err)
	}

	list, err := repo.ListByProject(ctx, 3)
	if err != nil || len(list) != 2 {
		t.Fatalf("ListByProject = %d, %v", len(list), err)
	}
	got, err := repo.GetByMaintenanceID(ctx, first.MaintenanceID)
	if err != nil || got.Status != maintenanceDomain.StatusCompleted || got.CompletedAt == nil {
		t.Fatalf("GetByMaintenanceID = %+v, %v", got, err)
	}
}
