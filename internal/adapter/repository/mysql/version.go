package mysql

import (
	"context"

	quotationDomain "greenmarket-backend/internal/domain/quotation"

	"gorm.io/gorm"
)

type VersionRepository struct{ db *gorm.DB }

func NewVersionRepository(db *gorm.DB) *VersionRepository { return &VersionRepository{db: db} }

func (r *VersionRepository) Create(ctx context.Context, v *quotationDomain.Version) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// Save writes every column, including a NULL draft slot.
func (r *VersionRepository) Save(ctx context.Context, v *quotationDomain.Version) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VersionRepository) GetByVersionID(ctx context.Context, versionID string) (*quotationDomain.Version, error) {
	var out quotationDomain.Version
	res := r.db.WithContext(ctx).Where("version_id = ?", versionID).First(&out)
	return &out, res.Error
}

func (r *VersionRepository) ListByQuotation(ctx context.Context, quotationNumericID uint64) ([]quotationDomain.Version, error) {
	var out []quotationDomain.Version
	res := r.db.WithContext(ctx).
		Where("quotation_id = ?", quotationNumericID).
		Order("version_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *VersionRepository) GetLatest(ctx context.Context, quotationNumericID uint64) (*quotationDomain.Version, error) {
	var out quotationDomain.Version
	res := r.db.WithContext(ctx).
		Where("quotation_id = ?", quotationNumericID).
		Order("version_number DESC").
		First(&out)
	return &out, res.Error
}
