package quotation

import "context"

type Repository interface {
	Create(ctx context.Context, q *Quotation) error
	Save(ctx context.Context, q *Quotation) error
	GetByQuotationID(ctx context.Context, quotationID string) (*Quotation, error)
	// Locks the row until the surrounding transaction ends.
	GetByQuotationIDForUpdate(ctx context.Context, quotationID string) (*Quotation, error)
	ListByConsumer(ctx context.Context, consumerID string) ([]Quotation, error)
	ListByCompany(ctx context.Context, companyID string) ([]Quotation, error)
}

type VersionRepository interface {
	// Create relies on the DB unique indexes: one draft per quotation, unique version numbers.
	Create(ctx context.Context, v *Version) error
	Save(ctx context.Context, v *Version) error
	GetByVersionID(ctx context.Context, versionID string) (*Version, error)
	// Ordered by version number, oldest first.
	ListByQuotation(ctx context.Context, quotationNumericID uint64) ([]Version, error)
	GetLatest(ctx context.Context, quotationNumericID uint64) (*Version, error)
}
