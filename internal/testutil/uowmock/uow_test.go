package uowmock

import (
	"context"
	"errors"
	"testing"

	"greenmarket-backend/internal/domain/project"
	"greenmarket-backend/internal/domain/quotation"
	"greenmarket-backend/internal/domain/uow"
	"greenmarket-backend/internal/testutil/projectmock"
	"greenmarket-backend/internal/testutil/quotationmock"
)

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinQuotationTx(ctx, "q", func(uow.Repos, *quotation.Quotation) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinQuotationTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinProjectTx(ctx, "p", func(uow.Repos, *project.Project) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinProjectTx default: want errUnimplemented, got %v", err)
	}
}

func TestPassthrough_ForwardsReposAndLockedRows(t *testing.T) {
	ctx := context.Background()
	q := &quotation.Quotation{ID: 7, QuotationID: "Q-7"}
	quotations := &quotationmock.Repo{
		GetByQuotationIDForUpdateFn: func(_ context.Context, id string) (*quotation.Quotation, error) {
			if id != "Q-7" {
				return nil, errors.New("no rows")
			}
			return q, nil
		},
	}
	repos := uow.Repos{Quotations: quotations, Projects: &projectmock.Repo{}}
	m := Passthrough(repos)

	called := false
	err := m.WithinQuotationTx(ctx, "Q-7", func(r uow.Repos, got *quotation.Quotation) error {
		called = true
		if got != q || r.Quotations != quotations {
			t.Fatalf("rows not forwarded: %+v", got)
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("WithinQuotationTx: called=%v err=%v", called, err)
	}

	if err := m.WithinQuotationTx(ctx, "missing", func(uow.Repos, *quotation.Quotation) error { return nil }); !errors.Is(err, quotation.ErrNotFound) {
		t.Fatalf("missing quotation err = %v", err)
	}
	// projectmock default reader returns context.Canceled
	if err := m.WithinProjectTx(ctx, "p", func(uow.Repos, *project.Project) error { return nil }); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("missing project err = %v", err)
	}

	m.Reset()
	if m.WithinTxFn != nil || m.WithinQuotationTxFn != nil || m.WithinProjectTxFn != nil {
		t.Fatal("Reset should clear function fields")
	}
}
