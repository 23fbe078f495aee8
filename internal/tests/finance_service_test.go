package tests

import (
	"testing"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestFinanceService_Record(t *testing.T) {
	f := newFixture()

	first := f.finance.Record(domain.TxIncome, service.CategoryDiningRevenue, 38.0, "table 1", false)
	second := f.finance.Record(domain.TxExpense, service.CategoryProcurement, 3.14159, "restock", true)

	// Newest entry sits at the head of the ledger.
	assert.Len(t, f.state.Transactions, 2)
	assert.Equal(t, second.ID, f.state.Transactions[0].ID)
	assert.Equal(t, first.ID, f.state.Transactions[1].ID)

	assert.Equal(t, 3.14, second.Amount)
	assert.Equal(t, domain.InvoicePending, second.InvoiceStatus)
	assert.Equal(t, domain.InvoiceNone, first.InvoiceStatus)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestFinanceService_ReconcileInvoice(t *testing.T) {
	f := newFixture()

	pending := f.finance.Record(domain.TxIncome, service.CategoryDiningRevenue, 100, "table 2", true)
	closed := f.finance.Record(domain.TxIncome, service.CategoryDiningRevenue, 50, "table 3", false)

	// Unknown id is a silent no-op.
	assert.NoError(t, f.finance.ReconcileInvoice("missing", "INV-1"))

	// A transaction that never asked for an invoice cannot receive one.
	assert.ErrorIs(t, f.finance.ReconcileInvoice(closed.ID, "INV-1"), service.ErrInvoiceNotPending)

	assert.NoError(t, f.finance.ReconcileInvoice(pending.ID, "INV-20260901-001"))
	got := f.state.FindTransaction(pending.ID)
	assert.Equal(t, domain.InvoiceCompleted, got.InvoiceStatus)
	assert.Equal(t, "INV-20260901-001", got.InvoiceNo)

	// A completed invoice can never be overwritten.
	assert.ErrorIs(t, f.finance.ReconcileInvoice(pending.ID, "INV-other"), service.ErrInvoiceNotPending)
	assert.Equal(t, "INV-20260901-001", f.state.FindTransaction(pending.ID).InvoiceNo)
}
