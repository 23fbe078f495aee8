package service

import (
	"log"
	"time"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/storage"

	"github.com/google/uuid"
)

type FinanceService struct {
	state    *storage.Session
	notifier Notifier
}

func NewFinanceService(state *storage.Session, notifier Notifier) *FinanceService {
	return &FinanceService{state: state, notifier: notifier}
}

// Record appends a transaction at the head of the ledger. Head insertion is
// the display order; the ledger is never re-sorted afterwards.
func (s *FinanceService) Record(txType, category string, amount float64, description string, needInvoice bool) *domain.Transaction {
	status := domain.InvoiceNone
	if needInvoice {
		status = domain.InvoicePending
	}
	tx := domain.Transaction{
		ID:            uuid.NewString(),
		Type:          txType,
		Category:      category,
		Amount:        round2(amount),
		Description:   description,
		CreatedAt:     time.Now(),
		InvoiceStatus: status,
	}
	s.state.Transactions = append([]domain.Transaction{tx}, s.state.Transactions...)
	if err := s.state.Flush(); err != nil {
		log.Printf("snapshot flush failed: %v", err)
	}
	return &s.state.Transactions[0]
}

// ReconcileInvoice attaches the invoice number to a pending transaction and
// closes it. An unknown transaction id is a silent no-op; a transaction whose
// invoice is not pending is rejected, so a completed invoice can never be
// overwritten.
func (s *FinanceService) ReconcileInvoice(transactionID, invoiceNo string) error {
	tx := s.state.FindTransaction(transactionID)
	if tx == nil {
		return nil
	}
	if tx.InvoiceStatus != domain.InvoicePending {
		return ErrInvoiceNotPending
	}
	tx.InvoiceStatus = domain.InvoiceCompleted
	tx.InvoiceNo = invoiceNo
	if err := s.state.Flush(); err != nil {
		log.Printf("snapshot flush failed: %v", err)
	}
	s.notifier.Notify("invoice information updated")
	return nil
}

func (s *FinanceService) Transactions() []domain.Transaction {
	return s.state.Transactions
}

var _ FinanceServiceInterface = (*FinanceService)(nil)
