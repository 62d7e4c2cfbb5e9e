package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
)

// fakeMedicineRepo is an in-memory MedicineRepository for service tests.
type fakeMedicineRepo struct {
	medicines  map[uuid.UUID]*entity.Medicine
	decrements []map[uuid.UUID]int
	increments []map[uuid.UUID]int
}

func newFakeMedicineRepo(meds ...*entity.Medicine) *fakeMedicineRepo {
	repo := &fakeMedicineRepo{medicines: make(map[uuid.UUID]*entity.Medicine)}
	for _, m := range meds {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		repo.medicines[m.ID] = m
	}
	return repo
}

func (r *fakeMedicineRepo) Create(ctx context.Context, medicine *entity.Medicine) error {
	if medicine.ID == uuid.Nil {
		medicine.ID = uuid.New()
	}
	r.medicines[medicine.ID] = medicine
	return nil
}

func (r *fakeMedicineRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	return r.medicines[id], nil
}

func (r *fakeMedicineRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Medicine, error) {
	out := make([]entity.Medicine, 0, len(ids))
	for _, id := range ids {
		if m, ok := r.medicines[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMedicineRepo) GetByBatchNumber(ctx context.Context, batchNumber string) (*entity.Medicine, error) {
	for _, m := range r.medicines {
		if m.BatchNumber == batchNumber {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMedicineRepo) Update(ctx context.Context, medicine *entity.Medicine) error {
	r.medicines[medicine.ID] = medicine
	return nil
}

func (r *fakeMedicineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.medicines, id)
	return nil
}

func (r *fakeMedicineRepo) List(ctx context.Context, params *repository.MedicineFilterParams) ([]entity.Medicine, int64, error) {
	out := make([]entity.Medicine, 0, len(r.medicines))
	for _, m := range r.medicines {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMedicineRepo) GetLowStock(ctx context.Context) ([]entity.Medicine, error) {
	var out []entity.Medicine
	for _, m := range r.medicines {
		if m.IsLowStock() {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMedicineRepo) GetExpiring(ctx context.Context, cutoff time.Time) ([]entity.Medicine, error) {
	var out []entity.Medicine
	for _, m := range r.medicines {
		if !m.ExpiryDate.After(cutoff) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMedicineRepo) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if m, ok := r.medicines[id]; ok {
		m.StockQuantity = quantity
	}
	return nil
}

func (r *fakeMedicineRepo) AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	m, ok := r.medicines[id]
	if !ok || m.StockQuantity < amount {
		return false, nil
	}
	m.StockQuantity -= amount
	return true, nil
}

func (r *fakeMedicineRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, amount := range decrements {
		m, ok := r.medicines[id]
		if !ok || m.StockQuantity < amount {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, amount := range decrements {
		r.medicines[id].StockQuantity -= amount
	}
	r.decrements = append(r.decrements, decrements)
	return nil, nil
}

func (r *fakeMedicineRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	for id, amount := range increments {
		if m, ok := r.medicines[id]; ok {
			m.StockQuantity += amount
		}
	}
	r.increments = append(r.increments, increments)
	return nil
}

// fakeInvoiceRepo is an in-memory InvoiceRepository. The per-day sequence is
// monotonic and survives invoice deletion, matching the real implementation.
type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
	seq      map[string]int
}

func newFakeInvoiceRepo(invoices ...*entity.Invoice) *fakeInvoiceRepo {
	repo := &fakeInvoiceRepo{
		invoices: make(map[uuid.UUID]*entity.Invoice),
		seq:      make(map[string]int),
	}
	for _, inv := range invoices {
		if inv.ID == uuid.Nil {
			inv.ID = uuid.New()
		}
		repo.invoices[inv.ID] = inv
	}
	return repo
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.InvoiceNumber == invoiceNumber {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	out := make([]entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) ListBetween(ctx context.Context, start, end time.Time) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, inv := range r.invoices {
		if !inv.InvoiceDate.Before(start) && inv.InvoiceDate.Before(end) {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) NextSequenceForDate(ctx context.Context, date time.Time) (int, error) {
	key := date.Format("20060102")
	r.seq[key]++
	return r.seq[key], nil
}

// fakeTransactionRepo records stock ledger writes.
type fakeTransactionRepo struct {
	transactions []entity.Transaction
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	r.transactions = append(r.transactions, *transaction)
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(ctx context.Context, transactions []entity.Transaction) error {
	r.transactions = append(r.transactions, transactions...)
	return nil
}

func (r *fakeTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for i := range r.transactions {
		if r.transactions[i].ID == id {
			return &r.transactions[i], nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) List(ctx context.Context, params *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	return r.transactions, int64(len(r.transactions)), nil
}

func (r *fakeTransactionRepo) ListRecent(ctx context.Context, limit int) ([]entity.Transaction, error) {
	if limit > len(r.transactions) {
		limit = len(r.transactions)
	}
	return r.transactions[len(r.transactions)-limit:], nil
}

func (r *fakeTransactionRepo) ListByTypeAndRange(ctx context.Context, txType enum.TransactionType, start, end time.Time) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, tx := range r.transactions {
		if tx.Type == txType && !tx.CreatedAt.Before(start) && tx.CreatedAt.Before(end) {
			out = append(out, tx)
		}
	}
	return out, nil
}
