package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
)

func newInvoiceServiceForTest(meds ...*entity.Medicine) (*InvoiceService, *fakeInvoiceRepo, *fakeMedicineRepo, *fakeTransactionRepo) {
	invoiceRepo := newFakeInvoiceRepo()
	medicineRepo := newFakeMedicineRepo(meds...)
	transactionRepo := &fakeTransactionRepo{}
	return NewInvoiceService(invoiceRepo, medicineRepo, transactionRepo), invoiceRepo, medicineRepo, transactionRepo
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	paracetamol := &entity.Medicine{
		Name:          "Paracetamol 500mg",
		BatchNumber:   "B123",
		HSNCode:       "3004",
		StockQuantity: 50,
	}
	svc, _, medicineRepo, transactionRepo := newInvoiceServiceForTest(paracetamol)

	// qty=10, free=1, discount=5%, rate=90, gst=18%
	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerName: "Ravi Kumar",
		CreatedBy:    "pharmacist@medistock.local",
		Items: []InvoiceItemInput{{
			MedicineID:         paracetamol.ID,
			Quantity:           10,
			FreeQuantity:       1,
			DiscountPercentage: 5,
			Rate:               90,
			GSTPercentage:      18,
		}},
	})
	require.NoError(t, err)
	require.NotNil(t, invoice)

	assert.InDelta(t, 855.0, invoice.TotalAmount, 1e-9)
	assert.InDelta(t, 153.9, invoice.TotalTax, 1e-9)
	assert.InDelta(t, 1008.9, invoice.GrandTotal, 1e-9)
	assert.Equal(t, enum.PaymentTypeCash, invoice.PaymentType, "payment type defaults to cash")

	wantNumber := fmt.Sprintf("INV%s001", time.Now().Format("20060102"))
	assert.Equal(t, wantNumber, invoice.InvoiceNumber)

	require.Len(t, invoice.Items, 1)
	item := invoice.Items[0]
	assert.Equal(t, "B123", item.BatchNumber)
	assert.Equal(t, "3004", item.HSNCode)
	assert.InDelta(t, 153.9, item.GSTAmount, 1e-9)
	assert.InDelta(t, 1008.9, item.TotalAmount, 1e-9)

	// Paid plus free units leave the shelf
	assert.Equal(t, 39, medicineRepo.medicines[paracetamol.ID].StockQuantity)

	require.Len(t, transactionRepo.transactions, 1)
	tx := transactionRepo.transactions[0]
	assert.Equal(t, enum.TransactionTypeSale, tx.Type)
	assert.Equal(t, 11, tx.Quantity)
	require.NotNil(t, tx.ReferenceNumber)
	assert.Equal(t, invoice.InvoiceNumber, *tx.ReferenceNumber)
}

func TestCreateInvoiceRequiresItems(t *testing.T) {
	svc, _, _, _ := newInvoiceServiceForTest()

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerName: "Ravi Kumar",
	})
	assert.Error(t, err)
}

func TestCreateInvoiceUnknownMedicine(t *testing.T) {
	svc, invoiceRepo, _, _ := newInvoiceServiceForTest()

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerName: "Ravi Kumar",
		Items: []InvoiceItemInput{{
			MedicineID: [16]byte{1},
			Quantity:   1,
			Rate:       10,
		}},
	})
	assert.Error(t, err)
	assert.Empty(t, invoiceRepo.invoices)
}

func TestCreateInvoiceInsufficientStock(t *testing.T) {
	amoxicillin := &entity.Medicine{
		Name:          "Amoxicillin 250mg",
		StockQuantity: 5,
	}
	svc, invoiceRepo, medicineRepo, transactionRepo := newInvoiceServiceForTest(amoxicillin)

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerName: "Ravi Kumar",
		Items: []InvoiceItemInput{{
			MedicineID: amoxicillin.ID,
			Quantity:   10,
			Rate:       25,
		}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock")
	assert.Contains(t, err.Error(), "Amoxicillin 250mg")

	// Nothing committed
	assert.Equal(t, 5, medicineRepo.medicines[amoxicillin.ID].StockQuantity)
	assert.Empty(t, invoiceRepo.invoices)
	assert.Empty(t, transactionRepo.transactions)
}

func TestInvoiceNumbersNeverReused(t *testing.T) {
	medicine := &entity.Medicine{Name: "Cetirizine", StockQuantity: 100}
	svc, _, _, _ := newInvoiceServiceForTest(medicine)

	input := func() *CreateInvoiceInput {
		return &CreateInvoiceInput{
			CustomerName: "Walk-in",
			Items: []InvoiceItemInput{{
				MedicineID: medicine.ID,
				Quantity:   1,
				Rate:       12,
			}},
		}
	}

	first, err := svc.CreateInvoice(context.Background(), input())
	require.NoError(t, err)

	// Deleting the first invoice must not free its sequence number
	require.NoError(t, svc.DeleteInvoice(context.Background(), first.ID, "admin@medistock.local"))

	second, err := svc.CreateInvoice(context.Background(), input())
	require.NoError(t, err)

	day := time.Now().Format("20060102")
	assert.Equal(t, fmt.Sprintf("INV%s001", day), first.InvoiceNumber)
	assert.Equal(t, fmt.Sprintf("INV%s002", day), second.InvoiceNumber)
}

func TestDeleteInvoiceRestoresStock(t *testing.T) {
	medicine := &entity.Medicine{Name: "Ibuprofen 400mg", StockQuantity: 30}
	svc, invoiceRepo, medicineRepo, transactionRepo := newInvoiceServiceForTest(medicine)

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerName: "Ravi Kumar",
		Items: []InvoiceItemInput{{
			MedicineID:   medicine.ID,
			Quantity:     4,
			FreeQuantity: 2,
			Rate:         18,
		}},
	})
	require.NoError(t, err)
	require.Equal(t, 24, medicineRepo.medicines[medicine.ID].StockQuantity)

	require.NoError(t, svc.DeleteInvoice(context.Background(), invoice.ID, "admin@medistock.local"))

	assert.Equal(t, 30, medicineRepo.medicines[medicine.ID].StockQuantity)
	assert.Empty(t, invoiceRepo.invoices)

	// One sale on create, one return on delete
	require.Len(t, transactionRepo.transactions, 2)
	assert.Equal(t, enum.TransactionTypeReturn, transactionRepo.transactions[1].Type)
	assert.Equal(t, 6, transactionRepo.transactions[1].Quantity)
}

func TestRecomputeTotalsMatchesStored(t *testing.T) {
	medicine := &entity.Medicine{Name: "Azithromycin", StockQuantity: 100}
	svc, _, _, _ := newInvoiceServiceForTest(medicine)

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerName: "Ravi Kumar",
		Items: []InvoiceItemInput{
			{MedicineID: medicine.ID, Quantity: 3, DiscountPercentage: 10, Rate: 110.5, GSTPercentage: 12},
			{MedicineID: medicine.ID, Quantity: 2, Rate: 45.25, GSTPercentage: 5},
		},
	})
	require.NoError(t, err)

	totals, err := svc.RecomputeTotals(invoice)
	require.NoError(t, err)
	assert.InDelta(t, invoice.GrandTotal, totals.GrandTotal, 0.01)
	assert.InDelta(t, invoice.TotalTax, totals.TotalTax, 0.01)
	assert.InDelta(t, invoice.TotalAmount, totals.Subtotal, 0.01)
}
