package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
)

func TestCreateTransactionPurchaseAddsStock(t *testing.T) {
	medicine := &entity.Medicine{Name: "Metformin 500mg", StockQuantity: 10}
	medicineRepo := newFakeMedicineRepo(medicine)
	svc := NewTransactionService(&fakeTransactionRepo{}, medicineRepo)

	tx, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:       enum.TransactionTypePurchase,
		MedicineID: medicine.ID,
		Quantity:   25,
		UnitPrice:  4.5,
	})
	require.NoError(t, err)

	assert.Equal(t, 35, medicineRepo.medicines[medicine.ID].StockQuantity)
	assert.InDelta(t, 112.5, tx.TotalPrice, 1e-9)
}

func TestCreateTransactionSaleRemovesStock(t *testing.T) {
	medicine := &entity.Medicine{Name: "Metformin 500mg", StockQuantity: 10}
	medicineRepo := newFakeMedicineRepo(medicine)
	svc := NewTransactionService(&fakeTransactionRepo{}, medicineRepo)

	_, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:       enum.TransactionTypeSale,
		MedicineID: medicine.ID,
		Quantity:   4,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, medicineRepo.medicines[medicine.ID].StockQuantity)
}

func TestCreateTransactionSaleInsufficientStock(t *testing.T) {
	medicine := &entity.Medicine{Name: "Metformin 500mg", StockQuantity: 3}
	medicineRepo := newFakeMedicineRepo(medicine)
	transactionRepo := &fakeTransactionRepo{}
	svc := NewTransactionService(transactionRepo, medicineRepo)

	_, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:       enum.TransactionTypeSale,
		MedicineID: medicine.ID,
		Quantity:   5,
	})
	require.Error(t, err)
	assert.Equal(t, 3, medicineRepo.medicines[medicine.ID].StockQuantity)
	assert.Empty(t, transactionRepo.transactions)
}

func TestCreateTransactionNegativeAdjustment(t *testing.T) {
	medicine := &entity.Medicine{Name: "Insulin", StockQuantity: 8}
	medicineRepo := newFakeMedicineRepo(medicine)
	svc := NewTransactionService(&fakeTransactionRepo{}, medicineRepo)

	tx, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:       enum.TransactionTypeAdjustment,
		MedicineID: medicine.ID,
		Quantity:   -3,
		UnitPrice:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, medicineRepo.medicines[medicine.ID].StockQuantity)
	assert.Equal(t, -3, tx.Quantity, "adjustment keeps its sign in the ledger")
	assert.InDelta(t, 6.0, tx.TotalPrice, 1e-9, "total price uses the magnitude")
}

func TestCreateTransactionAdjustmentBelowZero(t *testing.T) {
	medicine := &entity.Medicine{Name: "Insulin", StockQuantity: 2}
	medicineRepo := newFakeMedicineRepo(medicine)
	svc := NewTransactionService(&fakeTransactionRepo{}, medicineRepo)

	_, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:       enum.TransactionTypeAdjustment,
		MedicineID: medicine.ID,
		Quantity:   -5,
	})
	require.Error(t, err)
	assert.Equal(t, 2, medicineRepo.medicines[medicine.ID].StockQuantity)
}

func TestCreateTransactionNegativeQuantityRejectedForSales(t *testing.T) {
	medicine := &entity.Medicine{Name: "Insulin", StockQuantity: 10}
	svc := NewTransactionService(&fakeTransactionRepo{}, newFakeMedicineRepo(medicine))

	for _, txType := range []enum.TransactionType{
		enum.TransactionTypePurchase,
		enum.TransactionTypeSale,
		enum.TransactionTypeReturn,
	} {
		_, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{
			Type:       txType,
			MedicineID: medicine.ID,
			Quantity:   -1,
		})
		assert.Error(t, err, "type %s must reject negative quantities", txType)
	}
}

func TestCreateTransactionInvalidType(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{}, newFakeMedicineRepo())

	_, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:     "transfer",
		Quantity: 1,
	})
	assert.Error(t, err)
}
