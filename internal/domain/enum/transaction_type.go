package enum

// TransactionType classifies a stock movement
type TransactionType string

const (
	TransactionTypePurchase   TransactionType = "purchase"
	TransactionTypeSale       TransactionType = "sale"
	TransactionTypeReturn     TransactionType = "return"
	TransactionTypeAdjustment TransactionType = "adjustment"
)

// Valid reports whether the transaction type is one of the known values
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypePurchase, TransactionTypeSale, TransactionTypeReturn, TransactionTypeAdjustment:
		return true
	}
	return false
}
