package enum

// PaymentType is how an invoice is settled
type PaymentType string

const (
	PaymentTypeCash   PaymentType = "cash"
	PaymentTypeCredit PaymentType = "credit"
)

// Valid reports whether the payment type is one of the known values
func (p PaymentType) Valid() bool {
	return p == PaymentTypeCash || p == PaymentTypeCredit
}
