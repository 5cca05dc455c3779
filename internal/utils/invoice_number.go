package utils

import (
	"github.com/oklog/ulid/v2"
)

// invoiceNumberPrefix is the human-readable prefix on invoice numbers.
const invoiceNumberPrefix = "INV-"

// NewInvoiceNumber allocates a unique, time-ordered invoice number.
func NewInvoiceNumber() string {
	return invoiceNumberPrefix + ulid.Make().String()
}
