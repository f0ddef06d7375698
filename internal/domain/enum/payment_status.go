package enum

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// PaymentStatus represents whether a bill has been settled. The wire and
// ledger formats carry it as the literal strings "Paid" / "Unpaid".
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "Paid"
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPaid || s == PaymentStatusUnpaid
}

// ParsePaymentStatus normalizes a textual status, accepting any casing.
func ParsePaymentStatus(v string) (PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "paid":
		return PaymentStatusPaid, nil
	case "unpaid":
		return PaymentStatusUnpaid, nil
	}
	return "", fmt.Errorf("unknown payment status %q", v)
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	}
	return nil
}
