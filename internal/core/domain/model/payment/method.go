package payment

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Method identifies how an order is paid. Cash on delivery settles at the
// door; the three electronic variants settle through the simulated gateway.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodCOD is cash on delivery.
	MethodCOD

	// MethodJazzCash is the JazzCash mobile wallet.
	MethodJazzCash

	// MethodEasyPaisa is the EasyPaisa mobile wallet.
	MethodEasyPaisa

	// MethodCard is a debit/credit card.
	MethodCard
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:   "unknown",
		MethodCOD:       "cod",
		MethodJazzCash:  "jazzcash",
		MethodEasyPaisa: "easypaisa",
		MethodCard:      "card",
	}
}

func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodCOD:       "cod",
		MethodJazzCash:  "jazzcash",
		MethodEasyPaisa: "easypaisa",
		MethodCard:      "card",
	}
}

// MethodFromString parses a wire/persistence representation of a method.
// Returns an error for unrecognized input.
func MethodFromString(s string) (Method, error) {
	for m, str := range getValidMethodStrings() {
		if str == s {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method",
		fmt.Errorf("%q is not a recognized payment method", s),
	)
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the persistence/wire name of the method.
// This method implements the fmt.Stringer interface.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// IsElectronic reports whether the method settles through the payment gateway
// rather than in cash at the door.
func (m Method) IsElectronic() bool {
	return m == MethodJazzCash || m == MethodEasyPaisa || m == MethodCard
}

// IsWallet reports whether the method is a mobile wallet requiring a phone
// number as payment metadata.
func (m Method) IsWallet() bool {
	return m == MethodJazzCash || m == MethodEasyPaisa
}

// transactionPrefix returns the method-specific transaction id prefix.
func (m Method) transactionPrefix() string {
	switch m {
	case MethodCOD:
		return "FD-COD"
	case MethodJazzCash:
		return "FD-JC"
	case MethodEasyPaisa:
		return "FD-EP"
	case MethodCard:
		return "FD-CARD"
	default:
		return "FD-PAY"
	}
}
