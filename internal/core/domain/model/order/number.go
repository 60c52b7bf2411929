package order

import (
	"fmt"
	"regexp"

	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
)

var numberPattern = regexp.MustCompile(`^FD-[0-9A-F]{8}$`)

// NewNumber generates a human-readable, globally unique order number such as
// FD-1A2B3C4D. The eight hex digits come from a fresh uuid4; the database's
// unique constraint on the column backs up the (astronomically unlikely)
// collision case.
func NewNumber() string {
	raw := uuid.New()
	return fmt.Sprintf("FD-%X", raw[:4])
}

// ValidateNumber checks an externally supplied order number against the
// FD-XXXXXXXX format before it is used in lookups.
func ValidateNumber(number string) error {
	if !numberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q does not match FD-XXXXXXXX", number),
		)
	}
	return nil
}
