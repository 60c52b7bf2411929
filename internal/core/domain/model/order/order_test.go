package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/payment"
	"foodcourt/internal/pkg/errs"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func validPricing(t *testing.T) Pricing {
	t.Helper()
	return Pricing{
		Subtotal:    mustMoney(t, "800.00"),
		DeliveryFee: mustMoney(t, "100.00"),
		Tax:         mustMoney(t, "40.00"),
		GrandTotal:  mustMoney(t, "940.00"),
	}
}

func validLine(t *testing.T) Line {
	t.Helper()
	line, err := NewLine(kernel.NewUUID(), kernel.NewUUID(), 2, mustMoney(t, "250.00"), "extra spicy")
	require.NoError(t, err)
	return line
}

func newTestOrder(t *testing.T, method payment.Method) *Order {
	t.Helper()
	o, err := NewOrder(
		kernel.NewUUID(),
		NewNumber(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]Line{validLine(t)},
		validPricing(t),
		Destination{Address: "12 Canal Road", City: "Lahore"},
		method,
		"leave at the gate",
	)
	require.NoError(t, err)
	return o
}

func Test_NewOrder(t *testing.T) {
	o := newTestOrder(t, payment.MethodCOD)

	assert.NoError(t, o.Validate())
	assert.Equal(t, StatusPending, o.Status())
	assert.Equal(t, PaymentStatePending, o.PaymentState())
	assert.Nil(t, o.DriverID())
	assert.Len(t, o.Lines(), 1)
	assert.Equal(t, "leave at the gate", o.Instructions())
}

func Test_NewOrder_ElectronicMethodStartsPaid(t *testing.T) {
	for _, method := range []payment.Method{payment.MethodJazzCash, payment.MethodEasyPaisa, payment.MethodCard} {
		t.Run(method.String(), func(t *testing.T) {
			o := newTestOrder(t, method)
			assert.Equal(t, PaymentStatePaid, o.PaymentState())
			assert.True(t, o.IsPaid())
		})
	}
}

func Test_NewOrder_RequiresLines(t *testing.T) {
	_, err := NewOrder(
		kernel.NewUUID(),
		NewNumber(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		validPricing(t),
		Destination{Address: "12 Canal Road", City: "Lahore"},
		payment.MethodCOD,
		"",
	)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_NewOrder_RejectsUnbalancedPricing(t *testing.T) {
	pricing := validPricing(t)
	pricing.GrandTotal = mustMoney(t, "941.00")

	_, err := NewOrder(
		kernel.NewUUID(),
		NewNumber(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]Line{validLine(t)},
		pricing,
		Destination{Address: "12 Canal Road", City: "Lahore"},
		payment.MethodCOD,
		"",
	)

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_Destination_Validate(t *testing.T) {
	tests := map[string]Destination{
		"missing address": {City: "Lahore"},
		"missing city":    {Address: "12 Canal Road"},
	}

	for name, destination := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, destination.Validate(), errs.ErrValueIsRequired)
		})
	}
}

func Test_NewLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		line, err := NewLine(kernel.NewUUID(), kernel.NewUUID(), 3, mustMoney(t, "150.00"), "")
		require.NoError(t, err)

		assert.Equal(t, 3, line.Quantity())
		assert.Equal(t, "450.00", line.Subtotal().String())
	})

	t.Run("zero quantity is invalid", func(t *testing.T) {
		_, err := NewLine(kernel.NewUUID(), kernel.NewUUID(), 0, mustMoney(t, "150.00"), "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_Order_TransitionBy(t *testing.T) {
	// every (role, from, to) combination against the lifecycle rules;
	// combinations absent from a role's allowed set must be rejected.
	allowed := map[Role]map[Status][]Status{
		RoleRestaurantOwner: {
			StatusPending:   {StatusConfirmed},
			StatusConfirmed: {StatusPreparing},
			StatusPreparing: {StatusReady},
		},
		RoleDeliveryDriver: {
			StatusReady:    {StatusPickedUp},
			StatusPickedUp: {StatusDelivered},
		},
		RoleCustomer: {
			StatusPending:   {StatusCancelled},
			StatusConfirmed: {StatusCancelled},
		},
		RoleAdmin: {},
	}

	statuses := []Status{
		StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusPickedUp, StatusDelivered, StatusCancelled,
	}
	roles := []Role{RoleCustomer, RoleRestaurantOwner, RoleDeliveryDriver, RoleAdmin}

	isAllowed := func(role Role, from, to Status) bool {
		for _, status := range allowed[role][from] {
			if status == to {
				return true
			}
		}
		return false
	}

	for _, role := range roles {
		for _, from := range statuses {
			for _, to := range statuses {
				t.Run(role.String()+"_"+from.String()+"_to_"+to.String(), func(t *testing.T) {
					o := newTestOrder(t, payment.MethodCOD)
					o.status = from

					err := o.TransitionBy(role, to)

					if isAllowed(role, from, to) {
						require.NoError(t, err)
						assert.Equal(t, to, o.Status())
						return
					}

					assert.Equal(t, from, o.Status())
					if role == RoleCustomer && to == StatusCancelled {
						assert.ErrorIs(t, err, ErrInvalidCancellation)
					} else {
						assert.ErrorIs(t, err, ErrIllegalTransition)
					}
				})
			}
		}
	}
}

func Test_Order_TransitionBy_ReportsStatuses(t *testing.T) {
	o := newTestOrder(t, payment.MethodCOD)

	err := o.TransitionBy(RoleRestaurantOwner, StatusReady)

	var illegal *IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, StatusPending, illegal.From)
	assert.Equal(t, StatusReady, illegal.To)
	assert.Equal(t, RoleRestaurantOwner, illegal.Role)
}

func Test_Order_AcceptByDriver(t *testing.T) {
	t.Run("assigns driver and picks up", func(t *testing.T) {
		o := newTestOrder(t, payment.MethodCOD)
		o.status = StatusReady
		driverID := kernel.NewUUID()

		require.NoError(t, o.AcceptByDriver(driverID))

		assert.Equal(t, StatusPickedUp, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, driverID.IsEqual(*o.DriverID()))
	})

	t.Run("rejected unless order is ready", func(t *testing.T) {
		o := newTestOrder(t, payment.MethodCOD)

		err := o.AcceptByDriver(kernel.NewUUID())

		assert.ErrorIs(t, err, ErrIllegalTransition)
		assert.Nil(t, o.DriverID())
	})

	t.Run("keeps first assigned driver", func(t *testing.T) {
		o := newTestOrder(t, payment.MethodCOD)
		o.status = StatusReady
		first := kernel.NewUUID()
		require.NoError(t, o.AcceptByDriver(first))

		o.status = StatusReady
		require.NoError(t, o.AcceptByDriver(kernel.NewUUID()))

		assert.True(t, first.IsEqual(*o.DriverID()))
	})
}

func Test_Order_MarkPaid(t *testing.T) {
	t.Run("marks a pending order paid", func(t *testing.T) {
		o := newTestOrder(t, payment.MethodCOD)

		require.NoError(t, o.MarkPaid())

		assert.True(t, o.IsPaid())
	})

	t.Run("already paid order fails", func(t *testing.T) {
		o := newTestOrder(t, payment.MethodCard)

		assert.ErrorIs(t, o.MarkPaid(), ErrAlreadyPaid)
	})
}

func Test_RestoreOrder(t *testing.T) {
	driverID := kernel.NewUUID()

	o, err := RestoreOrder(
		kernel.NewUUID(),
		NewNumber(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		&driverID,
		StatusPickedUp,
		PaymentStatePaid,
		payment.MethodCard,
		[]Line{validLine(t)},
		validPricing(t),
		Destination{Address: "12 Canal Road", City: "Lahore"},
		"",
	)
	require.NoError(t, err)

	assert.Equal(t, StatusPickedUp, o.Status())
	assert.Equal(t, PaymentStatePaid, o.PaymentState())
	require.NotNil(t, o.DriverID())
	assert.True(t, driverID.IsEqual(*o.DriverID()))
}

func Test_Order_Validate(t *testing.T) {
	var o Order
	assert.ErrorIs(t, o.Validate(), ErrOrderIsNotConstructed)
}

func Test_NewNumber(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		number := NewNumber()
		assert.NoError(t, ValidateNumber(number))
		assert.False(t, seen[number])
		seen[number] = true
	}
}

func Test_ValidateNumber(t *testing.T) {
	tests := []string{"", "FD-12345", "FD-1234567Z", "fd-1A2B3C4D", "XX-1A2B3C4D"}

	for _, number := range tests {
		t.Run(number, func(t *testing.T) {
			assert.ErrorIs(t, ValidateNumber(number), errs.ErrValueIsInvalid)
		})
	}
}
