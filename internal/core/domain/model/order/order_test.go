package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Arvin Cabrera",
		"Grilled Salmon",
		"Brgy. Darasa, Tanauan City",
		"0917-123-4567",
		"No lemon sauce",
	)
	require.NoError(t, err)
	return o
}

func newPreparingOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newPlacedOrder(t)
	require.NoError(t, o.Receive())
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order in Placed status", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Ella Reyes", "Veggie Bowl", "Brgy. Balele, Tanauan City",
			"0916-987-6543", "Less salt")

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "Ella Reyes", o.CustomerName())
		assert.Equal(t, "Veggie Bowl", o.ItemDescription())
		assert.Equal(t, "Brgy. Balele, Tanauan City", o.DeliveryAddress())
		assert.Equal(t, "0916-987-6543", o.Phone())
		assert.Equal(t, "Less salt", o.SpecialInstruction())
		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.PrepTimeMinutes())
	})

	t.Run("should allow empty phone and instruction", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Ronnie Dela Cruz", "Chicken Adobo", "Brgy. Janopol", "", "")

		require.NoError(t, err)
		assert.Empty(t, o.Phone())
		assert.Empty(t, o.SpecialInstruction())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "Ella Reyes", "Veggie Bowl", "Brgy. Balele", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty customer name", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", "Veggie Bowl", "Brgy. Balele", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customerName")
	})

	t.Run("should fail with empty item description", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Ella Reyes", "", "Brgy. Balele", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "itemDescription")
	})

	t.Run("should fail with empty delivery address", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Ella Reyes", "Veggie Bowl", "", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "", "", "", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customerName")
		assert.Contains(t, err.Error(), "itemDescription")
		assert.Contains(t, err.Error(), "deliveryAddress")
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	thirty := 30

	t.Run("should restore order with status and prep time", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, "Ella Reyes", "Veggie Bowl", "Brgy. Balele", "", "",
			order.OutForDelivery, &thirty)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.PrepTimeMinutes())
		assert.Equal(t, 30, *o.PrepTimeMinutes())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, "Ella Reyes", "Veggie Bowl", "Brgy. Balele", "", "",
			order.Status(42), nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-positive prep time", func(t *testing.T) {
		zero := 0

		o, err := order.RestoreOrder(validID, "Ella Reyes", "Veggie Bowl", "Brgy. Balele", "", "",
			order.Preparing, &zero)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order passes", func(t *testing.T) {
		require.NoError(t, newPlacedOrder(t).Validate())
	})

	t.Run("nil order fails", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("zero value fails", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full fulfillment path", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.Receive())
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.SetPrepTime(30))
		require.NotNil(t, o.PrepTimeMinutes())
		assert.Equal(t, 30, *o.PrepTimeMinutes())

		err := o.SetPrepTime(45)
		require.ErrorIs(t, err, errs.ErrValueAlreadySet)
		assert.Equal(t, 30, *o.PrepTimeMinutes())

		require.NoError(t, o.MarkReady())
		assert.Equal(t, order.ReadyForPickup, o.Status())

		require.NoError(t, o.Dispatch())
		assert.Equal(t, order.OutForDelivery, o.Status())

		require.NoError(t, o.ConfirmDelivered())
		assert.Equal(t, order.Delivered, o.Status())

		err = o.ConfirmDelivered()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("prep time survives later transitions", func(t *testing.T) {
		o := newPreparingOrder(t)
		require.NoError(t, o.SetPrepTime(15))

		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Dispatch())
		require.NoError(t, o.ConfirmDelivered())

		require.NotNil(t, o.PrepTimeMinutes())
		assert.Equal(t, 15, *o.PrepTimeMinutes())
	})

	t.Run("mark ready allowed without prep time", func(t *testing.T) {
		o := newPreparingOrder(t)

		require.NoError(t, o.MarkReady())
		assert.Nil(t, o.PrepTimeMinutes())
	})

	t.Run("no stage skipping", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.ErrorIs(t, o.MarkReady(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Dispatch(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.ConfirmDelivered(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("no reverse transitions", func(t *testing.T) {
		o := newPreparingOrder(t)
		require.NoError(t, o.MarkReady())

		require.ErrorIs(t, o.Receive(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.MarkReady(), errs.ErrInvalidTransition)
		assert.Equal(t, order.ReadyForPickup, o.Status())
	})

	t.Run("repeated rejected command fails identically and never corrupts state", func(t *testing.T) {
		o := newPreparingOrder(t)

		first := o.Receive()
		second := o.Receive()

		require.ErrorIs(t, first, errs.ErrInvalidTransition)
		require.ErrorIs(t, second, errs.ErrInvalidTransition)
		assert.Equal(t, first.Error(), second.Error())
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrder_SetPrepTime(t *testing.T) {
	t.Run("rejects zero minutes", func(t *testing.T) {
		o := newPreparingOrder(t)

		err := o.SetPrepTime(0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o.PrepTimeMinutes())
	})

	t.Run("rejects negative minutes", func(t *testing.T) {
		o := newPreparingOrder(t)

		err := o.SetPrepTime(-5)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o.PrepTimeMinutes())
	})

	t.Run("rejected outside Preparing", func(t *testing.T) {
		o := newPlacedOrder(t)

		err := o.SetPrepTime(30)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.PrepTimeMinutes())
	})

	t.Run("returned pointer is a copy", func(t *testing.T) {
		o := newPreparingOrder(t)
		require.NoError(t, o.SetPrepTime(20))

		minutes := o.PrepTimeMinutes()
		*minutes = 99

		assert.Equal(t, 20, *o.PrepTimeMinutes())
	})
}

func TestEventKind_Message(t *testing.T) {
	tests := map[order.EventKind]string{
		order.EventReceived:    "order received",
		order.EventPrepTimeSet: "prep time set",
		order.EventMarkedReady: "marked ready",
		order.EventDispatched:  "dispatched",
		order.EventDelivered:   "delivered",
		order.EventKind("bogus"): "",
	}

	for kind, expected := range tests {
		assert.Equal(t, expected, kind.Message())
	}
}
