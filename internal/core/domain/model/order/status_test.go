package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.Unknown:        "Unknown",
		order.Placed:         "Placed",
		order.Preparing:      "Preparing",
		order.ReadyForPickup: "ReadyForPickup",
		order.OutForDelivery: "OutForDelivery",
		order.Delivered:      "Delivered",
		order.Status(42):     "Unknown",
	}

	for status, expected := range tests {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Placed, order.Preparing, order.ReadyForPickup, order.OutForDelivery, order.Delivered,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out-of-range values fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
		require.Error(t, order.Status(-1).Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("resolves all valid names", func(t *testing.T) {
		for _, name := range []string{"Placed", "Preparing", "ReadyForPickup", "OutForDelivery", "Delivered"} {
			status, err := order.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects unknown names at the boundary", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "placed", "Cancelled", "Deliver"} {
			status, err := order.StatusFromString(name)

			require.Error(t, err, name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatus_Receive(t *testing.T) {
	t.Run("Placed transitions to Preparing", func(t *testing.T) {
		next, err := order.Placed.Receive()

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, next)
	})

	t.Run("rejected from every other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Unknown, order.Preparing, order.ReadyForPickup, order.OutForDelivery, order.Delivered,
		} {
			_, err := s.Receive()

			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_ValidateSetPrepTime(t *testing.T) {
	t.Run("allowed only while Preparing", func(t *testing.T) {
		require.NoError(t, order.Preparing.ValidateSetPrepTime())
	})

	t.Run("rejected from every other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Unknown, order.Placed, order.ReadyForPickup, order.OutForDelivery, order.Delivered,
		} {
			require.ErrorIs(t, s.ValidateSetPrepTime(), errs.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("Preparing transitions to ReadyForPickup", func(t *testing.T) {
		next, err := order.Preparing.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForPickup, next)
	})

	t.Run("rejected from every other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Unknown, order.Placed, order.ReadyForPickup, order.OutForDelivery, order.Delivered,
		} {
			_, err := s.MarkReady()

			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_Dispatch(t *testing.T) {
	t.Run("ReadyForPickup transitions to OutForDelivery", func(t *testing.T) {
		next, err := order.ReadyForPickup.Dispatch()

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, next)
	})

	t.Run("rejected from every other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Unknown, order.Placed, order.Preparing, order.OutForDelivery, order.Delivered,
		} {
			_, err := s.Dispatch()

			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_ConfirmDelivered(t *testing.T) {
	t.Run("OutForDelivery transitions to Delivered", func(t *testing.T) {
		next, err := order.OutForDelivery.ConfirmDelivered()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("rejected from every other status including Delivered", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Unknown, order.Placed, order.Preparing, order.ReadyForPickup, order.Delivered,
		} {
			_, err := s.ConfirmDelivered()

			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})
}
