package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBoardOrdersQuery(t *testing.T) {
	t.Run("should create query for a valid tab", func(t *testing.T) {
		query, err := queries.NewGetBoardOrdersQuery(queries.TabDeliver)

		require.NoError(t, err)
		assert.Equal(t, queries.TabDeliver, query.Tab())
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject an invalid tab", func(t *testing.T) {
		_, err := queries.NewGetBoardOrdersQuery(queries.TabUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a zero value query", func(t *testing.T) {
		var query queries.GetBoardOrdersQuery

		require.ErrorIs(t, query.Validate(),
			queries.ErrGetBoardOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should create query for a valid id", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetOrderQuery(id)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(query.OrderID()))
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject a zero value id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("should reject a zero value query", func(t *testing.T) {
		var query queries.GetOrderQuery

		require.ErrorIs(t, query.Validate(),
			queries.ErrGetOrderQueryIsNotConstructed)
	})
}
