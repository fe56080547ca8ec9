package queries

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with the query's id.
// Returns an ObjectNotFoundError when no order has that id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (BoardOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return BoardOrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			item_description,
			delivery_address,
			phone,
			special_instruction,
			prep_time_minutes,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return BoardOrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return BoardOrderResponse{}, err
		}
		return BoardOrderResponse{}, errs.NewObjectNotFoundError(
			"order", query.OrderID().String())
	}

	orderResp, err := scanBoardOrder(rows)
	if err != nil {
		return BoardOrderResponse{}, err
	}

	return orderResp, rows.Err()
}
