package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBoardOrdersQueryHandler reads one tab of the kitchen board straight from
// the database, bypassing the aggregate.
//
// Example:
//
//	handler := NewGetBoardOrdersQueryHandler(db)
//	query, _ := NewGetBoardOrdersQuery(TabPreparing)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get board orders: %v", err)
//	    return err
//	}
type GetBoardOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBoardOrdersQueryHandler creates a handler for board tab queries.
// Requires a GORM database connection for query execution.
func NewGetBoardOrdersQueryHandler(db *gorm.DB) GetBoardOrdersQueryHandler {
	return GetBoardOrdersQueryHandler{db: db}
}

// Handle returns the orders whose status belongs to the query's tab.
// Results keep insertion order: sorted by creation time, with the id as a
// tiebreaker, so the board never reshuffles between refreshes.
func (h GetBoardOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBoardOrdersQuery,
) ([]BoardOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := query.Tab().Statuses()
	statusValues := make([]int, 0, len(statuses))
	for _, s := range statuses {
		statusValues = append(statusValues, int(s))
	}

	orders := make([]BoardOrderResponse, 0)

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
		WHERE status IN ?
		ORDER BY created_at, id
	`, statusValues).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanBoardOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanBoardOrder maps one result row onto a BoardOrderResponse, converting
// the raw id bytes and numeric status into their domain representations.
func scanBoardOrder(rows *sql.Rows) (BoardOrderResponse, error) {
	var orderResp BoardOrderResponse
	var id uuid.UUID
	var prepTime sql.NullInt64
	var status int

	err := rows.Scan(
		&id,
		&orderResp.CustomerName,
		&orderResp.ItemDescription,
		&orderResp.DeliveryAddress,
		&orderResp.Phone,
		&orderResp.SpecialInstruction,
		&prepTime,
		&status,
	)
	if err != nil {
		return BoardOrderResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return BoardOrderResponse{}, idErr
	}
	orderResp.ID = orderID

	if prepTime.Valid {
		minutes := int(prepTime.Int64)
		orderResp.PrepTimeMinutes = &minutes
	}
	orderResp.Status = order.Status(status).String()

	return orderResp, nil
}
