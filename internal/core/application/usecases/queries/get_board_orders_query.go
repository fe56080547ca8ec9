package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetBoardOrdersQueryIsNotConstructed = errors.New(
		"GetBoardOrdersQuery must be created via NewGetBoardOrdersQuery constructor",
	)
)

// GetBoardOrdersQuery retrieves the orders shown on one board tab.
//
// Example:
//
//	query, err := NewGetBoardOrdersQuery(TabDeliver)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetBoardOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get board orders: %w", err)
//	}
//
//	fmt.Printf("%d orders on the %s tab\n", len(orders), query.Tab())
type GetBoardOrdersQuery struct {
	tab BoardTab

	guard guard.ConstructorGuard
}

// NewGetBoardOrdersQuery creates a query for the given board tab.
// Returns a validation error if the tab is not one of the four board tabs.
func NewGetBoardOrdersQuery(tab BoardTab) (GetBoardOrdersQuery, error) {
	if err := tab.Validate(); err != nil {
		return GetBoardOrdersQuery{}, err
	}

	return GetBoardOrdersQuery{
		tab:   tab,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Tab returns the board tab the query targets.
func (q GetBoardOrdersQuery) Tab() BoardTab {
	return q.tab
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBoardOrdersQueryIsNotConstructed if validation fails.
func (q GetBoardOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardOrdersQueryIsNotConstructed)
}

// BoardOrderResponse carries everything a board card displays for one order.
// PrepTimeMinutes is nil until the kitchen sets it.
type BoardOrderResponse struct {
	ID                 kernel.UUID
	CustomerName       string
	ItemDescription    string
	DeliveryAddress    string
	Phone              string
	SpecialInstruction string
	PrepTimeMinutes    *int
	Status             string
}
