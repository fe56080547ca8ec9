package queries

import (
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// BoardTab identifies one column of the kitchen board.
//
// Tabs are a read-model concept: they group order statuses for display and do
// not exist on the Order aggregate itself. Three tabs map one-to-one onto a
// status, while the Deliver tab aggregates two statuses so staff can watch an
// order from the moment it is ready until it is handed to the customer.
type BoardTab int

const (
	// TabUnknown represents an invalid or undefined tab.
	TabUnknown BoardTab = iota

	// TabPlaced lists orders waiting for the kitchen to receive them.
	TabPlaced

	// TabPreparing lists orders the kitchen is working on.
	TabPreparing

	// TabDeliver lists orders that are ready for pickup or already out with
	// a rider. It is the only tab covering more than one status.
	TabDeliver

	// TabDelivered lists completed orders.
	TabDelivered
)

// getBoardTabStrings returns a map of valid BoardTab values to their names.
func getBoardTabStrings() map[BoardTab]string {
	return map[BoardTab]string{
		TabPlaced:    "Placed",
		TabPreparing: "Preparing",
		TabDeliver:   "Deliver",
		TabDelivered: "Delivered",
	}
}

// Validate checks that the tab is one of the four board tabs.
func (t BoardTab) Validate() error {
	if _, ok := getBoardTabStrings()[t]; !ok {
		return errs.NewValueIsInvalidError("tab is invalid")
	}
	return nil
}

// String returns the tab name as shown on the board.
func (t BoardTab) String() string {
	if str, ok := getBoardTabStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// BoardTabFromString resolves a tab name to its BoardTab value.
// Unknown names are rejected at this boundary.
func BoardTabFromString(s string) (BoardTab, error) {
	for tab, name := range getBoardTabStrings() {
		if name == s {
			return tab, nil
		}
	}
	return TabUnknown, errs.NewValueIsInvalidError(s)
}

// Statuses returns the order statuses the tab displays.
// The Deliver tab covers both ReadyForPickup and OutForDelivery; every other
// tab covers exactly one status. Returns nil for an invalid tab.
func (t BoardTab) Statuses() []order.Status {
	switch t {
	case TabPlaced:
		return []order.Status{order.Placed}
	case TabPreparing:
		return []order.Status{order.Preparing}
	case TabDeliver:
		return []order.Status{order.ReadyForPickup, order.OutForDelivery}
	case TabDelivered:
		return []order.Status{order.Delivered}
	default:
		return nil
	}
}
