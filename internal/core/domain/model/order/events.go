package order

// EventKind identifies the fulfillment event produced by a successful
// command. Events are advisory: they feed the notification sink for toast
// and log display and are not part of the state contract.
type EventKind string

const (
	// EventReceived is emitted when the kitchen receives a placed order.
	EventReceived EventKind = "received"

	// EventPrepTimeSet is emitted when the preparation time is recorded.
	EventPrepTimeSet EventKind = "prep_time_set"

	// EventMarkedReady is emitted when the order becomes ready for pickup.
	EventMarkedReady EventKind = "marked_ready"

	// EventDispatched is emitted when the order goes out for delivery.
	EventDispatched EventKind = "dispatched"

	// EventDelivered is emitted when delivery is confirmed.
	EventDelivered EventKind = "delivered"
)

// getEventMessages returns a map of event kinds to their human-readable
// descriptions, as shown to operators.
func getEventMessages() map[EventKind]string {
	return map[EventKind]string{
		EventReceived:    "order received",
		EventPrepTimeSet: "prep time set",
		EventMarkedReady: "marked ready",
		EventDispatched:  "dispatched",
		EventDelivered:   "delivered",
	}
}

// Message returns the human-readable description of the event, or an empty
// string for an unknown kind.
func (e EventKind) Message() string {
	return getEventMessages()[e]
}
