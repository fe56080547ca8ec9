package http

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for order intake.
type NewOrder struct {
	CustomerName       string `json:"customerName"`
	ItemDescription    string `json:"itemDescription"`
	DeliveryAddress    string `json:"deliveryAddress"`
	Phone              string `json:"phone"`
	SpecialInstruction string `json:"specialInstruction"`
}

// SetPrepTime is the request body for setting the preparation time.
type SetPrepTime struct {
	PrepTimeMinutes int `json:"prepTimeMinutes"`
}

// Order is the JSON representation of one order as shown on the board.
// PrepTimeMinutes is omitted until the kitchen sets it.
type Order struct {
	Id                 string `json:"id"`
	CustomerName       string `json:"customerName"`
	ItemDescription    string `json:"itemDescription"`
	DeliveryAddress    string `json:"deliveryAddress"`
	Phone              string `json:"phone"`
	SpecialInstruction string `json:"specialInstruction"`
	PrepTimeMinutes    *int   `json:"prepTimeMinutes,omitempty"`
	Status             string `json:"status"`
}

// OrderCreated is the response body for successful order intake.
type OrderCreated struct {
	Id string `json:"id"`
}
