// Package http exposes the order fulfillment operations over a REST API.
// It coordinates between HTTP handlers and application use cases, translating
// domain errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the order fulfillment HTTP API.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	receiveOrderHandler     commands.ReceiveOrderCommandHandler
	setPrepTimeHandler      commands.SetPrepTimeCommandHandler
	markReadyHandler        commands.MarkReadyCommandHandler
	dispatchOrderHandler    commands.DispatchOrderCommandHandler
	confirmDeliveredHandler commands.ConfirmDeliveredCommandHandler

	// Query handlers
	getBoardOrdersHandler queries.GetBoardOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	receiveOrderHandler commands.ReceiveOrderCommandHandler,
	setPrepTimeHandler commands.SetPrepTimeCommandHandler,
	markReadyHandler commands.MarkReadyCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	confirmDeliveredHandler commands.ConfirmDeliveredCommandHandler,
	getBoardOrdersHandler queries.GetBoardOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		receiveOrderHandler:     receiveOrderHandler,
		setPrepTimeHandler:      setPrepTimeHandler,
		markReadyHandler:        markReadyHandler,
		dispatchOrderHandler:    dispatchOrderHandler,
		confirmDeliveredHandler: confirmDeliveredHandler,
		getBoardOrdersHandler:   getBoardOrdersHandler,
		getOrderHandler:         getOrderHandler,
	}
}

// RegisterRoutes mounts every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetBoardOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/receive", s.ReceiveOrder)
	api.POST("/orders/:id/prep-time", s.SetPrepTime)
	api.POST("/orders/:id/ready", s.MarkReady)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
	api.POST("/orders/:id/delivered", s.ConfirmDelivered)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		newOrder.CustomerName,
		newOrder.ItemDescription,
		newOrder.DeliveryAddress,
		newOrder.Phone,
		newOrder.SpecialInstruction,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{Id: orderID.String()})
}

// GetBoardOrders handles GET /api/v1/orders?tab= - retrieves one board tab.
func (s *Server) GetBoardOrders(ctx echo.Context) error {
	tab, err := queries.BoardTabFromString(ctx.QueryParam("tab"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest,
			"Unknown tab; expected Placed, Preparing, Deliver, or Delivered")
	}

	query, err := queries.NewGetBoardOrdersQuery(tab)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	orders, err := s.getBoardOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderContract(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	orderResp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderContract(orderResp))
}

// ReceiveOrder handles POST /api/v1/orders/:id/receive - kitchen accepts the order.
func (s *Server) ReceiveOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewReceiveOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.receiveOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// SetPrepTime handles POST /api/v1/orders/:id/prep-time - sets the write-once
// preparation estimate.
func (s *Server) SetPrepTime(ctx echo.Context) error {
	var body SetPrepTime
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewSetPrepTimeCommand(orderID, body.PrepTimeMinutes)
		if err != nil {
			return err
		}
		return s.setPrepTimeHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkReady handles POST /api/v1/orders/:id/ready - order is ready for pickup.
func (s *Server) MarkReady(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkReadyCommand(orderID)
		if err != nil {
			return err
		}
		return s.markReadyHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch - order leaves with a rider.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewDispatchOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmDelivered handles POST /api/v1/orders/:id/delivered - order reached
// the customer.
func (s *Server) ConfirmDelivered(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewConfirmDeliveredCommand(orderID)
		if err != nil {
			return err
		}
		return s.confirmDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// transition parses the order id from the path, runs the operation, and maps
// its outcome. All five lifecycle endpoints share this shape.
func (s *Server) transition(ctx echo.Context, run func(orderID kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	if err = run(orderID); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// toOrderContract maps a query response onto the JSON contract.
func toOrderContract(o queries.BoardOrderResponse) Order {
	return Order{
		Id:                 o.ID.String(),
		CustomerName:       o.CustomerName,
		ItemDescription:    o.ItemDescription,
		DeliveryAddress:    o.DeliveryAddress,
		Phone:              o.Phone,
		SpecialInstruction: o.SpecialInstruction,
		PrepTimeMinutes:    o.PrepTimeMinutes,
		Status:             o.Status,
	}
}

// domainErrorResponse maps domain errors onto HTTP status codes:
// unknown objects are 404, rejected input is 400, and state conflicts
// (illegal transitions, rewriting the prep time) are 409.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidTransition):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueAlreadySet):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
