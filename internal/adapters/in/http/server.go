package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"orderimport/internal/adapters/in/presenter"
	"orderimport/internal/core/application/usecases/commands"
	"orderimport/internal/core/application/usecases/queries"
	"orderimport/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	registerCustomerHandler commands.RegisterCustomerCommandHandler

	// Query handlers
	parseOrderTextHandler queries.ParseOrderTextQueryHandler
	importOrderHandler    queries.ImportOrderQueryHandler
	getCustomerHandler    queries.GetCustomerQueryHandler
	listCustomersHandler  queries.ListCustomersQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	parseOrderTextHandler queries.ParseOrderTextQueryHandler,
	importOrderHandler queries.ImportOrderQueryHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
	listCustomersHandler queries.ListCustomersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerCustomerHandler: registerCustomerHandler,
		parseOrderTextHandler:   parseOrderTextHandler,
		importOrderHandler:      importOrderHandler,
		getCustomerHandler:      getCustomerHandler,
		listCustomersHandler:    listCustomersHandler,
		logger:                  logger.With("component", "http_server"),
	}
}

// ParseOrder handles POST /api/v1/orders/parse.
func (s *Server) ParseOrder(ctx echo.Context) error {
	var request ParseOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	result, err := s.parseOrderTextHandler.Handle(ctx.Request().Context(), queries.NewParseOrderTextQuery(request.Text))
	if err != nil {
		return s.fail(ctx, err, "Failed to parse order")
	}

	return ctx.JSON(http.StatusOK, presenter.NewOrderView(result))
}

// ImportOrder handles POST /api/v1/orders/import.
func (s *Server) ImportOrder(ctx echo.Context) error {
	var request ImportOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewImportOrderQuery(request.CustomerCode, request.Text)
	if err != nil {
		return badRequest(ctx, "Invalid import request: "+err.Error())
	}

	response, err := s.importOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to import order")
	}

	return ctx.JSON(http.StatusOK, presenter.NewImportView(response))
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	customers, err := s.listCustomersHandler.Handle(ctx.Request().Context(), queries.NewListCustomersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve customers")
	}

	response := make([]presenter.CustomerView, len(customers))
	for i, c := range customers {
		response[i] = presenter.NewCustomerView(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var request NewCustomer
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCustomerCommand(request.Code, request.TaxID, request.Name)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if err = s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to register customer")
	}

	return ctx.JSON(http.StatusCreated, presenter.CustomerView{
		ID:    cmd.CustomerID().String(),
		Code:  cmd.Code(),
		TaxID: cmd.TaxID(),
		Name:  cmd.Name(),
	})
}

// GetCustomer handles GET /api/v1/customers/{code}.
func (s *Server) GetCustomer(ctx echo.Context, code string) error {
	query, err := queries.NewGetCustomerQuery(code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	customer, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve customer")
	}

	return ctx.JSON(http.StatusOK, presenter.NewCustomerView(customer))
}

// fail maps use case errors to responses. Validation errors carry their own
// message; unexpected ones are logged and answered with fallback.
func (s *Server) fail(ctx echo.Context, err error, fallback string) error {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), fallback, "error", err)
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
