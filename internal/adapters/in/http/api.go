package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Error is the body of every non-2xx API response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ParseOrderRequest struct {
	Text string `json:"text"`
}

type ImportOrderRequest struct {
	CustomerCode string `json:"customerCode"`
	Text         string `json:"text"`
}

type NewCustomer struct {
	Code  string `json:"code"`
	TaxID string `json:"taxId"`
	Name  string `json:"name"`
}

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (POST /api/v1/orders/parse)
	ParseOrder(ctx echo.Context) error
	// (POST /api/v1/orders/import)
	ImportOrder(ctx echo.Context) error
	// (GET /api/v1/customers)
	ListCustomers(ctx echo.Context) error
	// (POST /api/v1/customers)
	RegisterCustomer(ctx echo.Context) error
	// (GET /api/v1/customers/{code})
	GetCustomer(ctx echo.Context, code string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ParseOrder(ctx echo.Context) error {
	return w.Handler.ParseOrder(ctx)
}

func (w *ServerInterfaceWrapper) ImportOrder(ctx echo.Context) error {
	return w.Handler.ImportOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	return w.Handler.ListCustomers(ctx)
}

func (w *ServerInterfaceWrapper) RegisterCustomer(ctx echo.Context) error {
	return w.Handler.RegisterCustomer(ctx)
}

func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	var code string

	err := runtime.BindStyledParameterWithOptions("simple", "code", ctx.Param("code"), &code,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter code: %s", err))
	}

	return w.Handler.GetCustomer(ctx, code)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL adds every API route under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/orders/parse", wrapper.ParseOrder)
	router.POST(baseURL+"/api/v1/orders/import", wrapper.ImportOrder)
	router.GET(baseURL+"/api/v1/customers", wrapper.ListCustomers)
	router.POST(baseURL+"/api/v1/customers", wrapper.RegisterCustomer)
	router.GET(baseURL+"/api/v1/customers/:code", wrapper.GetCustomer)
}
