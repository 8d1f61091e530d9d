package presenter

import (
	"orderimport/internal/core/application/usecases/queries"
	"orderimport/internal/core/domain/model/order"
)

// OrderView is the serialisable form of a parse result. Numbers are decimal
// strings with a period separator so that no precision is lost.
type OrderView struct {
	Items   []LineItemView   `json:"items"   yaml:"items"`
	Errors  []ParseErrorView `json:"errors"  yaml:"errors"`
	Summary SummaryView      `json:"summary" yaml:"summary"`
}

type LineItemView struct {
	Code        string  `json:"code"                yaml:"code"`
	Description string  `json:"description"         yaml:"description"`
	Quantity    string  `json:"quantity"            yaml:"quantity"`
	Unit        string  `json:"unit"                yaml:"unit"`
	UnitPrice   *string `json:"unitPrice,omitempty" yaml:"unitPrice,omitempty"`
	LineTotal   string  `json:"lineTotal"           yaml:"lineTotal"`
	TotalWeight string  `json:"totalWeight"         yaml:"totalWeight"`
}

type ParseErrorView struct {
	LineNumber int    `json:"lineNumber" yaml:"lineNumber"`
	RawLine    string `json:"rawLine"    yaml:"rawLine"`
	Kind       string `json:"kind"       yaml:"kind"`
	Message    string `json:"message"    yaml:"message"`
}

type SummaryView struct {
	TotalWeightKg string `json:"totalWeightKg" yaml:"totalWeightKg"`
	TotalPackages string `json:"totalPackages" yaml:"totalPackages"`
	TotalValue    string `json:"totalValue"    yaml:"totalValue"`
	DeliveryFee   string `json:"deliveryFee"   yaml:"deliveryFee"`
	GrandTotal    string `json:"grandTotal"    yaml:"grandTotal"`
}

// ImportView is the serialisable form of an imported order.
type ImportView struct {
	CustomerCode  string    `json:"customerCode"           yaml:"customerCode"`
	CustomerFound bool      `json:"customerFound"          yaml:"customerFound"`
	CustomerName  string    `json:"customerName,omitempty" yaml:"customerName,omitempty"`
	CustomerTaxID string    `json:"customerTaxId"          yaml:"customerTaxId"`
	Order         OrderView `json:"order"                  yaml:"order"`
	Warnings      []string  `json:"warnings"               yaml:"warnings"`
}

type CustomerView struct {
	ID    string `json:"id"             yaml:"id"`
	Code  string `json:"code"           yaml:"code"`
	TaxID string `json:"taxId"          yaml:"taxId"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
}

func NewOrderView(result *order.ParseResult) OrderView {
	items := result.Items()
	parseErrors := result.Errors()

	view := OrderView{
		Items:   make([]LineItemView, 0, len(items)),
		Errors:  make([]ParseErrorView, 0, len(parseErrors)),
		Summary: newSummaryView(result.Summary()),
	}

	for _, item := range items {
		itemView := LineItemView{
			Code:        item.Code(),
			Description: item.Description(),
			Quantity:    item.Quantity().String(),
			Unit:        item.Unit().String(),
			LineTotal:   item.LineTotal().StringFixed(2),
			TotalWeight: item.TotalWeight().String(),
		}
		if price, ok := item.UnitPrice(); ok {
			s := price.StringFixed(2)
			itemView.UnitPrice = &s
		}
		view.Items = append(view.Items, itemView)
	}

	for _, parseErr := range parseErrors {
		view.Errors = append(view.Errors, ParseErrorView{
			LineNumber: parseErr.LineNumber(),
			RawLine:    parseErr.RawLine(),
			Kind:       parseErr.Kind().String(),
			Message:    parseErr.Message(),
		})
	}

	return view
}

func newSummaryView(s order.Summary) SummaryView {
	return SummaryView{
		TotalWeightKg: s.TotalWeightKg().String(),
		TotalPackages: s.TotalPackages().String(),
		TotalValue:    s.TotalValue().StringFixed(2),
		DeliveryFee:   s.DeliveryFee().StringFixed(2),
		GrandTotal:    s.GrandTotal().StringFixed(2),
	}
}

func NewImportView(response *queries.ImportOrderQueryResponse) ImportView {
	view := ImportView{
		CustomerCode:  response.CustomerCode,
		CustomerFound: response.CustomerFound(),
		CustomerTaxID: response.CustomerTaxID,
		Order:         NewOrderView(response.Result),
		Warnings:      append(make([]string, 0, len(response.Warnings)), response.Warnings...),
	}
	if response.Customer != nil {
		view.CustomerName = response.Customer.Name()
	}
	return view
}

func NewCustomerView(c queries.CustomerResponse) CustomerView {
	return CustomerView{
		ID:    c.ID.String(),
		Code:  c.Code,
		TaxID: c.TaxID,
		Name:  c.Name,
	}
}
