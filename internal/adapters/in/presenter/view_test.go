package presenter_test

import (
	"encoding/json"
	"testing"

	"orderimport/internal/adapters/in/presenter"
	"orderimport/internal/core/application/usecases/queries"
	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/domain/model/kernel"
	"orderimport/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleOrder = "2x Widget A - PC - R$10,00 - Peso total: 1,00kg - 1001\n" +
	"3x Queijo kg - R$45,90 - Peso total: 1,5kg - 3003\n" +
	"3x Widget - R$10\n" +
	"Taxa de entrega: R$5,00"

func TestNewOrderView(t *testing.T) {
	result := services.NewOrderTextParser(nil).Parse(sampleOrder)

	view := presenter.NewOrderView(result)

	require.Len(t, view.Items, 2)
	widget := view.Items[0]
	assert.Equal(t, "1001", widget.Code)
	assert.Equal(t, "2", widget.Quantity)
	assert.Equal(t, "PC", widget.Unit)
	require.NotNil(t, widget.UnitPrice)
	assert.Equal(t, "10.00", *widget.UnitPrice)
	assert.Equal(t, "20.00", widget.LineTotal)

	queijo := view.Items[1]
	assert.Equal(t, "KG", queijo.Unit)
	assert.Nil(t, queijo.UnitPrice)
	assert.Equal(t, "45.90", queijo.LineTotal)
	assert.Equal(t, "1.5", queijo.TotalWeight)

	require.Len(t, view.Errors, 1)
	assert.Equal(t, presenter.ParseErrorView{
		LineNumber: 3, RawLine: "3x Widget - R$10", Kind: "format", Message: "invalid format",
	}, view.Errors[0])

	assert.Equal(t, presenter.SummaryView{
		TotalWeightKg: "1.5",
		TotalPackages: "2",
		TotalValue:    "65.90",
		DeliveryFee:   "5.00",
		GrandTotal:    "70.90",
	}, view.Summary)
}

func TestOrderView_Serialisation(t *testing.T) {
	view := presenter.NewOrderView(services.NewOrderTextParser(nil).Parse(sampleOrder))

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"unitPrice":"10.00"`)
	assert.Contains(t, string(raw), `"grandTotal":"70.90"`)
	assert.NotContains(t, string(raw), `"unitPrice":null`)

	out, err := yaml.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(out), "grandTotal: \"70.90\"")
	assert.Contains(t, string(out), "kind: format")
}

func TestOrderView_EmptyCollectionsAreNotNull(t *testing.T) {
	raw, err := json.Marshal(presenter.NewOrderView(services.NewOrderTextParser(nil).Parse("")))

	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`)
	assert.Contains(t, string(raw), `"errors":[]`)
}

func TestNewImportView(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "1001", "123.456.789-01", "João Silva")
	require.NoError(t, err)
	result := services.NewOrderTextParser(nil).Parse(sampleOrder)

	found := presenter.NewImportView(&queries.ImportOrderQueryResponse{
		CustomerCode:  "1001",
		Customer:      c,
		CustomerTaxID: c.TaxID(),
		Result:        result,
	})
	assert.True(t, found.CustomerFound)
	assert.Equal(t, "João Silva", found.CustomerName)
	assert.NotNil(t, found.Warnings)

	missing := presenter.NewImportView(&queries.ImportOrderQueryResponse{
		CustomerCode:  "9",
		CustomerTaxID: queries.UnknownCustomerTaxID,
		Result:        result,
		Warnings:      []string{"customer 9 not found"},
	})
	assert.False(t, missing.CustomerFound)
	assert.Empty(t, missing.CustomerName)
	assert.Equal(t, "Cliente inexistente", missing.CustomerTaxID)
	assert.Equal(t, []string{"customer 9 not found"}, missing.Warnings)
}

func TestNewCustomerView(t *testing.T) {
	id := kernel.NewUUID()

	view := presenter.NewCustomerView(queries.CustomerResponse{ID: id, Code: "7", TaxID: "123.456.789-01"})

	assert.Equal(t, id.String(), view.ID)
	assert.Equal(t, "7", view.Code)
	assert.Empty(t, view.Name)
}
