package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"orderimport/internal/adapters/in/presenter"
	"orderimport/internal/core/application/usecases/queries"
	"orderimport/internal/core/domain/model/order"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numericStyle = cellStyle.Align(lipgloss.Right)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

func writeOrder(w io.Writer, format Format, result *order.ParseResult) error {
	if format != FormatTable {
		return writeStructured(w, format, presenter.NewOrderView(result))
	}

	var b strings.Builder
	renderOrder(&b, result)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeImport(w io.Writer, format Format, response *queries.ImportOrderQueryResponse) error {
	if format != FormatTable {
		return writeStructured(w, format, presenter.NewImportView(response))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Cliente:"), response.CustomerCode)
	if response.Customer != nil && response.Customer.Name() != "" {
		fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Nome:"), response.Customer.Name())
	}
	fmt.Fprintf(&b, "%s %s\n\n", titleStyle.Render("CPF:"), response.CustomerTaxID)

	renderOrder(&b, response.Result)

	if len(response.Warnings) > 0 {
		b.WriteString("\n" + titleStyle.Render("Avisos:") + "\n")
		for _, warning := range response.Warnings {
			fmt.Fprintf(&b, "  • %s\n", warning)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeStructured(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}

func renderOrder(b *strings.Builder, result *order.ParseResult) {
	items := result.Items()

	if len(items) == 0 {
		b.WriteString("Nenhum produto encontrado.\n")
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Produtos Importados (%d itens)", len(items))) + "\n")
		b.WriteString(renderItemsTable(items) + "\n")
		b.WriteString(mutedStyle.Render(`* Se "Unidade" for KG, "Quantidade" mostra o peso total.`) + "\n")
	}

	if parseErrors := result.Errors(); len(parseErrors) > 0 {
		b.WriteString("\n" + titleStyle.Render("Linhas com problemas encontradas:") + "\n")
		for _, parseErr := range parseErrors {
			fmt.Fprintf(b, "  • linha %d: %s: %s\n", parseErr.LineNumber(), parseErr.Message(), parseErr.RawLine())
		}
	}

	summary := result.Summary()
	b.WriteString("\n")
	fmt.Fprintf(b, "Peso total:      %s\n", presenter.FormatWeight(summary.TotalWeightKg()))
	fmt.Fprintf(b, "Pacotes:         %s\n", presenter.FormatQuantity(summary.TotalPackages()))
	fmt.Fprintf(b, "Produtos:        %s\n", presenter.FormatBRL(summary.TotalValue()))
	fmt.Fprintf(b, "Taxa de entrega: %s\n", presenter.FormatBRL(summary.DeliveryFee()))
	b.WriteString(titleStyle.Render("Total:           "+presenter.FormatBRL(summary.GrandTotal())) + "\n")
}

func renderItemsTable(items []order.LineItem) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Code(),
			presenter.FormatQuantity(item.DisplayQuantity()),
			item.Description(),
			item.Unit().String(),
			presenter.FormatBRL(item.LineTotal()),
			presenter.FormatWeight(item.TotalWeight()),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Código", "Quantidade*", "Descrição", "Unidade", "Preço", "Peso Total").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 || col >= 4:
				return numericStyle
			default:
				return cellStyle
			}
		}).
		String()
}
