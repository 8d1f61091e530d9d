package services

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"orderimport/internal/core/domain/model/kernel"
	"orderimport/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var (
	// deliveryFeePattern finds "Taxa de entrega: R$15,00" anywhere in a line.
	deliveryFeePattern = regexp.MustCompile(`(?i)taxa\s+de\s+entrega\s*:\s*R\$\s*(\d+(?:[.,]\d+)?)`)

	// candidatePattern is the cheap pre-check: an optional bullet, a quantity and "x".
	// Lines failing it are headers, customer names, payment notes and the like.
	candidatePattern = regexp.MustCompile(`(?i)^(?:[•*-]\s*)?\d+(?:[.,]\d+)?\s*x\s`)

	// itemPattern is the full item grammar:
	//
	//	<qty>x <description> - [<unit> - ]R$<price> - (Peso|Piso) total: <weight>kg[ (<note>)] - <code>
	//
	// Groups: 1 quantity, 2 description, 3 unit (optional), 4 price, 5 weight, 6 code.
	// Price and weight are captured loosely so that malformed numbers surface as
	// numeric errors rather than format errors.
	itemPattern = regexp.MustCompile(
		`(?i)^(?:[•*-]\s*)?(\d+(?:[.,]\d+)?)\s*x\s+(.+?)\s+-\s+` +
			`(?:([a-z]+)\s+-\s+)?` +
			`R\$\s*([0-9][0-9.,]*)\s+-\s+` +
			`(?:peso|piso)\s+total\s*:\s*([0-9][0-9.,]*)\s*kg(?:\s*\([^)]*\))?\s+-\s+` +
			`(\d+)$`)
)

const (
	groupQuantity = iota + 1
	groupDescription
	groupUnit
	groupPrice
	groupWeight
	groupCode
)

// OrderTextParser is a domain service that turns pasted order text into line items,
// per-line errors and order totals.
//
// Parsing rules, applied to every non-blank line in order:
//   - A "Taxa de entrega: R$<amount>" line sets the delivery fee (last occurrence wins)
//   - A line not starting with "<qty>x " is ignored without error
//   - An item-shaped line failing the grammar yields a FormatError
//   - A grammatical line with a malformed number yields a NumericError
//   - Otherwise a LineItem is produced
//
// Price semantics depend on the grammar variant:
//   - With an explicit unit field the price is per unit and the line total is quantity × price
//   - Without it the price is the line total and the unit is inferred from the description
//
// The parser holds no mutable state and is safe for concurrent use.
//
// Example usage:
//
//	parser := NewOrderTextParser(logger)
//	result := parser.Parse("2x Widget A - PC - R$10,00 - Peso total: 1,00kg - 1001\nTaxa de entrega: R$5,00")
//	fmt.Println(result.Summary().GrandTotal()) // 25
type OrderTextParser struct {
	logger *slog.Logger
}

// NewOrderTextParser creates a parser that traces each line at debug level.
// A nil logger disables tracing.
func NewOrderTextParser(logger *slog.Logger) OrderTextParser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return OrderTextParser{logger: logger.With("component", "order_text_parser")}
}

// Parse processes the whole text. It never fails: every problem is reported as a
// ParseError inside the result, and an empty or fully invalid text yields zero totals.
func (p OrderTextParser) Parse(text string) *order.ParseResult {
	var (
		items       []order.LineItem
		parseErrors []order.ParseError
		deliveryFee = decimal.Zero
	)

	for i, raw := range strings.Split(text, "\n") {
		lineNumber := i + 1
		raw = strings.TrimSuffix(raw, "\r")
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := deliveryFeePattern.FindStringSubmatch(line); m != nil {
			fee, err := kernel.ParseAmount(m[1])
			if err != nil {
				parseErrors = append(parseErrors, order.NewNumericError(lineNumber, raw, err))
				continue
			}
			deliveryFee = fee
			p.logger.Debug("delivery fee found", "line", lineNumber, "fee", fee.String())
			continue
		}

		if !candidatePattern.MatchString(line) {
			p.logger.Debug("line ignored", "line", lineNumber)
			continue
		}

		m := itemPattern.FindStringSubmatch(line)
		if m == nil {
			p.logger.Debug("invalid item format", "line", lineNumber)
			parseErrors = append(parseErrors, order.NewFormatError(lineNumber, raw))
			continue
		}

		item, parseErr, ok := p.buildItem(lineNumber, raw, m)
		if !ok {
			parseErrors = append(parseErrors, parseErr)
			continue
		}

		p.logger.Debug("item parsed", "line", lineNumber, "code", item.Code(), "unit", item.Unit().String())
		items = append(items, item)
	}

	result := order.NewParseResult(items, parseErrors, deliveryFee)
	p.logger.Debug("parse finished",
		"items", len(items),
		"errors", len(parseErrors),
		"grand_total", result.Summary().GrandTotal().String())

	return result
}

// buildItem normalises the captured groups into a LineItem. It returns ok=false
// together with the ParseError to record when the line must be rejected.
func (p OrderTextParser) buildItem(lineNumber int, raw string, m []string) (order.LineItem, order.ParseError, bool) {
	quantity, qtyErr := kernel.ParseAmount(m[groupQuantity])
	price, priceErr := kernel.ParseAmount(m[groupPrice])
	weight, weightErr := kernel.ParseAmount(m[groupWeight])
	if err := errors.Join(qtyErr, priceErr, weightErr); err != nil {
		p.logger.Debug("invalid numeric values", "line", lineNumber, "error", err)
		return order.LineItem{}, order.NewNumericError(lineNumber, raw, err), false
	}

	description := strings.TrimSpace(m[groupDescription])
	code := m[groupCode]

	var (
		item order.LineItem
		err  error
	)
	if token := m[groupUnit]; token != "" {
		unit, unitErr := order.ParseUnit(token)
		if unitErr != nil {
			return order.LineItem{}, order.NewFormatError(lineNumber, raw), false
		}
		item, err = order.NewUnitPricedLineItem(code, description, unit, quantity, price, weight)
	} else {
		item, err = order.NewLineTotalLineItem(code, description, order.InferUnit(description), quantity, price, weight)
	}
	if err != nil {
		p.logger.Debug("line item rejected", "line", lineNumber, "error", err)
		return order.LineItem{}, order.NewFormatError(lineNumber, raw), false
	}

	return item, order.ParseError{}, true
}
