package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"orderimport/internal/adapters/in/cli"
	"orderimport/internal/adapters/in/presenter"
	"orderimport/internal/adapters/out/directory"
	"orderimport/internal/core/application/usecases/queries"
	"orderimport/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleOrder = `2x Widget A - PC - R$10,00 - Peso total: 1,00kg - 1001
1x Widget B - KG - R$20,00 - Piso total: 2,50kg - 1002
Taxa de entrega: R$5,00
`

type seen struct {
	seedFile string
	latency  time.Duration
}

func newDependencies(t *testing.T, calls *seen) cli.Dependencies {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	parser := services.NewOrderTextParser(logger)

	return cli.Dependencies{
		ParseHandler: queries.NewParseOrderTextQueryHandler(parser),
		NewImportHandler: func(seedFile string, latency time.Duration) (queries.ImportOrderQueryHandler, error) {
			if calls != nil {
				calls.seedFile, calls.latency = seedFile, latency
			}

			customers := directory.DefaultCustomers()
			if seedFile != "" {
				var err error
				if customers, err = directory.LoadSeedFile(seedFile); err != nil {
					return queries.ImportOrderQueryHandler{}, err
				}
			}
			repo, err := directory.NewMemoryRepository(customers...)
			if err != nil {
				return queries.ImportOrderQueryHandler{}, err
			}
			return queries.NewImportOrderQueryHandler(parser, directory.NewSimulatedDirectory(repo, 0, logger), logger), nil
		},
		DefaultLatency: 500 * time.Millisecond,
		Version:        "1.2.3",
	}
}

func run(t *testing.T, deps cli.Dependencies, stdin string, args ...string) (string, error) {
	t.Helper()

	root := cli.NewRootCommand(deps)
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, newDependencies(t, nil), "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "orderimport version 1.2.3")
}

func TestVersionCommand_DefaultsToDev(t *testing.T) {
	deps := newDependencies(t, nil)
	deps.Version = ""

	out, err := run(t, deps, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "orderimport version dev")
}

func TestParseCommand_TableFromStdin(t *testing.T) {
	out, err := run(t, newDependencies(t, nil), sampleOrder, "parse")

	require.NoError(t, err)
	assert.Contains(t, out, "Produtos Importados (2 itens)")
	assert.Contains(t, out, "Widget A")
	assert.Contains(t, out, "Widget B")
	assert.Contains(t, out, "R$ 20,00")
	assert.Contains(t, out, "2,50 kg")
	assert.Contains(t, out, "R$ 5,00")
	assert.Contains(t, out, "R$ 45,00")
	assert.NotContains(t, out, "Linhas com problemas")
}

func TestParseCommand_TableListsProblemLines(t *testing.T) {
	out, err := run(t, newDependencies(t, nil), "Pedido\n3x Widget - R$10\n", "parse")

	require.NoError(t, err)
	assert.Contains(t, out, "Nenhum produto encontrado.")
	assert.Contains(t, out, "Linhas com problemas encontradas:")
	assert.Contains(t, out, "linha 2: invalid format: 3x Widget - R$10")
	assert.Contains(t, out, "R$ 0,00")
}

func TestParseCommand_JSON(t *testing.T) {
	out, err := run(t, newDependencies(t, nil), sampleOrder, "parse", "--format", "json")
	require.NoError(t, err)

	var view presenter.OrderView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Len(t, view.Items, 2)
	assert.Equal(t, "1001", view.Items[0].Code)
	require.NotNil(t, view.Items[0].UnitPrice)
	assert.Equal(t, "10.00", *view.Items[0].UnitPrice)
	assert.Equal(t, "45.00", view.Summary.GrandTotal)
}

func TestParseCommand_YAMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleOrder), 0o600))

	out, err := run(t, newDependencies(t, nil), "", "parse", path, "-f", "yaml")
	require.NoError(t, err)

	var view presenter.OrderView
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Len(t, view.Items, 2)
	assert.Equal(t, "5.00", view.Summary.DeliveryFee)
	assert.Equal(t, "2.5", view.Summary.TotalWeightKg)
}

func TestParseCommand_Errors(t *testing.T) {
	deps := newDependencies(t, nil)

	_, err := run(t, deps, sampleOrder, "parse", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	_, err = run(t, deps, "", "parse", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read order file")

	_, err = run(t, deps, "", "parse", "a.txt", "b.txt")
	require.Error(t, err)
}

func TestImportCommand_KnownCustomer(t *testing.T) {
	out, err := run(t, newDependencies(t, nil), sampleOrder, "import", "--customer", "1001")

	require.NoError(t, err)
	assert.Contains(t, out, "Cliente: 1001")
	assert.Contains(t, out, "João Silva")
	assert.Contains(t, out, "123.456.789-01")
	assert.Contains(t, out, "R$ 45,00")
	assert.NotContains(t, out, "Avisos:")
}

func TestImportCommand_UnknownCustomer(t *testing.T) {
	out, err := run(t, newDependencies(t, nil), "Forma de pagamento: Pix\n", "import", "-c", "9999")

	require.NoError(t, err)
	assert.Contains(t, out, "Cliente inexistente")
	assert.Contains(t, out, "Avisos:")
	assert.Contains(t, out, "no valid items found in order")
}

func TestImportCommand_SeedFileAndLatency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("customers:\n  - code: \"7000\"\n    taxId: 111.222.333-44\n"), 0o600))

	calls := &seen{}
	out, err := run(t, newDependencies(t, calls), sampleOrder,
		"import", "-c", "7000", "--customers", path, "--latency", "0s", "-f", "json")
	require.NoError(t, err)

	assert.Equal(t, path, calls.seedFile)
	assert.Equal(t, time.Duration(0), calls.latency)

	var view presenter.ImportView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.True(t, view.CustomerFound)
	assert.Equal(t, "111.222.333-44", view.CustomerTaxID)
	assert.Len(t, view.Order.Items, 2)
}

func TestImportCommand_DefaultLatency(t *testing.T) {
	calls := &seen{}
	_, err := run(t, newDependencies(t, calls), sampleOrder, "import", "-c", "1001", "-f", "yaml")

	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, calls.latency)
	assert.Empty(t, calls.seedFile)
}

func TestImportCommand_Errors(t *testing.T) {
	deps := newDependencies(t, nil)

	_, err := run(t, deps, sampleOrder, "import")
	require.Error(t, err, "customer flag is required")

	_, err = run(t, deps, "   \n", "import", "-c", "1001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order text")

	deps.NewImportHandler = func(string, time.Duration) (queries.ImportOrderQueryHandler, error) {
		return queries.ImportOrderQueryHandler{}, errors.New("boom")
	}
	_, err = run(t, deps, sampleOrder, "import", "-c", "1001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open customer directory: boom")
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]cli.Format{
		"table":  cli.FormatTable,
		"JSON":   cli.FormatJSON,
		" yaml ": cli.FormatYAML,
	} {
		got, err := cli.ParseFormat(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := cli.ParseFormat("csv")
	assert.Error(t, err)
}
