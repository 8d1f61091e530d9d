package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderimport/internal/adapters/in/cli"
	"orderimport/internal/adapters/out/directory"
	"orderimport/internal/adapters/out/postgres"
	"orderimport/internal/core/application/usecases/commands"
	"orderimport/internal/core/application/usecases/queries"
	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/domain/services"
	"orderimport/internal/core/ports"
	"orderimport/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	parser     services.OrderTextParser
	uowFactory ports.UnitOfWorkFactory
	directory  ports.CustomerDirectory

	// Set only when the directory is backed by postgres.
	cachedDirectory *directory.CachedDirectory
}

// NewCompositionRoot wires the application. gormDB is required in postgres
// directory mode and ignored in memory mode.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		configs: configs,
		logger:  logger,
		parser:  services.NewOrderTextParser(logger),
	}

	switch configs.DirectoryMode {
	case DirectoryModeMemory:
		repo, err := directory.NewMemoryRepository()
		if err != nil {
			return nil, err
		}
		root.uowFactory = directory.NewMemoryUnitOfWorkFactory(repo)
		root.directory = directory.NewSimulatedDirectory(repo, configs.DirectoryLatency, logger)
	case DirectoryModePostgres:
		if gormDB == nil {
			return nil, fmt.Errorf("postgres directory mode needs a database connection")
		}
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		root.cachedDirectory = directory.NewCachedDirectory(root.uowFactory, logger)
		root.directory = root.cachedDirectory
	default:
		return nil, fmt.Errorf("unknown directory mode %q", configs.DirectoryMode)
	}

	return root, nil
}

// SeedDirectory adds the seed customers that are missing. The seed file wins
// over the built-in customers; postgres mode is only seeded from a file.
func (c *CompositionRoot) SeedDirectory(ctx context.Context) (int, error) {
	var seed []*customer.Customer
	switch {
	case c.configs.DirectorySeedFile != "":
		loaded, err := directory.LoadSeedFile(c.configs.DirectorySeedFile)
		if err != nil {
			return 0, err
		}
		seed = loaded
	case c.configs.DirectoryMode == DirectoryModeMemory:
		seed = directory.DefaultCustomers()
	default:
		return 0, nil
	}

	cmd, err := commands.NewSeedDirectoryCommand(seed)
	if err != nil {
		return 0, err
	}
	return c.CreateSeedDirectoryCommandHandler().Handle(ctx, cmd)
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateSeedDirectoryCommandHandler() commands.SeedDirectoryCommandHandler {
	return commands.NewSeedDirectoryCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateParseOrderTextQueryHandler() queries.ParseOrderTextQueryHandler {
	return queries.NewParseOrderTextQueryHandler(c.parser)
}

func (c *CompositionRoot) CreateImportOrderQueryHandler() queries.ImportOrderQueryHandler {
	return queries.NewImportOrderQueryHandler(c.parser, c.directory, c.logger)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.directory)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.uowFactory.Create().CustomerRepository())
}

// CreateJobManager returns nil when the directory has nothing to refresh.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.cachedDirectory == nil {
		return nil
	}
	return jobs.NewJobManager(
		commands.NewRefreshDirectoryCommandHandler(c.cachedDirectory),
		c.configs.DirectoryRefreshSpec,
		c.logger,
	)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

// NewCLIDependencies wires the command line tool. Every import builds its own
// in-memory directory from the given seed file.
func NewCLIDependencies(logger *slog.Logger, version string) cli.Dependencies {
	parser := services.NewOrderTextParser(logger)

	return cli.Dependencies{
		ParseHandler: queries.NewParseOrderTextQueryHandler(parser),
		NewImportHandler: func(seedFile string, latency time.Duration) (queries.ImportOrderQueryHandler, error) {
			seed := directory.DefaultCustomers()
			if seedFile != "" {
				loaded, err := directory.LoadSeedFile(seedFile)
				if err != nil {
					return queries.ImportOrderQueryHandler{}, err
				}
				seed = loaded
			}

			repo, err := directory.NewMemoryRepository(seed...)
			if err != nil {
				return queries.ImportOrderQueryHandler{}, err
			}

			dir := directory.NewSimulatedDirectory(repo, latency, logger)
			return queries.NewImportOrderQueryHandler(parser, dir, logger), nil
		},
		DefaultLatency: directory.DefaultLatency,
		Version:        version,
	}
}
