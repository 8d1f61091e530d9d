package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderimport/cmd"
	httpadapter "orderimport/internal/adapters/in/http"
	"orderimport/internal/adapters/out/postgres/customerrepo"

	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := cmd.NewLogger(os.Stdout, configs.LogLevel, configs.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gormDB *gorm.DB
	if configs.DirectoryMode == cmd.DirectoryModePostgres {
		gormDB = mustOpenDatabase(configs)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	added, err := app.SeedDirectory(ctx)
	if err != nil {
		log.Fatalf("Error seeding customer directory: %v", err)
	}
	logger.Info("Customer directory seeded", "added", added, "mode", configs.DirectoryMode)

	if jobManager := app.CreateJobManager(); jobManager != nil {
		if err = jobManager.StartAll(ctx); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = db.AutoMigrate(&customerrepo.CustomerDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := httpadapter.NewServer(
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateParseOrderTextQueryHandler(),
		app.CreateImportOrderQueryHandler(),
		app.CreateGetCustomerQueryHandler(),
		app.CreateListCustomersQueryHandler(),
		logger,
	)

	e, err := httpadapter.NewEcho(ctx, server, logger)
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", "error", err)
		}
	}()

	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
