package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"mskn-backend/internal/access"
	"mskn-backend/internal/auth"
	"mskn-backend/internal/cache"
	"mskn-backend/internal/config"
	"mskn-backend/internal/database"
	"mskn-backend/internal/db"
	"mskn-backend/internal/handlers"
	"mskn-backend/internal/health"
	h "mskn-backend/internal/http"
	"mskn-backend/internal/logger"
	"mskn-backend/internal/middleware"
	"mskn-backend/internal/repositories"
	"mskn-backend/internal/repositories/memory"
	"mskn-backend/internal/services"
	"mskn-backend/internal/storage"
	"mskn-backend/migrations"
)

var log = logger.For("Server")

func main() {
	root := &cobra.Command{
		Use:           "mskn-backend",
		Short:         "Property management API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Fatal("Command failed")
	}
}

func serveCmd() *cobra.Command {
	var port int
	var demo bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			return serve(cmd.Context(), cfg, demo)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Server port (overrides config)")
	cmd.Flags().BoolVar(&demo, "demo", false, "Run on seeded in-memory data without PostgreSQL")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := db.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()
			return database.NewMigrator(pool, migrations.FS).RunMigrations(cmd.Context())
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo accounts and properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := db.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := database.NewMigrator(pool, migrations.FS).RunMigrations(cmd.Context()); err != nil {
				return err
			}
			if err := database.Seed(cmd.Context(), postgresStores(pool).Stores); err != nil {
				return err
			}
			log.Infof("Demo accounts: manager@mskn.com, tenant@mskn.com, owner@mskn.com / %s", database.DemoPassword)
			return nil
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Log.Level, cfg.Log.JSON)
	return cfg, nil
}

// backend is the set of stores the services run on.
type backend struct {
	database.Stores
	Documents services.DocumentStore
}

func postgresStores(pool *pgxpool.Pool) backend {
	return backend{
		Stores: database.Stores{
			Users:       repositories.NewUserRepository(pool),
			Properties:  repositories.NewPropertyRepository(pool),
			Tenants:     repositories.NewTenantRepository(pool),
			Leases:      repositories.NewLeaseRepository(pool),
			Payments:    repositories.NewPaymentRepository(pool),
			Maintenance: repositories.NewMaintenanceRepository(pool),
		},
		Documents: repositories.NewDocumentRepository(pool),
	}
}

func memoryStores(store *memory.Store) backend {
	return backend{
		Stores: database.Stores{
			Users:       store.Users(),
			Properties:  store.Properties(),
			Tenants:     store.Tenants(),
			Leases:      store.Leases(),
			Payments:    store.Payments(),
			Maintenance: store.Maintenance(),
		},
		Documents: store.Documents(),
	}
}

func serve(ctx context.Context, cfg *config.Config, demo bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var stores backend
	var dbPinger health.Pinger
	if demo {
		log.Warn("Demo mode: data lives in memory and is lost on exit")
		stores = memoryStores(memory.NewStore())
		if err := database.Seed(ctx, stores.Stores); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	} else {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		// Run migrations using embedded SQL files
		if err := database.NewMigrator(pool, migrations.FS).RunMigrations(ctx); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		stores = postgresStores(pool)
		dbPinger = pool
	}

	// Optional dependencies are passed as nil interfaces when switched off.
	var revoker services.Revoker
	var cachePinger health.Pinger
	if client := cache.Connect(ctx, cfg); client != nil {
		defer client.Close()
		denylist := cache.NewDenylist(client)
		revoker = denylist
		cachePinger = denylist
	}

	var objects services.ObjectStore
	s3Store, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		return err
	}
	if s3Store != nil {
		objects = s3Store
	}

	jwtManager := auth.NewJWTManager(cfg)
	scopes := access.NewResolver(stores.Tenants, stores.Properties)

	authService := services.NewAuthService(stores.Users, jwtManager, revoker)
	debug := !cfg.IsProduction()

	router := h.NewRouter(h.Handlers{
		Auth:        handlers.NewAuthHandler(authService, debug),
		Property:    handlers.NewPropertyHandler(services.NewPropertyService(stores.Properties, scopes), debug),
		Tenant:      handlers.NewTenantHandler(services.NewTenantService(stores.Tenants, scopes), debug),
		Lease:       handlers.NewLeaseHandler(services.NewLeaseService(stores.Leases, scopes), debug),
		Payment:     handlers.NewPaymentHandler(services.NewPaymentService(stores.Payments, stores.Leases, scopes), debug),
		Maintenance: handlers.NewMaintenanceHandler(services.NewMaintenanceService(stores.Maintenance, scopes), debug),
		Document:    handlers.NewDocumentHandler(services.NewDocumentService(stores.Documents, scopes, objects), debug),
		Report: handlers.NewReportHandler(
			services.NewReportService(stores.Properties, stores.Payments, stores.Maintenance, scopes), debug),
		Health: handlers.NewHealthHandler(health.NewHealthChecker(dbPinger, cachePinger)),
	}, middleware.NewAuthMiddleware(authService))

	// Wrap with panic recovery and CORS
	handler := middleware.PanicRecovery(debug)(middleware.NewCORS(cfg)(router))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).WithField("env", cfg.Server.Env).Info("Server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
