package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/payroll-engine/internal"
	"github.com/frahmantamala/payroll-engine/internal/audit"
	"github.com/frahmantamala/payroll-engine/internal/auth"
	authPostgres "github.com/frahmantamala/payroll-engine/internal/auth/postgres"
	"github.com/frahmantamala/payroll-engine/internal/bankexport"
	bankexportPostgres "github.com/frahmantamala/payroll-engine/internal/bankexport/postgres"
	"github.com/frahmantamala/payroll-engine/internal/compensation"
	compensationPostgres "github.com/frahmantamala/payroll-engine/internal/compensation/postgres"
	"github.com/frahmantamala/payroll-engine/internal/core/events"
	"github.com/frahmantamala/payroll-engine/internal/department"
	departmentPostgres "github.com/frahmantamala/payroll-engine/internal/department/postgres"
	"github.com/frahmantamala/payroll-engine/internal/employee"
	employeePostgres "github.com/frahmantamala/payroll-engine/internal/employee/postgres"
	"github.com/frahmantamala/payroll-engine/internal/payroll"
	payrollPostgres "github.com/frahmantamala/payroll-engine/internal/payroll/postgres"
	"github.com/frahmantamala/payroll-engine/internal/transport"
	"github.com/frahmantamala/payroll-engine/internal/transport/rest"
	"github.com/frahmantamala/payroll-engine/internal/transport/swagger"
	"github.com/frahmantamala/payroll-engine/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config            *internal.Config
	DB                *sqlx.DB
	GormDB            *gorm.DB
	Router            *chi.Mux
	Handlers          rest.Handlers
	RBAC              *auth.RBACAuthorization
	EventBus          *events.EventBus
	PayrollService    *payroll.Service
	BankExportService *bankexport.Service
	Logger            *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.RBAC, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	appLogger := logger.LoggerWrapper()

	if _, err := swagger.LoadSpec(context.Background(), "api/openapi.yml"); err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	eventBus := events.NewEventBus(appLogger)
	audit.NewEventHandler(appLogger).RegisterEventHandlers(eventBus)
	baseHandler := transport.NewBaseHandler(appLogger)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authPostgres.NewRepository(gormDB), tokenGen, config.Security.BCryptCost)
	authHandler := auth.NewHandler(authService)
	rbac := auth.NewRBACAuthorization(appLogger)

	departmentService := department.NewService(departmentPostgres.NewDepartmentRepository(gormDB), appLogger)
	departmentHandler := department.NewHandler(baseHandler, departmentService)

	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(gormDB), appLogger)
	employeeHandler := employee.NewHandler(baseHandler, employeeService)

	compensationService := compensation.NewService(compensationPostgres.NewCompensationRepository(gormDB), appLogger)
	compensationHandler := compensation.NewHandler(baseHandler, compensationService)

	payrollService := payroll.NewService(
		payrollPostgres.NewRunRepository(gormDB),
		payrollPostgres.NewPayslipRepository(gormDB),
		employeeService,
		compensationService,
		eventBus,
		config.Payroll.WorkerCount,
		appLogger,
	)
	payrollHandler := payroll.NewHandler(baseHandler, payrollService)

	bankExportService := bankexport.NewService(
		bankexportPostgres.NewBankExportRepository(gormDB),
		payrollService,
		compensationService,
		eventBus,
		bankexport.FileIdentity{
			OriginName:         config.Export.OriginName,
			OriginRouting:      config.Export.OriginRouting,
			DestinationName:    config.Export.DestinationName,
			DestinationRouting: config.Export.DestinationRouting,
		},
		appLogger,
	)
	bankExportHandler := bankexport.NewHandler(baseHandler, bankExportService)

	return &Dependencies{
		Config: config,
		Logger: appLogger,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
		RBAC:   rbac,
		Handlers: rest.Handlers{
			Auth:         authHandler,
			Department:   departmentHandler,
			Employee:     employeeHandler,
			Compensation: compensationHandler,
			Payroll:      payrollHandler,
			BankExport:   bankExportHandler,
		},
		EventBus:          eventBus,
		PayrollService:    payrollService,
		BankExportService: bankExportService,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
