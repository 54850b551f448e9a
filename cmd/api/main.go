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

	"github.com/go-chi/httplog/v3"
	"github.com/shiftsync/shiftsync-backend-go/internal/config"
	appHTTP "github.com/shiftsync/shiftsync-backend-go/internal/handler/http"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/cron"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/database"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/idgen"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/jwt"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/local"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/postgresql"
	aboutService "github.com/shiftsync/shiftsync-backend-go/internal/service/about"
	attendanceService "github.com/shiftsync/shiftsync-backend-go/internal/service/attendance"
	serviceAuth "github.com/shiftsync/shiftsync-backend-go/internal/service/auth"
	serviceCompany "github.com/shiftsync/shiftsync-backend-go/internal/service/company"
	dashboardService "github.com/shiftsync/shiftsync-backend-go/internal/service/dashboard"
	deductionService "github.com/shiftsync/shiftsync-backend-go/internal/service/deduction"
	employeeService "github.com/shiftsync/shiftsync-backend-go/internal/service/employee"
	holidayService "github.com/shiftsync/shiftsync-backend-go/internal/service/holiday"
	importService "github.com/shiftsync/shiftsync-backend-go/internal/service/importer"
	"github.com/shiftsync/shiftsync-backend-go/internal/service/leave"
	payrollService "github.com/shiftsync/shiftsync-backend-go/internal/service/payroll"
	reportService "github.com/shiftsync/shiftsync-backend-go/internal/service/report"
	userService "github.com/shiftsync/shiftsync-backend-go/internal/service/user"
)

const appName = "shiftsync"

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Record store ready", "driver", cfg.Storage.Driver)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration.String())
	if err != nil {
		return fmt.Errorf("error creating jwt service: %w", err)
	}
	ids := idgen.NewUUIDv7()

	userRepo := local.NewUserRepository(store)
	companyRepo := local.NewCompanyRepository(store)
	employeeRepo := local.NewEmployeeRepository(store)
	attendanceRepo := local.NewAttendanceRepository(store)
	leaveRequestRepo := local.NewLeaveRequestRepository(store)
	holidayRepo := local.NewHolidayRepository(store)
	deductionRepo := local.NewDeductionRepository(store)
	aboutRepo := local.NewAboutRepository(store)

	userSvc := userService.NewUserService(store, userRepo)
	if err := userSvc.EnsureSeeded(ctx, cfg.Seed.CreatorPassword, cfg.Seed.AdminPassword); err != nil {
		return fmt.Errorf("error seeding users: %w", err)
	}

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	companySvc := serviceCompany.NewCompanyService(companyRepo)
	employeeSvc := employeeService.NewEmployeeService(store, employeeRepo, companyRepo, ids)
	attendanceSvc := attendanceService.NewAttendanceService(store, attendanceRepo, employeeRepo)
	leaveSvc := leave.NewLeaveService(store, leaveRequestRepo, employeeRepo, attendanceSvc, ids)
	holidaySvc := holidayService.NewHolidayService(store, holidayRepo, attendanceSvc, ids)
	deductionSvc := deductionService.NewDeductionService(deductionRepo, employeeRepo, ids)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, attendanceRepo, deductionRepo, holidaySvc, cfg.Payroll)
	importSvc := importService.NewImportService(employeeRepo, companyRepo, attendanceSvc, ids)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo)
	aboutSvc := aboutService.NewAboutService(aboutRepo, cfg.App.Version)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRequestRepo, reportSvc)

	router := appHTTP.NewRouter(JWTService, userRepo, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Deduction:  appHTTP.NewDeductionHandler(deductionSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Import:     appHTTP.NewImportHandler(importSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		User:       appHTTP.NewUserHandler(userSvc),
		About:      appHTTP.NewAboutHandler(aboutSvc),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.App.AllowedOrigins,
	})

	scheduler := cron.NewScheduler()
	expiryJob := cron.NewDocumentExpiryJob(reportSvc, cfg.Jobs.DocumentExpiryDays)
	scheduler.AddJob("document-expiry", cfg.Jobs.DocumentExpiryInterval, expiryJob.Fn)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}

// openStore returns the record store selected by STORAGE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		slog.Warn("Using in-memory store, data is lost on restart")
		return kvstore.NewMemory(), nil
	case config.StoragePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("error connecting to database: %w", err)
		}
		store, err := postgresql.NewStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return store, nil
	default:
		store, err := kvstore.NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("error opening sqlite store: %w", err)
		}
		return store, nil
	}
}
