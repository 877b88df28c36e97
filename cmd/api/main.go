package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/motorph/payroll-backend-go/internal/config"
	appHTTP "github.com/motorph/payroll-backend-go/internal/handler/http"
	"github.com/motorph/payroll-backend-go/internal/pkg/database"
	"github.com/motorph/payroll-backend-go/internal/pkg/jwt"
	"github.com/motorph/payroll-backend-go/internal/pkg/storage"
	"github.com/motorph/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/motorph/payroll-backend-go/internal/service/attendance"
	authService "github.com/motorph/payroll-backend-go/internal/service/auth"
	employeeService "github.com/motorph/payroll-backend-go/internal/service/employee"
	importerService "github.com/motorph/payroll-backend-go/internal/service/importer"
	payrollService "github.com/motorph/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	releaseRepo := postgresql.NewReleaseStatusRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	importLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("component", "importer"),
	)

	authSvc := authService.NewAuthService(employeeRepo, JWTService, cfg.Auth.MasterPassword)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, cfg.Auth.DefaultPassword)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, attendanceRepo, releaseRepo)
	importSvc := importerService.NewImportService(
		db,
		employeeRepo,
		attendanceRepo,
		fileStorage,
		cfg.Auth.DefaultPassword,
		cfg.Import.BatchSize,
		importLogger,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	importHandler := appHTTP.NewImportHandler(importSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		importHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
