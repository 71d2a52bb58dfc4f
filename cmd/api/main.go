package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/talentbase/hr-backend-go/internal/config"
	appHTTP "github.com/talentbase/hr-backend-go/internal/handler/http"
	"github.com/talentbase/hr-backend-go/internal/pkg/database"
	"github.com/talentbase/hr-backend-go/internal/pkg/jwt"
	"github.com/talentbase/hr-backend-go/internal/repository/postgresql"
	employeeService "github.com/talentbase/hr-backend-go/internal/service/employee"
	vacationService "github.com/talentbase/hr-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	balanceRepo := postgresql.NewBalanceRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	vacationSvc := vacationService.NewService(txManager, balanceRepo, requestRepo, employeeRepo)
	employeeSvc := employeeService.NewService(txManager, employeeRepo, balanceRepo)

	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, jwtService, vacationHandler, employeeHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Starting server", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
