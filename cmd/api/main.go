package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"greenmarket-backend/internal/adapter/export"
	httpadp "greenmarket-backend/internal/adapter/http"
	"greenmarket-backend/internal/adapter/repository/mysql"
	"greenmarket-backend/internal/config"
	estimationDomain "greenmarket-backend/internal/domain/estimation"
	"greenmarket-backend/internal/infrastructure/cache"
	"greenmarket-backend/internal/infrastructure/db"
	"greenmarket-backend/internal/usecase/estimation"
	"greenmarket-backend/internal/usecase/maintenance"
	"greenmarket-backend/internal/usecase/project"
	"greenmarket-backend/internal/usecase/quotation"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), cfg.DBDebug)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer sqlDB.Close()

	rdb, err := cache.OpenRedis(cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	// repositories
	quotations := mysql.NewQuotationRepository(gdb)
	versions := mysql.NewVersionRepository(gdb)
	projects := mysql.NewProjectRepository(gdb)
	maintenances := mysql.NewMaintenanceRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	estimationUC, err := estimation.NewUsecase(estimationDomain.Params{
		PanelSize:        cfg.PanelSize,
		PanelWattage:     cfg.PanelWattage,
		SunHours:         cfg.SunHours,
		PerformanceRatio: cfg.PerformanceRatio,
		ElectricityRate:  cfg.ElectricityRate,
	})
	if err != nil {
		log.Fatalf("estimation: %v", err)
	}
	quotationUC := quotation.NewUsecase(quotations, versions, tx, export.NewXLSX())
	projectUC := project.NewUsecase(projects, tx)
	maintenanceUC := maintenance.NewUsecase(maintenances, projects, tx)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	registerRoutes(e, handlers{
		health: httpadp.NewHandler(map[string]httpadp.Check{
			"db":    sqlDB.PingContext,
			"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
		estimation:  httpadp.NewEstimationHandler(estimationUC),
		quotation:   httpadp.NewQuotationHandler(quotationUC),
		project:     httpadp.NewProjectHandler(projectUC),
		maintenance: httpadp.NewMaintenanceHandler(maintenanceUC),
	}, rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	addr := ":" + cfg.AppPort
	go func() {
		log.Printf("listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
