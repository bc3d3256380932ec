package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zarky95/form-attendance/internal/config"
	attendanceDomain "github.com/zarky95/form-attendance/internal/domain/attendance"
	employeeDomain "github.com/zarky95/form-attendance/internal/domain/employee"
	"github.com/zarky95/form-attendance/internal/fixtures"
	appHTTP "github.com/zarky95/form-attendance/internal/handler/http"
	"github.com/zarky95/form-attendance/internal/pkg/database"
	"github.com/zarky95/form-attendance/internal/repository/memory"
	"github.com/zarky95/form-attendance/internal/repository/postgresql"
	attendanceService "github.com/zarky95/form-attendance/internal/service/attendance"
	employeeService "github.com/zarky95/form-attendance/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var employeeRepo employeeDomain.Repository
	var attendanceRepo attendanceDomain.Repository

	switch cfg.Storage.Type {
	case "memory":
		employeeRepo = memory.NewEmployeeRepository()
		attendanceRepo = memory.NewAttendanceRepository()
		if cfg.Storage.Seed {
			if err := fixtures.SeedSampleData(context.Background(), employeeRepo, attendanceRepo); err != nil {
				log.Fatal("Failed to seed sample data: ", err)
			}
		}
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		defer db.Close()
		employeeRepo = postgresql.NewEmployeeRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(employeeHandler, attendanceHandler, cfg.App.CORSOrigin)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		fmt.Println("Server error:", err)
	}
}
