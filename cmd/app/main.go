package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmoretti/gara-planner/internal/config"
	"github.com/lmoretti/gara-planner/internal/db"
	"github.com/lmoretti/gara-planner/internal/handler"
	"github.com/lmoretti/gara-planner/internal/handler/server"
	"github.com/lmoretti/gara-planner/internal/repository/postgres"
	"github.com/lmoretti/gara-planner/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	planRepo := postgres.NewPlanRepository(database)
	adjustmentRepo := postgres.NewAdjustmentRepository(database)

	planService := service.NewPlanService(planRepo)
	adjustmentService := service.NewAdjustmentService(planRepo, adjustmentRepo)

	h := handler.NewHandler(planService, adjustmentService)
	srv := server.NewServer(h, cfg.HTTPAddr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
