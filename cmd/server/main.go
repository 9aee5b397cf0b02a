package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naaricare/riskapi/internal/api"
	"github.com/naaricare/riskapi/internal/audit"
	"github.com/naaricare/riskapi/internal/config"
	"github.com/naaricare/riskapi/internal/menopause"
	"github.com/naaricare/riskapi/internal/pcos"
	"github.com/naaricare/riskapi/internal/recommend"
)

func main() {
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	table, err := loadTable(cfg)
	if err != nil {
		log.Fatalf("recommendation table error: %v", err)
	}

	// Artifact loading is all-or-nothing: any missing or corrupt model file
	// stops the process before it can serve traffic.
	pcosEngine, err := pcos.LoadEngine(cfg.PCOSArtifactDir, table)
	if err != nil {
		log.Fatalf("pcos artifacts: %v", err)
	}
	menoEngine, err := menopause.LoadEngine(cfg.MenopauseArtifactDir, table)
	if err != nil {
		log.Fatalf("menopause artifacts: %v", err)
	}

	ctx := context.Background()
	var store api.Store
	if cfg.EnableDB {
		s, err := audit.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("audit store connection failed: %v", err)
		}
		defer s.Close()
		store = s
	}

	router := api.NewRouter(pcosEngine, menoEngine, store)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	log.Printf("server listening on :%s", cfg.Port)
	waitForShutdown(server)
}

func loadTable(cfg *config.Config) (*recommend.Table, error) {
	if cfg.RecommendTablePath != "" {
		return recommend.FromFile(cfg.RecommendTablePath)
	}
	return recommend.Default()
}

func waitForShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
