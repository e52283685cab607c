package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"traiteur/internal/api"
	"traiteur/internal/assistant"
	"traiteur/internal/assistant/providers"
	"traiteur/internal/config"
	"traiteur/internal/fixtures"
	"traiteur/internal/monitoring"
	"traiteur/internal/store"

	"github.com/gin-gonic/gin"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
	seed        = flag.Bool("seed", true, "Seed the stores with demonstration data")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	stores := api.Stores{
		Clients:   store.NewClientStore(),
		Orders:    store.NewOrderStore(),
		Dishes:    store.NewDishStore(),
		Menus:     store.NewMenuStore(),
		Inventory: store.NewInventoryStore(),
	}
	if *seed {
		fixtures.Seed(stores)
	}

	chat := assistant.NewService(initializeProvider(cfg))
	monitor := monitoring.NewMonitor()
	server := api.NewServer(stores, chat, monitor)

	go startMetricsServer(cfg.Server.MetricsPort, monitor)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Router(),
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// initializeProvider builds the configured chat backend. The service
// runs without one; chat endpoints then answer 503.
func initializeProvider(cfg *config.Config) providers.Provider {
	var (
		p   providers.Provider
		err error
	)

	switch cfg.Assistant.Provider {
	case "azure":
		p, err = providers.NewAzureOpenAIProvider()
	default:
		p, err = providers.NewOpenAIProvider(cfg.Assistant.Model)
	}
	if err != nil {
		log.Printf("Chat assistant disabled: %v", err)
		return nil
	}

	p.SetTemperature(cfg.Assistant.Temperature)
	p.SetMaxTokens(cfg.Assistant.MaxTokens)
	return p
}

func startMetricsServer(port int, monitor *monitoring.Monitor) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(monitor.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
