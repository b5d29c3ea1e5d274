package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yogabooking/internal/cart"
	"yogabooking/internal/config"
	router "yogabooking/internal/http"
	"yogabooking/internal/repositories"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	deps := buildStores(env)
	deps.Carts = cart.NewManager()

	r := router.NewRouter(env, deps)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s (store driver: %s)", env.AppAddr, env.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	config.CloseDB()
	log.Println("server stopped cleanly.")
}

func buildStores(env config.Env) router.Deps {
	if env.StoreDriver == "mysql" {
		db := config.ConnectDB(env.MySQLDSN)

		catalog := repositories.CatalogRepo{DB: db}
		ledger := repositories.LedgerRepo{DB: db}
		customers := repositories.CustomerRepo{DB: db}
		for _, ensure := range []func() error{catalog.EnsureSchema, ledger.EnsureSchema, customers.EnsureSchema} {
			if err := ensure(); err != nil {
				log.Fatalf("failed to ensure schema: %v", err)
			}
		}
		return router.Deps{Catalog: catalog, Ledger: ledger, Profiles: customers}
	}

	return router.Deps{
		Catalog:  repositories.NewMemoryCatalog(),
		Ledger:   repositories.NewMemoryLedger(),
		Profiles: repositories.NewMemoryProfiles(),
	}
}
