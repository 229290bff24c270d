package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"detailbook/internal/httpapi"
	"detailbook/pkg/config"
	"detailbook/pkg/db"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.Admin.Username == "" || (cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "") {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD (or ADMIN_PASSWORD_HASH) are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer conn.Close()

	if cfg.MigrationsPath != "" {
		if err := db.Migrate(cfg.MigrationsPath, cfg); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	router := httpapi.NewRouter(httpapi.Dependencies{
		Cfg: cfg,
		DB:  conn,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("http listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(shutdownCtx)
}
