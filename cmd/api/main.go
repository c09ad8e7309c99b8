package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmacia/internal/config"
	"farmacia/internal/database"
	"farmacia/internal/server"
)

func main() {
	seedOnly := flag.Bool("seed", false, "insert the default especialidades and tipos, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	if *seedOnly {
		db, err := server.Bootstrap(ctx, cfg)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer database.Close(db)
		if err := server.Seed(ctx, db); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	srv, err := server.NewServer(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
	defer srv.Close()

	go func() {
		log.Printf("Server listening on %s\n", srv.HTTP.Addr)
		if err := srv.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server gracefully ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTP.Shutdown(shutdownCtx); err != nil {
		log.Println("Server Shutdown:", err)
	}
	log.Println("Server exiting")
}
