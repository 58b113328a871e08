package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"z3z/auth"
	"z3z/comments"
	"z3z/config"
	"z3z/content"
	"z3z/site"
	"z3z/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := cfg.Logger()

	st := store.New(cfg.DataDir)
	if err := st.EnsureDir(); err != nil {
		log.Error("prepare data dir", "error", err)
		os.Exit(1)
	}

	repos := map[content.Collection]*content.Repository{}
	for _, coll := range content.Collections {
		repos[coll] = content.NewRepository(st, coll)
	}

	sessions := auth.NewManager(cfg.SessionTTL)
	authSvc := auth.NewService(st, sessions)
	if !authSvc.HasAccount() {
		log.Warn("no admin account provisioned; create data/admin.json with cmd/hashpw before logging in")
	}

	app := site.New(cfg, log, repos, comments.NewService(st), authSvc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: app.Router(),
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server listening", "addr", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server stopped", "error", err)
			os.Exit(1)
		}
	}()

	<-signals
	log.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
