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

	"github.com/Sudip-8345/OmniBook-AI/internal/agentloop"
	"github.com/Sudip-8345/OmniBook-AI/internal/bookingdb"
	"github.com/Sudip-8345/OmniBook-AI/internal/catalog"
	"github.com/Sudip-8345/OmniBook-AI/internal/config"
	"github.com/Sudip-8345/OmniBook-AI/internal/httpapi"
	"github.com/Sudip-8345/OmniBook-AI/internal/notify"
	"github.com/Sudip-8345/OmniBook-AI/internal/provider"
	"github.com/Sudip-8345/OmniBook-AI/memory"
	"github.com/Sudip-8345/OmniBook-AI/tools"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newServerLogger(serverLogOutput)

	bookings, err := bookingdb.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open booking database: %v", err)
	}
	defer bookings.Close()

	tickets := catalog.New(cfg.TicketsPath)
	mailer := notify.New(cfg.SMTPAddr, cfg.SMTPEmail, cfg.SMTPPassword)

	client := provider.NewAnthropicClient()
	runner := agentloop.New(client, provider.Model(), tools.Registry(tickets, bookings, mailer))
	runner.MaxCycles = cfg.MaxCycles
	runner.ModelTimeout = cfg.ModelTimeout
	runner.ToolTimeout = cfg.ToolTimeout

	var sessions memory.Store
	if cfg.SessionsDir != "" {
		sessions, err = memory.NewSnapshotStore(cfg.SessionsDir)
		if err != nil {
			log.Fatalf("open session store: %v", err)
		}
	} else {
		sessions = memory.NewInMemoryStore()
	}

	service := agentloop.NewService(sessions, runner)
	handler := httpapi.New(service, bookings, logger)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	serverErrCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "model", provider.Model())
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverErrCh <- err
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrCh:
		if err != nil {
			log.Fatalf("server exited: %v", err)
		}
		return
	case <-sigCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown server: %v", err)
	}

	if err := <-serverErrCh; err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
