package app

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"bahar-go/internal/browser"
	"bahar-go/internal/config"
	"bahar-go/internal/repositories"
	"bahar-go/internal/scheduler"
	"bahar-go/internal/services/bidding"
)

type App struct {
	Config     *config.Config
	Pool       *pgxpool.Pool
	Repo       repositories.ProposalRepository
	Notifier   bidding.Notifier
	Source     bidding.ProjectSource
	Submitter  bidding.OfferSubmitter
	Browsers   *browser.Manager
	BidService *bidding.Service
	Scheduler  *scheduler.Scheduler
	Server     *http.Server

	ownsPool bool
}

func (a *App) Start() error {
	if err := a.Scheduler.Start(); err != nil {
		return err
	}

	go func() {
		log.Printf("HTTP server listening on %s", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.Scheduler.Stop()
	if err := a.Server.Shutdown(ctx); err != nil {
		return err
	}
	if err := a.Browsers.Shutdown(); err != nil {
		log.Printf("browser shutdown error: %v", err)
	}
	if a.ownsPool {
		a.Pool.Close()
	}
	return nil
}
