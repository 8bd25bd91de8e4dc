package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"bahar-go/internal/services/bidding"
)

type Scheduler struct {
	cron    *cron.Cron
	service *bidding.Service
	spec    string
}

func New(spec string, service *bidding.Service) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		service: service,
		spec:    spec,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		log.Printf("scheduled bid cycle triggered")
		go s.service.Run(context.Background())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
