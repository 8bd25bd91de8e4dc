package bidding

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"bahar-go/internal/model"
	"bahar-go/internal/offer"
	"bahar-go/internal/repositories"
)

// Config carries the bid-cycle limits.
type Config struct {
	MaxOffersPerDay      int
	MinBudget            int64
	MaxBudget            int64
	MaxConsecutiveErrors int
}

func (c Config) withDefaults() Config {
	if c.MaxOffersPerDay <= 0 {
		c.MaxOffersPerDay = 10
	}
	if c.MaxConsecutiveErrors <= 0 {
		c.MaxConsecutiveErrors = 3
	}
	return c
}

// Service runs bid cycles: discover open projects, generate offers, drive
// the proposal form, record and announce submissions.
type Service struct {
	repo      repositories.ProposalRepository
	notifier  Notifier
	source    ProjectSource
	submitter OfferSubmitter
	prefs     model.UserPreferences
	cfg       Config

	mu          sync.Mutex
	running     bool
	day         time.Time
	offersToday int
}

func NewService(repo repositories.ProposalRepository, notifier Notifier, source ProjectSource, submitter OfferSubmitter, prefs model.UserPreferences, cfg Config) *Service {
	return &Service{
		repo:      repo,
		notifier:  notifier,
		source:    source,
		submitter: submitter,
		prefs:     prefs,
		cfg:       cfg.withDefaults(),
	}
}

// Run executes one bid cycle. Overlapping runs are skipped.
func (s *Service) Run(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.Println("bid cycle already running; skipping")
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	if err := s.cycle(ctx); err != nil {
		log.Printf("bid cycle error: %v", err)
	}
}

type cycleStats struct {
	fetched     int
	outOfBudget int
	closed      int
	duplicates  int
	capped      int
	skipped     int
	failed      int
	recorded    int
	submitted   int
}

func (s *Service) cycle(ctx context.Context) error {
	log.Printf("Bid cycle started")
	start := time.Now()

	projects, err := s.source.ListOpenProjects(ctx)
	if err != nil {
		return err
	}

	stats := cycleStats{fetched: len(projects)}
	consecutiveErrors := 0

	for _, project := range projects {
		if ctx.Err() != nil {
			break
		}
		if s.dailyCapReached() {
			stats.capped++
			log.Printf("daily offer cap reached (%d)", s.cfg.MaxOffersPerDay)
			break
		}

		if !model.InBudgetBand(model.ParseBudgetAmount(project.BudgetText), s.cfg.MinBudget, s.cfg.MaxBudget) {
			stats.outOfBudget++
			continue
		}
		if !isOpen(project) {
			stats.closed++
			continue
		}

		exists, err := s.repo.Exists(ctx, project.Source, project.ExternalID)
		if err != nil {
			log.Printf("[%s] duplicate check failed: %v", project.Source, err)
			continue
		}
		if exists {
			stats.duplicates++
			continue
		}

		generated := offer.GenerateOffer(project, s.prefs)
		log.Printf("[%s] generated offer for %q: total=%d SAR milestones=%d monthly=%v",
			project.Source, project.Title, generated.TotalPriceSAR, generated.MilestoneNumber, generated.IsMonthly)

		result, err := s.submitter.SubmitOffer(ctx, project, generated)
		if err != nil {
			stats.failed++
			consecutiveErrors++
			log.Printf("[%s] offer submission failed for %q: %v", project.Source, project.Title, err)
			if consecutiveErrors >= s.cfg.MaxConsecutiveErrors {
				log.Printf("too many consecutive errors (%d); stopping cycle", consecutiveErrors)
				break
			}
			continue
		}
		consecutiveErrors = 0

		if result.Skipped {
			stats.skipped++
			log.Printf("[%s] skipped %q: %s", project.Source, project.Title, result.Reason)
			continue
		}

		category := offer.ClassifyProject(project.Title, project.Description, project.Skills)
		saved, created, err := s.repo.CreateIfNotExists(ctx, model.ProposalCreate{
			Source:        project.Source,
			ExternalID:    project.ExternalID,
			Title:         project.Title,
			Link:          project.Link,
			Category:      string(category),
			TotalPriceSAR: int64(generated.TotalPriceSAR),
			IsMonthly:     generated.IsMonthly,
			Submitted:     result.Submitted,
		})
		if err != nil {
			log.Printf("[%s] record proposal failed: %v", project.Source, err)
			continue
		}
		if !created {
			stats.duplicates++
			continue
		}

		stats.recorded++
		if result.Submitted {
			stats.submitted++
			s.countOffer()
		}

		if s.notifier != nil {
			notified := project
			notified.Link = saved.Link
			s.notifier.SendAlert(notified, generated)
		}
	}

	log.Printf("[%s] cycle summary: fetched=%d outOfBudget=%d closed=%d duplicates=%d capped=%d skipped=%d failed=%d recorded=%d submitted=%d duration=%s",
		s.source.Source(), stats.fetched, stats.outOfBudget, stats.closed, stats.duplicates, stats.capped,
		stats.skipped, stats.failed, stats.recorded, stats.submitted, time.Since(start).Round(time.Millisecond),
	)
	return nil
}

func (s *Service) dailyCapReached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := time.Now().Truncate(24 * time.Hour)
	if !s.day.Equal(today) {
		s.day = today
		s.offersToday = 0
	}
	return s.offersToday >= s.cfg.MaxOffersPerDay
}

func (s *Service) countOffer() {
	s.mu.Lock()
	s.offersToday++
	s.mu.Unlock()
}

// isOpen rejects projects whose listing already shows a terminal status.
var closedWords = []string{"closed", "مغلق", "completed", "finished", "منتهي"}

func isOpen(p model.ProjectInfo) bool {
	for _, word := range closedWords {
		if containsFold(p.Status, word) || containsFold(p.Title, word) {
			return false
		}
	}
	return true
}

func containsFold(text, word string) bool {
	return strings.Contains(strings.ToLower(text), word)
}
