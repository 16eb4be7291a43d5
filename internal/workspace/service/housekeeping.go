package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/teamloft/teamloft/internal/workspace/store"
)

// HousekeepingService periodically flips overdue PENDING invitations to
// EXPIRED. Reads already filter on expires_at, so the sweep only keeps the
// stored status honest; the service stays correct if it never runs.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service with the given
// interval. An interval of 0 or less defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut it
// down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down, blocking until any in-progress sweep finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep immediately on startup to catch anything that lapsed while the
	// service was down.
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) sweep() {
	ctx := context.Background()

	n, err := s.Store.Invitations().MarkExpired(ctx, time.Now().UTC())
	if err != nil {
		s.Logger.Error("failed to expire invitations", "error", err)
		return
	}
	if n > 0 {
		s.Logger.Info("expired invitations swept", "count", n)
	}
}
