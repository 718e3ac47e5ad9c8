package core

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"topup-backend-go/internal/db"
	"topup-backend-go/internal/models"
)

// statusService implements StatusService. The flag defaults to open and only
// the watch loop mutates it, so a failed or absent subscription can never
// leave the store stuck closed.
type statusService struct {
	statusRepo db.StatusRepository
	logger     *zap.Logger

	mu      sync.Mutex
	current models.StoreStatus
	subs    map[int]func(models.StoreStatus)
	nextSub int
}

// NewStatusService creates a StatusService instance. The initial state is
// open until the first snapshot arrives.
func NewStatusService(statusRepo db.StatusRepository, logger *zap.Logger) StatusService {
	return &statusService{
		statusRepo: statusRepo,
		logger:     logger,
		current:    models.StoreStatus{Open: true},
		subs:       make(map[int]func(models.StoreStatus)),
	}
}

// Run opens the live subscription and folds every event into the flag.
// Missing documents and stream errors reduce to open=true, same as a
// present document with open=true.
func (s *statusService) Run(ctx context.Context) error {
	events, err := s.statusRepo.Watch(ctx)
	if err != nil {
		// Even the subscription refusing to open is non-fatal: stay open.
		s.apply(models.StoreStatus{Open: true})
		return fmt.Errorf("failed to open status subscription: %w", err)
	}
	for ev := range events {
		switch {
		case ev.Err != nil:
			s.logger.Warn("status subscription error, defaulting to open", zap.Error(ev.Err))
			s.apply(models.StoreStatus{Open: true})
		case ev.Missing:
			s.apply(models.StoreStatus{Open: true})
		default:
			s.apply(ev.Status)
		}
	}
	return ctx.Err()
}

// apply is the single update path: store, then notify subscribers outside
// the lock.
func (s *statusService) apply(st models.StoreStatus) {
	s.mu.Lock()
	s.current = st
	fns := make([]func(models.StoreStatus), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

func (s *statusService) Current() models.StoreStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers fn and invokes it once with the current status, the
// same way the page re-renders on the initial snapshot.
func (s *statusService) Subscribe(fn func(models.StoreStatus)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	st := s.current
	s.mu.Unlock()

	fn(st)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// SetOpen checks the session before anything else; a non-admin caller is
// rejected without contacting the backing store.
func (s *statusService) SetOpen(ctx context.Context, session models.Session, open bool) error {
	if !session.IsAdmin {
		s.logger.Warn("status write rejected for non-admin",
			zap.String("user_id", session.UserID),
			zap.Bool("open", open),
		)
		return ErrAccessDenied
	}
	if err := s.statusRepo.SetOpen(ctx, open); err != nil {
		return fmt.Errorf("failed to write store status: %w", err)
	}
	s.logger.Info("store status updated",
		zap.String("user_id", session.UserID),
		zap.Bool("open", open),
	)
	return nil
}
