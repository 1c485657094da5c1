package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"laundry-scout.backend/internal/domain/entities"
	"laundry-scout.backend/pkg/logger"
)

type businessFeed interface {
	CreatedAfter(ctx context.Context, t time.Time, limit int) ([]*entities.BusinessProfile, error)
}

type userFeed interface {
	CreatedAfter(ctx context.Context, t time.Time, limit int) ([]*entities.UserProfile, error)
}

type broadcaster interface {
	Broadcast(event entities.Event)
	ClientCount() int
}

// RegistrationWatcher polls for rows written by the mobile apps (new
// customer signups and business applications) and pushes them to the
// realtime hub. Each source keeps its own watermark so a slow table
// never stalls the other.
type RegistrationWatcher struct {
	businesses businessFeed
	users      userFeed
	hub        broadcaster
	interval   time.Duration
	batchSize  int
	stop       chan struct{}

	businessMark time.Time
	userMark     time.Time
}

func NewRegistrationWatcher(businesses businessFeed, users userFeed, hub broadcaster, interval time.Duration) *RegistrationWatcher {
	now := time.Now()
	return &RegistrationWatcher{
		businesses:   businesses,
		users:        users,
		hub:          hub,
		interval:     interval,
		batchSize:    100,
		stop:         make(chan struct{}),
		businessMark: now,
		userMark:     now,
	}
}

func (w *RegistrationWatcher) Start(ctx context.Context) {
	logger.Info(ctx, "starting registration watcher", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "registration watcher stopped (context cancelled)")
			return
		case <-w.stop:
			logger.Info(ctx, "registration watcher stopped")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *RegistrationWatcher) Stop() {
	close(w.stop)
}

func (w *RegistrationWatcher) poll(ctx context.Context) {
	// No dashboards connected means nobody to deliver to. The watermarks
	// stay put, so the next connected dashboard still gets everything
	// since the last delivered batch.
	if w.hub.ClientCount() == 0 {
		return
	}

	w.pollBusinesses(ctx)
	w.pollUsers(ctx)
}

func (w *RegistrationWatcher) pollBusinesses(ctx context.Context) {
	rows, err := w.businesses.CreatedAfter(ctx, w.businessMark, w.batchSize)
	if err != nil {
		logger.Error(ctx, "registration watcher: business poll failed", zap.Error(err))
		return
	}
	for _, b := range rows {
		w.hub.Broadcast(entities.Event{
			Type:    entities.NotificationTypeBusiness,
			Payload: b,
			At:      b.CreatedAt,
		})
		if b.CreatedAt.After(w.businessMark) {
			w.businessMark = b.CreatedAt
		}
	}
}

func (w *RegistrationWatcher) pollUsers(ctx context.Context) {
	rows, err := w.users.CreatedAfter(ctx, w.userMark, w.batchSize)
	if err != nil {
		logger.Error(ctx, "registration watcher: user poll failed", zap.Error(err))
		return
	}
	for _, u := range rows {
		w.hub.Broadcast(entities.Event{
			Type:    entities.NotificationTypeUser,
			Payload: u,
			At:      u.CreatedAt,
		})
		if u.CreatedAt.After(w.userMark) {
			w.userMark = u.CreatedAt
		}
	}
}
