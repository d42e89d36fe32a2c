package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"trf/navmenu/internal/discovery"
	"trf/navmenu/internal/domain"
	"trf/navmenu/internal/menu"
	"trf/navmenu/internal/metric"
	"trf/navmenu/internal/state"
)

// Options configures how the service hydrates the static tree.
type Options struct {
	DiscoveryEnabled bool
	Discovery        discovery.Config
	KeepSections     []string
	ServiceToken     string
}

// Service serves the menu tree, hydrated from discovery when enabled. Discovery failures never
// reach the caller: the last snapshot, then the static tree, is served instead.
type Service struct {
	client       discovery.Client
	stateManager state.SnapshotStore
	metrics      *metric.Metrics
	opts         Options
}

func NewService(
	client discovery.Client,
	stateManager state.SnapshotStore,
	metrics *metric.Metrics,
	opts Options,
) *Service {
	if opts.KeepSections == nil {
		opts.KeepSections = menu.DefaultKeepSections
	}
	opts.Discovery = opts.Discovery.WithDefaults()

	return &Service{
		client:       client,
		stateManager: stateManager,
		metrics:      metrics,
		opts:         opts,
	}
}

// Tree returns the menu tree for one request. cookies is the caller's ambient cookie store.
func (s *Service) Tree(ctx context.Context, cookies discovery.CookieStore) []domain.MenuItem {
	static := menu.Structure()
	if !s.opts.DiscoveryEnabled || s.client == nil {
		return static
	}

	cfg := s.opts.Discovery
	cfg.Cookies = cookies

	res, err := s.client.Fetch(ctx, cfg)
	if err != nil {
		s.countFetch("error")
		log.Warnf("⚠️ Discovery menu unavailable, using fallback: %v", err)
		return s.fallback(ctx, static)
	}
	s.countFetch("ok")

	return s.merge(static, res.Items)
}

func (s *Service) fallback(ctx context.Context, static []domain.MenuItem) []domain.MenuItem {
	if s.stateManager == nil {
		return static
	}

	snapshot, err := s.stateManager.Load(ctx, s.opts.Discovery.MenuGroup)
	if err != nil {
		log.Errorf("Failed to load menu snapshot: %v", err)
		return static
	}
	if snapshot == nil {
		return static
	}

	log.Debugf("Serving menu snapshot from %s", snapshot.FetchedAt.Format(time.RFC3339))
	return s.merge(static, snapshot.Items)
}

func (s *Service) merge(static, discovered []domain.MenuItem) []domain.MenuItem {
	tree := menu.Merge(static, discovered, s.opts.KeepSections)
	if err := menu.Validate(tree); err != nil {
		log.Errorf("❌ Hydrated menu is invalid, using static menu: %v", err)
		return static
	}
	return tree
}

// Refresh fetches the menu with the service token and stores it as the fallback snapshot.
func (s *Service) Refresh(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("discovery client is not configured")
	}

	cfg := s.opts.Discovery
	cfg.AuthToken = s.opts.ServiceToken
	cfg.Cookies = nil

	res, err := s.client.Fetch(ctx, cfg)
	if err != nil {
		s.countFetch("error")
		return fmt.Errorf("failed to refresh discovery menu: %w", err)
	}
	s.countFetch("ok")

	if s.stateManager == nil {
		return nil
	}

	snapshot := &state.Snapshot{
		Items:     res.Items,
		ETag:      res.ETag,
		FetchedAt: time.Now().UTC(),
	}
	if err := s.stateManager.Save(ctx, res.Group, snapshot); err != nil {
		return fmt.Errorf("failed to save menu snapshot: %w", err)
	}

	log.Infof("✅ Menu snapshot refreshed for group %s with %d items", res.Group, len(res.Items))
	return nil
}

// RunRefresher refreshes the snapshot every interval until ctx is done. Failed refreshes are
// logged and retried on the next tick.
func (s *Service) RunRefresher(ctx context.Context, interval time.Duration) error {
	if !s.opts.DiscoveryEnabled || s.stateManager == nil || interval <= 0 {
		log.Info("Menu snapshot refresher disabled")
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := s.Refresh(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warnf("🔄 %v", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RecordClick counts a resolved click by intent kind.
func (s *Service) RecordClick(intent domain.NavigationIntent) {
	if s.metrics == nil {
		return
	}
	s.metrics.Clicks.Increment(intent.Kind.String())
}

func (s *Service) countFetch(result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.DiscoveryFetches.Increment(result)
}
