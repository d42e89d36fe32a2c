package container

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"trf/navmenu/internal/activation"
	"trf/navmenu/internal/config"
	"trf/navmenu/internal/discovery"
	"trf/navmenu/internal/domain"
	"trf/navmenu/internal/metric"
	"trf/navmenu/internal/server"
	"trf/navmenu/internal/service"
	"trf/navmenu/internal/state"
)

// Container holds all initialized components
type Container struct {
	Config       *config.Config
	Client       discovery.Client
	StateManager state.SnapshotStore
	Service      *service.Service
	Server       *server.Server
	Registry     *prometheus.Registry

	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config:   cfg,
		Registry: prometheus.NewRegistry(),
	}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		container.StateManager = state.NewRedisSnapshotStore(rdb, time.Duration(cfg.Redis.SnapshotTTL)*time.Second)
	}

	container.Client = discovery.NewClient(discovery.ClientOptions{
		Timeout:              time.Duration(cfg.Discovery.Timeout) * time.Second,
		MaxRequestsPerSecond: cfg.Discovery.MaxRequestsPerSecond,
		Proxy:                cfg.Discovery.Proxy,
		UserAgent:            "trf-navmenu",
	})

	container.Service = service.NewService(
		container.Client,
		container.StateManager,
		metric.NewMetrics(container.Registry),
		service.Options{
			DiscoveryEnabled: cfg.Discovery.Enabled,
			Discovery:        DiscoveryConfig(cfg.Discovery),
			KeepSections:     cfg.Menu.KeepSections,
			ServiceToken:     cfg.Discovery.ServiceToken,
		},
	)

	handler := server.NewHandler(container.Service, BaseURLs(cfg.Apps), ActivationConfig(cfg.Menu))
	container.Server = server.New(handler.Routes(container.Registry),
		server.WithHost(cfg.Server.Host),
		server.WithPort(cfg.Server.Port),
		server.WithReadTimeout(time.Duration(cfg.Server.ReadTimeout)*time.Second),
		server.WithWriteTimeout(time.Duration(cfg.Server.WriteTimeout)*time.Second),
		server.WithShutdownTimeout(time.Duration(cfg.Server.ShutdownTimeout)*time.Second),
	)

	return container, nil
}

// DiscoveryConfig maps the discovery section onto a per-call config.
func DiscoveryConfig(cfg config.DiscoveryConfig) discovery.Config {
	return discovery.Config{
		MenuURL:        cfg.MenuURL,
		MenuGroup:      cfg.MenuGroup,
		FallbackGroup:  cfg.FallbackGroup,
		AuthCookieName: cfg.AuthCookieName,
		IfMatch:        cfg.IfMatch,
		Credentials:    discovery.Credentials(cfg.Credentials),
		Origin:         cfg.Origin,
	}.WithDefaults()
}

// BaseURLs builds the application base URL table, skipping blank entries.
func BaseURLs(apps map[string]string) domain.AppBaseURLs {
	urls := make(domain.AppBaseURLs, len(apps))
	for app, base := range apps {
		if base == "" {
			continue
		}
		id := domain.AppID(app)
		if !slices.Contains(domain.AppIDs, id) {
			log.Warnf("⚠️ Base URL configured for unknown application %q", app)
		}
		urls[id] = base
	}
	return urls
}

// ActivationConfig overlays configured default sections on the built-in table.
func ActivationConfig(cfg config.MenuConfig) activation.Config {
	act := activation.DefaultConfig()
	if cfg.HomePath != "" {
		act.HomePath = cfg.HomePath
	}
	for app, section := range cfg.DefaultOpen {
		act.DefaultOpen[domain.AppID(app)] = section
	}
	return act
}

// Run serves the menu and keeps the discovery snapshot warm
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Server.Serve(ctx)
	})

	g.Go(func() error {
		return c.Service.RunRefresher(ctx, time.Duration(c.Config.Discovery.RefreshInterval)*time.Second)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("failed to close Redis client: %w", err)
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
