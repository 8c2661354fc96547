package components

import (
	"context"

	"tidybook/internal/infra/catalogstore"
	"tidybook/internal/infra/checkout"
	"tidybook/internal/infra/db"
	"tidybook/internal/infra/sessionstore"
	"tidybook/internal/pkg/clock"
	"tidybook/internal/pkg/config"
	"tidybook/internal/pkg/errs"
	"tidybook/internal/usecase/commands"
	"tidybook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewCatalogStore,
		// Write side reads from the same catalog source.
		func(s queries.CatalogReader) commands.CatalogRepository { return s },
		NewSessionStore,
		func(s commands.DraftSessions) queries.DraftSessionReader { return s },
		fx.Annotate(
			checkout.NewSimulated,
			fx.As(new(commands.CheckoutGateway)),
		),
	),
)

func NewCatalogStore(lc fx.Lifecycle, cfg config.Config) (queries.CatalogReader, error) {
	switch cfg.Catalog.Source {
	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return catalogstore.NewPostgres(pool), nil
	case "static":
		if cfg.Catalog.File != "" {
			return catalogstore.NewStaticFromFile(cfg.Catalog.File)
		}
		return catalogstore.NewStatic()
	default:
		return nil, errs.Newf("unknown catalog source: %s", cfg.Catalog.Source)
	}
}

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (commands.DraftSessions, error) {
	switch cfg.Session.Store {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return sessionstore.NewRedis(client, cfg.Session.TTL), nil
	case "memory":
		return sessionstore.NewMemory(cfg.Session.TTL, clk), nil
	default:
		return nil, errs.Newf("unknown session store: %s", cfg.Session.Store)
	}
}
