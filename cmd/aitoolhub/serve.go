package main

import (
	"context"
	"net/http"

	"github.com/aitoolhub/aitoolhub/internal/api"
	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/config"
	"github.com/aitoolhub/aitoolhub/internal/db"
	"github.com/aitoolhub/aitoolhub/internal/news"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/aitoolhub/aitoolhub/internal/store/jsonstore"
	"github.com/aitoolhub/aitoolhub/internal/store/sqlstore"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and the news refresh schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			stores, cleanup, err := openStores(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			authHandlers := auth.NewHandlers(stores.Users, cfg.JWT.Secret, cfg.JWT.TTL, cfg.AdminEmail, logger)
			authMiddleware := auth.NewMiddleware(cfg.JWT.Secret, logger)

			router := api.NewRouter(api.Deps{
				AuthHandlers:   authHandlers,
				AuthMiddleware: authMiddleware,
				Stores:         stores,
				Logger:         logger,
			})

			if len(cfg.News.Feeds) > 0 {
				fetcher := news.NewFetcher(stores.News, cfg.News.Feeds, logger)
				scheduler := news.NewScheduler(fetcher, logger)
				if err := scheduler.Start(context.Background(), cfg.News.Schedule); err != nil {
					return err
				}
				defer scheduler.Stop()
				logger.Info("news refresh scheduled",
					zap.String("schedule", cfg.News.Schedule),
					zap.Int("feeds", len(cfg.News.Feeds)))
			}

			logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}

// openStores builds the store backend selected by config: flat JSON files
// by default, or a migrated SQL database.
func openStores(cfg *config.Config) (store.Stores, func() error, error) {
	if cfg.Store.Driver == "json" {
		stores, err := jsonstore.Open(cfg.Store.DataDir)
		if err != nil {
			return store.Stores{}, nil, err
		}
		return stores, func() error { return nil }, nil
	}

	conn, err := db.New(cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return store.Stores{}, nil, err
	}
	if err := db.Migrate(conn, cfg.Store.Driver); err != nil {
		conn.Close()
		return store.Stores{}, nil, err
	}
	return sqlstore.New(conn), conn.Close, nil
}
