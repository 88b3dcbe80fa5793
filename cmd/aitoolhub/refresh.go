package main

import (
	"context"
	"fmt"

	"github.com/aitoolhub/aitoolhub/internal/config"
	"github.com/aitoolhub/aitoolhub/internal/news"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRefreshNewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-news",
		Short: "Fetch the configured feeds once and update the news file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if len(cfg.News.Feeds) == 0 {
				return fmt.Errorf("no news feeds configured (AIHUB_NEWS_FEEDS)")
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

			fetcher := news.NewFetcher(stores.News, cfg.News.Feeds, logger)
			return fetcher.Refresh(context.Background())
		},
	}
}
