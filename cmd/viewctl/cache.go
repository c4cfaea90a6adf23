package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-views/internal/repository"
	"github.com/noah-isme/sma-adp-views/internal/service"
	"github.com/noah-isme/sma-adp-views/pkg/cache"
	"github.com/noah-isme/sma-adp-views/pkg/config"
)

func newCacheCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the shared view cache",
	}
	cmd.AddCommand(newCacheInvalidateCmd(root))
	return cmd
}

func newCacheInvalidateCmd(root *rootOptions) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "invalidate <classes|departments|subjects|faculty> [id]",
		Short: "Drop cached pages of a resource, or of one record when id is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, err := service.ParseResource(args[0])
			if err != nil {
				return err
			}
			var id string
			if len(args) == 2 {
				id = args[1]
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := sharedCache(cfg.Views); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, err := cache.NewRedis(ctx, cfg.Redis)
			if err != nil {
				return fmt.Errorf("connect redis: %w", err)
			}
			repo := repository.NewCacheRepository(client, root.logger)
			defer repo.Close()

			caches := service.NewCacheService(repo, nil, cfg.Views.CacheTTL, root.logger, true)
			views := service.NewViewService(service.ViewRepositories{}, nil, caches, nil, nil, root.logger, 0, timeout)
			if err := views.Invalidate(ctx, resource, id); err != nil {
				return err
			}
			root.logger.Debug("view cache invalidated", zap.String("resource", string(resource)), zap.String("id", id))
			return root.write(cmd.OutOrStdout(), map[string]string{
				"resource": string(resource),
				"id":       id,
				"status":   "invalidated",
			})
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "connect and delete timeout")
	return cmd
}

// sharedCache reports why the CLI cannot reach the configured cache, if it cannot.
func sharedCache(cfg config.ViewsConfig) error {
	if !cfg.CacheEnabled {
		return errors.New("view cache is disabled (ENABLE_VIEW_CACHE=false)")
	}
	if cfg.CacheBackend == config.CacheBackendMemory {
		return errors.New("the memory cache lives inside the API process; use DELETE {API_PREFIX}/views/cache/{resource} on the API instead")
	}
	return nil
}
