package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-views/internal/repository"
	"github.com/noah-isme/sma-adp-views/internal/service"
	"github.com/noah-isme/sma-adp-views/internal/viewmodel"
	"github.com/noah-isme/sma-adp-views/pkg/config"
	"github.com/noah-isme/sma-adp-views/pkg/database"
)

func newFetchCmd(root *rootOptions) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:       "fetch <classes|departments|subjects|faculty> <id>",
		Short:     "Load a detail page from the database, bypassing the cache",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"classes", "departments", "subjects", "faculty"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			db, err := database.NewPostgres(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()

			views := service.NewViewService(service.ViewRepositories{
				Classes:     repository.NewClassRepository(db, nil),
				Departments: repository.NewDepartmentRepository(db, nil),
				Subjects:    repository.NewSubjectRepository(db, nil),
				Faculty:     repository.NewFacultyRepository(db, nil),
			}, newProjector(cfg.CDN, root.logger), nil, nil, nil, root.logger, 0, timeout)

			page, err := fetchPage(ctx, views, service.Resource(args[0]), args[1])
			if err != nil {
				return err
			}
			root.logger.Debug("fetched page", zap.String("resource", args[0]), zap.String("id", args[1]), zap.String("state", string(page.PageHeader().State)))
			return root.write(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "connect and query timeout")
	return cmd
}

func fetchPage(ctx context.Context, views *service.ViewService, resource service.Resource, id string) (viewmodel.Page, error) {
	var (
		page viewmodel.Page
		err  error
	)
	switch resource {
	case service.ResourceClasses:
		page, _, err = views.Class(ctx, id)
	case service.ResourceDepartments:
		page, _, err = views.Department(ctx, id)
	case service.ResourceSubjects:
		page, _, err = views.Subject(ctx, id)
	case service.ResourceFaculty:
		page, _, err = views.Faculty(ctx, id)
	default:
		return nil, fmt.Errorf("unknown resource %q", resource)
	}
	return page, err
}
