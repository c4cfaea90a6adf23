package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/noah-isme/sma-adp-views/internal/models"
	"github.com/noah-isme/sma-adp-views/internal/service"
	"github.com/noah-isme/sma-adp-views/pkg/config"
)

type tokenOptions struct {
	userID string
	role   string
	email  string
	name   string
	ttl    time.Duration
}

func newTokenCmd(root *rootOptions) *cobra.Command {
	opts := &tokenOptions{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			auth := service.NewAuthService(nil, root.logger, service.AuthConfig{
				AccessTokenSecret: cfg.JWT.Secret,
				AccessTokenExpiry: cfg.JWT.Expiration,
				Issuer:            cfg.JWT.Issuer,
			})
			token, expiresAt, err := auth.IssueToken(service.TokenRequest{
				UserID: opts.userID,
				Role:   models.UserRole(opts.role),
				Email:  opts.email,
				Name:   opts.name,
				TTL:    opts.ttl,
			})
			if err != nil {
				return err
			}
			return root.write(cmd.OutOrStdout(), map[string]string{
				"token":     token,
				"expiresAt": expiresAt.Format(time.RFC3339),
			})
		},
	}
	cmd.Flags().StringVar(&opts.userID, "user", "", "user id (required)")
	cmd.Flags().StringVar(&opts.role, "role", string(models.RoleAdmin), "admin, teacher or student")
	cmd.Flags().StringVar(&opts.email, "email", "", "email claim")
	cmd.Flags().StringVar(&opts.name, "name", "", "name claim")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 0, "token lifetime, defaults to JWT_EXPIRATION")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
