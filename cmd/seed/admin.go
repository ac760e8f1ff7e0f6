package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nationaltraders/plumbing-crm/internal/application/auth"
	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/internal/infrastructure/postgres"
	"github.com/nationaltraders/plumbing-crm/pkg/config"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Create the initial ADMIN account",
	Example: `  seed admin --name "Mujahid Shaikh" --email admin@nationaltraders.in --password <password>`,
	RunE:    runAdmin,
}

func init() {
	rootCmd.AddCommand(adminCmd)

	adminCmd.Flags().String("name", "Admin", "Account display name")
	adminCmd.Flags().String("email", "", "Login email (required)")
	adminCmd.Flags().String("password", "", "Login password (required)")
	_ = adminCmd.MarkFlagRequired("email")
	_ = adminCmd.MarkFlagRequired("password")
}

func runAdmin(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	log := newLogger(cfg)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	authUC := auth.NewUseCase(postgres.NewUserRepository(pool), cfg.JWT)
	user, err := authUC.Register(ctx, dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	log.Info().
		Str("email", user.Email).
		Str("role", user.Role).
		Msg("admin account created")
	return nil
}
