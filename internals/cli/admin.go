package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"reach_backend/internals/configs"
	database "reach_backend/internals/databases"
	"reach_backend/internals/features/admins/auth/dto"
	authService "reach_backend/internals/features/admins/auth/service"
	"reach_backend/internals/helpers"
	"reach_backend/internals/services/mailer"
	"reach_backend/internals/services/token"
)

var (
	adminName     string
	adminEmail    string
	adminPassword string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Provision an admin account",
	Long: `Provision an admin account without an authenticated caller.
Use it to bootstrap the first admin.

Example:
  reach admin create --name "Root" --email root@example.com --password s3cret!`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdminCreate(cmd.Context())
	},
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminName, "name", "", "admin display name")
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	_ = adminCreateCmd.MarkFlagRequired("name")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd)
}

func runAdminCreate(parent context.Context) error {
	in := dto.AddAdminRequest{Name: adminName, Email: adminEmail, Password: adminPassword}
	if err := helpers.Validate(in); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := configs.NewLogger(cfg.Logging)

	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	notifier, err := mailer.NewFromConfig(cfg.Email, log)
	if err != nil {
		return err
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, 30*time.Second)
	defer cancel()

	svc := authService.NewAuthService(db, token.NewService(cfg.Auth.JWTSecret), notifier, authService.Options{
		AppName:    cfg.AppName,
		BcryptCost: cfg.Auth.BcryptCost,
	}, log)
	admin, err := svc.AddAdmin(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("admin %s created (%s)\n", admin.Email, admin.ID)
	return nil
}
