package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmafa/internal/config"
	"github.com/pmafa/internal/db"
)

var createAdminOpts struct {
	username string
	email    string
	password string
}

// createAdminCmd 创建或重置管理员账号
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create the admin account or replace its password",
	RunE:  runCreateAdmin,
}

func init() {
	flags := createAdminCmd.Flags()
	flags.StringVar(&createAdminOpts.username, "username", "", "admin username (defaults to ADMIN_USERNAME)")
	flags.StringVar(&createAdminOpts.email, "email", "", "address that receives password reset codes (defaults to ADMIN_EMAIL)")
	flags.StringVar(&createAdminOpts.password, "password", "", "new password")
	createAdminCmd.MarkFlagRequired("password")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	username := firstSet(createAdminOpts.username, cfg.AdminUsername)
	email := firstSet(createAdminOpts.email, cfg.AdminEmail)
	if username == "" {
		return errors.New("username is required")
	}

	if err := db.Init(cfg.DatabasePath); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer db.Close()

	user, err := db.UpsertUser(db.DB, username, email, createAdminOpts.password)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "admin %q saved (id %d)\n", user.Username, user.ID)
	return nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
