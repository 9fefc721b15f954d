package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/loginguard"
)

func newLoginCommand() *cobra.Command {
	loginCommand := &cobra.Command{
		Use:   "login",
		Short: "Login attempt guard commands",
	}

	loginCommand.AddCommand(newLoginCheckCommand())
	loginCommand.AddCommand(newLoginRecordCommand())
	loginCommand.AddCommand(newLoginClearCommand())

	return loginCommand
}

func newGuard(cfg *config.Config, db *sqlx.DB) *loginguard.Guard {
	policy := loginguard.Policy{
		Window:      time.Duration(cfg.LoginGuard.WindowMinutes) * time.Minute,
		MaxAttempts: cfg.LoginGuard.MaxAttempts,
	}
	repo := loginguard.NewDBAttemptRepository(db, policy.Window)
	return loginguard.NewGuard(repo, policy, newRecorder(cfg), nil, nil)
}

func newLoginCheckCommand() *cobra.Command {
	var email string

	command := &cobra.Command{
		Use:   "check",
		Short: "Check whether a login attempt is currently allowed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			decision := newGuard(cfg, db).Check(cmd.Context(), email)
			if decision.Allowed {
				color.Green("Allowed. %d attempt(s) remaining.", decision.Remaining)
				return nil
			}
			color.Red("Blocked until %s.", decision.ResetAt.Format(time.RFC3339))
			return nil
		},
	}

	command.Flags().StringVar(&email, "email", "", "account email")
	_ = command.MarkFlagRequired("email")

	return command
}

func newLoginRecordCommand() *cobra.Command {
	var email string

	command := &cobra.Command{
		Use:   "record",
		Short: "Record a failed login attempt",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := newGuard(cfg, db).RecordFailure(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Println("Recorded.")
			return nil
		},
	}

	command.Flags().StringVar(&email, "email", "", "account email")
	_ = command.MarkFlagRequired("email")

	return command
}

func newLoginClearCommand() *cobra.Command {
	var email string

	command := &cobra.Command{
		Use:   "clear",
		Short: "Clear recorded attempts after a successful login",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := newGuard(cfg, db).Reset(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Println("Cleared.")
			return nil
		},
	}

	command.Flags().StringVar(&email, "email", "", "account email")
	_ = command.MarkFlagRequired("email")

	return command
}
