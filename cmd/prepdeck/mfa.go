package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/twofactor"
)

func newMFACommand() *cobra.Command {
	mfaCommand := &cobra.Command{
		Use:   "mfa",
		Short: "Two-factor authentication commands",
	}

	mfaCommand.AddCommand(newMFAEnrollCommand())
	mfaCommand.AddCommand(newMFACodesCommand())
	mfaCommand.AddCommand(newMFAVerifyCommand())

	return mfaCommand
}

func newTwoFactorService(cfg *config.Config, repo *twofactor.DBRepository) *twofactor.Service {
	return twofactor.NewService(repo, repo, cfg.TwoFactor.Issuer,
		cfg.TwoFactor.BackupCodeCount, newRecorder(cfg), nil)
}

func newMFAEnrollCommand() *cobra.Command {
	var learnerID, qrPath string

	command := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a learner in TOTP two-factor authentication",
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

			service := newTwoFactorService(cfg, twofactor.NewDBRepository(db))
			enrollment, err := service.Enroll(cmd.Context(), learnerID)
			if err != nil {
				return err
			}

			fmt.Printf("Secret: %s\n", enrollment.Secret)
			fmt.Printf("Provisioning URL: %s\n", enrollment.URL)
			if qrPath != "" {
				if err := os.WriteFile(qrPath, enrollment.QRPNG, 0600); err != nil {
					return fmt.Errorf("os.WriteFile(%s) > %w", qrPath, err)
				}
				fmt.Printf("QR code written to %s\n", qrPath)
			}
			return nil
		},
	}

	command.Flags().StringVar(&learnerID, "learner", "", "learner ID")
	command.Flags().StringVar(&qrPath, "qr", "", "write provisioning QR code PNG to this path")
	_ = command.MarkFlagRequired("learner")

	return command
}

func newMFACodesCommand() *cobra.Command {
	var learnerID string

	command := &cobra.Command{
		Use:   "codes",
		Short: "Generate a fresh batch of backup codes",
		Long: `Generate a fresh batch of backup codes for a learner.
Any unused codes from earlier batches stop working. The codes are shown
exactly once; store them somewhere safe.`,
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

			service := newTwoFactorService(cfg, twofactor.NewDBRepository(db))
			codes, err := service.RegenerateCodes(cmd.Context(), learnerID)
			if err != nil {
				return err
			}

			fmt.Println("Backup codes (shown once):")
			for _, code := range codes {
				fmt.Printf("  %s\n", code)
			}
			return nil
		},
	}

	command.Flags().StringVar(&learnerID, "learner", "", "learner ID")
	_ = command.MarkFlagRequired("learner")

	return command
}

func newMFAVerifyCommand() *cobra.Command {
	var learnerID, code string
	var useBackup bool

	command := &cobra.Command{
		Use:   "verify",
		Short: "Verify a TOTP code, or consume a backup code with --backup",
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

			service := newTwoFactorService(cfg, twofactor.NewDBRepository(db))

			var ok bool
			if useBackup {
				ok, err = service.VerifyAndConsume(cmd.Context(), learnerID, code)
			} else {
				ok, err = service.VerifyTOTP(cmd.Context(), learnerID, code)
			}
			if err != nil {
				return err
			}

			if ok {
				color.Green("Verified.")
			} else {
				color.Red("Invalid code.")
			}
			return nil
		},
	}

	command.Flags().StringVar(&learnerID, "learner", "", "learner ID")
	command.Flags().StringVar(&code, "code", "", "authenticator or backup code")
	command.Flags().BoolVar(&useBackup, "backup", false, "treat the code as a single-use backup code")
	_ = command.MarkFlagRequired("learner")
	_ = command.MarkFlagRequired("code")

	return command
}
