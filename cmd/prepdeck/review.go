package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/srs"
)

func newReviewCommand() *cobra.Command {
	reviewCommand := &cobra.Command{
		Use:   "review",
		Short: "Review scheduling commands",
	}

	reviewCommand.AddCommand(newReviewGradeCommand())
	reviewCommand.AddCommand(newReviewDueCommand())

	return reviewCommand
}

func newReviewGradeCommand() *cobra.Command {
	var learnerID, itemID string
	var quality int

	command := &cobra.Command{
		Use:   "grade",
		Short: "Grade one review and schedule the next one",
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

			recorder := newRecorder(cfg)
			service := srs.NewReviewService(srs.NewDBReviewRepository(db), recorder, nil)

			review, err := service.Grade(cmd.Context(), learnerID, itemID, quality)
			if err != nil {
				return err
			}
			defer recorder.Flush()

			if quality < srs.PassThreshold {
				color.Red("Lapsed. Item %s resets to a 1 day interval.", itemID)
			} else {
				color.Green("Scheduled. Item %s comes back in %d day(s).", itemID, review.Interval)
			}
			fmt.Printf("Next review: %s (easiness %.2f, streak %d)\n",
				review.NextReview.Format("2006-01-02 15:04"), review.EasinessFactor, review.Repetitions)
			return nil
		},
	}

	command.Flags().StringVar(&learnerID, "learner", "", "learner ID")
	command.Flags().StringVar(&itemID, "item", "", "learning item ID")
	command.Flags().IntVar(&quality, "quality", 0, "recall quality grade (0-5)")
	_ = command.MarkFlagRequired("learner")
	_ = command.MarkFlagRequired("item")
	_ = command.MarkFlagRequired("quality")

	return command
}

func newReviewDueCommand() *cobra.Command {
	var learnerID string
	var limit int

	command := &cobra.Command{
		Use:   "due",
		Short: "List items due for review",
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

			service := srs.NewReviewService(srs.NewDBReviewRepository(db), newRecorder(cfg), nil)
			due, err := service.DueQueue(cmd.Context(), learnerID, limit)
			if err != nil {
				return err
			}

			if len(due) == 0 {
				fmt.Println("Nothing due. Come back later.")
				return nil
			}
			for _, review := range due {
				fmt.Printf("%s\tdue %s\teasiness %.2f\tstreak %d\n",
					review.ItemID, review.NextReview.Format("2006-01-02"),
					review.EasinessFactor, review.Repetitions)
			}
			return nil
		},
	}

	command.Flags().StringVar(&learnerID, "learner", "", "learner ID")
	command.Flags().IntVar(&limit, "limit", 20, "maximum number of items to list")
	_ = command.MarkFlagRequired("learner")

	return command
}
