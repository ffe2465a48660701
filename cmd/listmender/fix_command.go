package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"ListMender/internal/app"
	"ListMender/internal/domain"
	"ListMender/internal/usecase"
)

func newFixCommand(configFlag, logLevelFlag *string) *cobra.Command {
	var autoSkip bool
	var wait time.Duration
	var resumeFrom string
	var limit int
	var owner string

	cmd := &cobra.Command{
		Use:   "fix (anime|manga)",
		Short: "Review entries with missing dates and submit confirmed fixes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listType, err := domain.ParseListType(args[0])
			if err != nil {
				return err
			}

			cfg, logger := loadConfig(*configFlag, *logLevelFlag)
			if cmd.Flags().Changed("auto-skip") {
				cfg.Review.AutoSkip = autoSkip
			}
			if cmd.Flags().Changed("wait") {
				cfg.Review.Wait = wait.String()
			}
			if cmd.Flags().Changed("limit") {
				cfg.Review.Limit = limit
			}
			if cmd.Flags().Changed("owner") {
				cfg.MAL.Owner = owner
			}

			application, err := app.New(cfg, logger, app.Streams{In: os.Stdin, Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}

			_, err = application.Session().Review(cmd.Context(), usecase.ReviewOptions{
				ListType:   listType,
				ResumeFrom: resumeFrom,
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&autoSkip, "auto-skip", false, "Skip non-completed and already-dated entries without asking")
	cmd.Flags().DurationVar(&wait, "wait", time.Second, "Pause between entries that hit the history endpoint")
	cmd.Flags().StringVar(&resumeFrom, "resume-from", "", "Skip entries until this exact title is reached")
	cmd.Flags().IntVar(&limit, "limit", 1000, "Maximum number of list entries to fetch")
	cmd.Flags().StringVar(&owner, "owner", "", "List owner (defaults to the token owner, @me)")

	return cmd
}
