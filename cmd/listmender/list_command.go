package main

import (
	"os"

	"github.com/spf13/cobra"

	"ListMender/internal/app"
	"ListMender/internal/domain"
)

func newListCommand(configFlag, logLevelFlag *string) *cobra.Command {
	var limit int
	var owner string

	cmd := &cobra.Command{
		Use:   "list (anime|manga)",
		Short: "Print the tracked list with its current dates",
		Long: "Print a read-only snapshot of the tracked list: ID, title, status and " +
			"the currently recorded start/finish dates. Useful for picking a " +
			"resume point and gauging how many entries still need fixing.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listType, err := domain.ParseListType(args[0])
			if err != nil {
				return err
			}

			cfg, logger := loadConfig(*configFlag, *logLevelFlag)
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

			entries, err := application.Session().List(cmd.Context(), listType, false)
			if err != nil {
				return err
			}

			renderEntryTable(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 1000, "Maximum number of list entries to fetch")
	cmd.Flags().StringVar(&owner, "owner", "", "List owner (defaults to the token owner, @me)")

	return cmd
}
