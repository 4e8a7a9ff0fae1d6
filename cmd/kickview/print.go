package main

import (
	"errors"
	"fmt"

	"kickview/internal/loader"
	"kickview/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) newPrintCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Fetch the feed once and print one page as a plain table",
		Example: `  kickview print
  kickview print --page 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := c.newClient().Fetch(cmd.Context())
			if err != nil {
				return errors.New(loader.Message(err))
			}

			v := ui.NewProjectsView(c.formatter)
			v.SetProjects(projects)
			v.SetPage(page)
			c.logger.Debug("print page", zap.Int("page", v.Page()), zap.Int("pages", v.TotalPages()))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), v.PlainView())
			return err
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page to print (clamped to the available pages)")
	return cmd
}
