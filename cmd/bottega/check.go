package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the site file and every post header",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		problems, err := app.Catalog.Validate()
		if err != nil {
			return err
		}
		for _, p := range problems {
			logger.Error("malformed post",
				zap.String("locale", p.Locale),
				zap.String("slug", p.Slug),
				zap.Error(p.Err),
			)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d malformed post(s)", len(problems))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
