package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"keycards/internal/prefs"
)

func newThemeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the saved color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			store, err := prefs.NewStore(cfg.Prefs)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			on, err := prefs.LoadDarkMode(ctx, store)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				switch args[0] {
				case "dark":
					on = true
				case "light":
					on = false
				case "toggle":
					on = !on
				default:
					return fmt.Errorf("unknown theme %q (want dark, light or toggle)", args[0])
				}
				if err := prefs.SaveDarkMode(ctx, store, on); err != nil {
					return err
				}
			}

			name := "light"
			if on {
				name = "dark"
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}
