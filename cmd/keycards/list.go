package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"keycards/internal/catalog"
	"keycards/internal/config"
)

func newListCmd(opts *options) *cobra.Command {
	var f catalog.Filter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the shortcuts matching a filter",
		Example: `  keycards list --os mac
  keycards list --category Browser --search tab`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			var idx []int
			if cfg.Search.Mode == config.SearchFuzzy {
				idx = catalog.ApplyFuzzy(cat.Shortcuts, f, catalog.FuzzyConfig{
					MinCoverage: cfg.Search.Fuzzy.MinCoverage,
					MaxSpread:   cfg.Search.Fuzzy.MaxSpread,
				})
			} else {
				idx = catalog.Apply(cat.Shortcuts, f)
			}

			out := cmd.OutOrStdout()
			if len(idx) == 0 {
				fmt.Fprintln(out, "No shortcuts match the current filters.")
				return nil
			}
			fmt.Fprintln(out, renderTable(cat.Shortcuts, idx))
			return nil
		},
	}
	cmd.Flags().StringVar(&f.OS, "os", catalog.All, "operating system (mac, windows, linux or all)")
	cmd.Flags().StringVar(&f.Category, "category", catalog.All, "category name or all")
	cmd.Flags().StringVarP(&f.Search, "search", "s", "", "case-insensitive text in description, details or keys")
	return cmd
}

func renderTable(records []catalog.Shortcut, idx []int) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(idx))
	for _, i := range idx {
		s := records[i]
		rows = append(rows, []string{s.OS, s.Category, s.Keys, catalog.Truncate(s.Description)})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("OS", "CATEGORY", "KEYS", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
