package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/themestore/themestore/internal/catalog"
	"github.com/themestore/themestore/internal/storefront"
	"github.com/themestore/themestore/internal/tui/components"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)

	listCmd.Flags().StringVarP(&listOpts.category, "category", "c", catalog.AllCategories, "only themes in this category")
	listCmd.Flags().StringVarP(&listOpts.search, "search", "s", "", "only themes whose name or description contains this text")
	listCmd.Flags().BoolVar(&listOpts.json, "json", false, "print JSON instead of a table")
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "print JSON instead of plain lines")
}

type listOptions struct {
	category string
	search   string
	json     bool
}

var (
	listOpts       = listOptions{category: catalog.AllCategories}
	categoriesJSON bool
)

// ListResult is the payload printed by `themestore list --json`.
type ListResult struct {
	Category string          `json:"category"`
	Search   string          `json:"search"`
	Count    int             `json:"count"`
	Themes   []catalog.Theme `json:"themes"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog themes",
	Long:  "List the catalog, optionally filtered by category and search text.",
	Example: `  themestore list
  themestore list --category Blog
  themestore list --search dash --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout(), listOpts)
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List category filters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCategories(cmd.OutOrStdout(), categoriesJSON)
	},
}

func runList(out io.Writer, opts listOptions) error {
	category := resolveCategory(opts.category)
	if !catalog.IsCategory(category) {
		return &PreflightError{
			Message:  fmt.Sprintf("unknown category %q", opts.category),
			Hint:     "Category names are: " + strings.Join(catalog.Categories(), ", "),
			NextStep: "themestore categories",
		}
	}

	themes := storefront.FilterThemes(catalog.Themes(), category, opts.search)

	if opts.json {
		return writeJSON(out, ListResult{
			Category: category,
			Search:   opts.search,
			Count:    len(themes),
			Themes:   themes,
		})
	}

	if len(themes) == 0 {
		_, err := fmt.Fprintln(out, components.NoThemesMessage)
		return err
	}
	return writeThemeTable(out, themes)
}

func runCategories(out io.Writer, asJSON bool) error {
	categories := catalog.Categories()
	if asJSON {
		return writeJSON(out, categories)
	}
	for _, c := range categories {
		if _, err := fmt.Fprintln(out, c); err != nil {
			return err
		}
	}
	return nil
}

// resolveCategory maps a case-insensitive spelling onto the catalog label;
// the filter itself compares labels exactly.
func resolveCategory(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return catalog.AllCategories
	}
	for _, c := range catalog.Categories() {
		if strings.EqualFold(c, value) {
			return c
		}
	}
	return value
}
