package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HerbHall/apidex/internal/catalog"
	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

func newListCmd(a *app) *cobra.Command {
	var (
		q       catalog.Query
		sortKey string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search and filter the catalog",
		Example: `  apidex list --search pay
  apidex list --category "AI & Machine Learning" --sort name
  apidex list --auth None --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := catalog.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			q.Sort = key
			records := a.engine.Query(q)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), catalog.QueryResponse{
					Count: len(records),
					Query: q.Normalize(),
					APIs:  records,
				})
			}
			return writeTable(cmd.OutOrStdout(), records)
		},
	}
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "case-insensitive text matched against name and description")
	cmd.Flags().StringVar(&q.Category, "category", catalog.All, "exact category label")
	cmd.Flags().StringVar(&q.AuthType, "auth", catalog.All, "exact auth type")
	cmd.Flags().StringVar(&sortKey, "sort", string(catalog.SortByName), "sort key: name or category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one API and its related APIs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.engine.Detail(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), detail)
			}
			return writeDetail(cmd.OutOrStdout(), detail)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newRelatedCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "related <id>",
		Short: "List APIs in the same category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.engine.Related(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), records)
			}
			return writeTable(cmd.OutOrStdout(), records)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with their slugs and sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries := a.engine.Summaries()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summaries)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tSLUG\tAPIS")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", s.Category, s.Slug, s.Count)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newCategoryCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "category <slug>",
		Short: "List the APIs of one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.engine.ByCategorySlug(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", a.engine.CategoryName(args[0]), err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n\n", view.Category, view.Count)
			return writeTable(cmd.OutOrStdout(), view.Records)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats := a.engine.Stats()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "APIs\t%d\n", stats.TotalAPIs)
			fmt.Fprintf(tw, "Categories\t%d\n", stats.Categories)
			fmt.Fprintf(tw, "Free tier\t%d\n", stats.FreeAPIs)
			fmt.Fprintf(tw, "Auth methods\t%d\n", stats.AuthMethods)
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, records []pkgcatalog.APIRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tAUTH\tPRICING")
	for i := range records {
		r := &records[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Category, r.AuthType, r.Pricing)
	}
	return tw.Flush()
}

func writeDetail(w io.Writer, d catalog.Detail) error {
	r := d.API
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t(%s)\n", r.Name, r.ID)
	fmt.Fprintf(tw, "Category\t%s\n", r.Category)
	fmt.Fprintf(tw, "Auth\t%s\n", r.AuthType)
	if r.Pricing != "" {
		fmt.Fprintf(tw, "Pricing\t%s\n", r.Pricing)
	}
	fmt.Fprintf(tw, "HTTPS / CORS\t%t / %t\n", r.HTTPS, r.CORS)
	if r.RateLimit != "" {
		fmt.Fprintf(tw, "Rate limit\t%s\n", r.RateLimit)
	}
	if r.Documentation != "" {
		fmt.Fprintf(tw, "Docs\t%s\n", r.Documentation)
	}
	if r.BaseURL != "" {
		fmt.Fprintf(tw, "Base URL\t%s\n", r.BaseURL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", r.Description)
	if len(r.Features) > 0 {
		fmt.Fprintf(w, "\nFeatures:\n  - %s\n", strings.Join(r.Features, "\n  - "))
	}
	if len(r.UseCases) > 0 {
		fmt.Fprintf(w, "\nUse cases:\n  - %s\n", strings.Join(r.UseCases, "\n  - "))
	}
	if len(d.Related) > 0 {
		fmt.Fprintln(w, "\nRelated:")
		return writeTable(w, d.Related)
	}
	return nil
}
