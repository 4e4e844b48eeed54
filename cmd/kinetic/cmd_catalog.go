package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mansoorceksport/kinetic/internal/catalog"
	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	var q catalog.Query
	var equipment, category string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the exercise catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Equipment = domain.Equipment(equipment)
			q.Category = domain.Category(category)
			if q.Equipment != "" && !q.Equipment.Valid() {
				return fmt.Errorf("unknown equipment %q (want bw, band or db)", equipment)
			}
			if q.Category != "" && !q.Category.Valid() {
				return fmt.Errorf("unknown category %q", category)
			}
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), cat.Search(q))
		},
	}
	cmd.Flags().StringVarP(&q.Text, "search", "s", "", "match name, muscle or category")
	cmd.Flags().StringVar(&equipment, "equipment", "", "bw, band or db")
	cmd.Flags().StringVar(&category, "category", "", "chest, back, shoulders, arms, legs, glutes, core or cardio")

	cmd.AddCommand(newCatalogExportCmd())
	return cmd
}

func newCatalogExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as YAML (a starting point for CATALOG_PATH)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return cat.Export(cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := cat.Export(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d exercises to %s\n", cat.Len(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func printCatalog(out io.Writer, exercises []*domain.Exercise) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tEQUIPMENT\tTRACK")
	for _, ex := range exercises {
		track := ""
		switch {
		case ex.Timed:
			track = "timed"
		case ex.Trackable:
			track = "reps"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ex.ID, ex.Name, ex.Category.Title(), ex.Equipment.Label(), track)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d exercises\n", len(exercises))
	return nil
}
