// Command kinetic is the offline companion of the KINETIC API. It runs the
// suggestion engine and catalog tools without a server, and mints device
// tokens for an API that requires them.
package main

import (
	"log"
	"os"

	"github.com/mansoorceksport/kinetic/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kinetic",
		Short:         "KINETIC workout planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", os.Getenv("CATALOG_PATH"),
		"exercise catalog YAML file (default: built-in catalog)")

	root.AddCommand(newSuggestCmd())
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newTokenCmd())
	return root
}

func loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(catalogPath)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
