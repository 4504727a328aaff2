package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillscout/skillscout/internal/catalog"
	"github.com/skillscout/skillscout/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List all candidate skills discovered under the catalog roots",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'skillscout init' first.", err)
	}

	disc, err := catalog.DiscoverAll(cfg.CatalogRoots, cfg.RegistryRoots)
	if err != nil {
		return err
	}

	printSection(fmt.Sprintf("Catalog (%d candidates)", len(disc.Candidates)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range disc.Candidates {
		tags := make([]string, len(c.Tags))
		for i, t := range c.Tags {
			tags[i] = string(t)
		}
		cat := c.Category.String()
		if cat == "" {
			cat = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t[%s]\n", c.Name, cat, strings.Join(tags, ","), c.Source)
	}
	_ = w.Flush()

	for _, s := range disc.Skipped {
		printWarn("", fmt.Sprintf("skipped %s: %s", s.Path, s.Reason))
	}
	return nil
}
