package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillscout/skillscout/internal/catalog"
	"github.com/skillscout/skillscout/internal/config"
	"github.com/skillscout/skillscout/internal/detect"
	"github.com/skillscout/skillscout/internal/embeddings"
	"github.com/skillscout/skillscout/internal/match"
	"github.com/skillscout/skillscout/internal/profile"
	"github.com/skillscout/skillscout/internal/vecindex"
)

var (
	flagRecommendJSON    bool
	flagRecommendMinConf string
	flagRecommendTag     string
	flagRecommendNoEmb   bool
	flagRecommendDebug   bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [project-dir]",
	Short: "Recommend skills matching a project's detected technologies",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&flagRecommendJSON, "json", false, "Print the full result as JSON")
	recommendCmd.Flags().StringVar(&flagRecommendMinConf, "min-confidence", "", "Only show recommendations at or above this tier (high|medium|low)")
	recommendCmd.Flags().StringVar(&flagRecommendTag, "tag", "", "Only show recommendations matching this tag or name substring")
	recommendCmd.Flags().BoolVar(&flagRecommendNoEmb, "no-embeddings", false, "Skip the embedding signal even when configured")
	recommendCmd.Flags().BoolVar(&flagRecommendDebug, "debug", false, "Print debug information")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'skillscout init' first.", err)
	}

	switch flagRecommendMinConf {
	case "", "high", "medium", "low":
	default:
		return fmt.Errorf("invalid --min-confidence %q (want high, medium, or low)", flagRecommendMinConf)
	}

	projectDir := "."
	if len(args) == 1 {
		projectDir = args[0]
	}

	prof, err := detect.Scan(projectDir, cfg.SkillDirs)
	if err != nil {
		return err
	}

	disc, err := catalog.DiscoverAll(cfg.CatalogRoots, cfg.RegistryRoots)
	if err != nil {
		return err
	}

	opts := []match.Option{
		match.WithEmbeddingTimeout(cfg.ParsedEmbeddingTimeout(match.DefaultEmbeddingTimeout)),
	}
	if !flagRecommendNoEmb {
		if prov, idx, ok := loadEmbeddingSignal(); ok {
			opts = append(opts, match.WithEmbeddings(prov, idx))
		}
	}

	engine := match.NewEngine(opts...)
	result, err := engine.Match(context.Background(), prof, disc.Candidates)
	if err != nil {
		return err
	}

	if flagRecommendJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printRecommendations(prof, result)
	for _, s := range disc.Skipped {
		printWarn("", fmt.Sprintf("skipped malformed catalog entry %s: %s", s.Path, s.Reason))
	}
	return nil
}

// loadEmbeddingSignal tries to set up the embedding scorer: configured
// provider plus a loadable candidate index. Any failure leaves the match
// keyword-only; that is a normal state, not an error.
func loadEmbeddingSignal() (embeddings.Provider, *vecindex.Index, bool) {
	embCfg, err := embeddings.LoadConfig()
	if err != nil || !embCfg.Configured() {
		return nil, nil, false
	}
	prov, err := embeddings.NewFromConfig(embCfg)
	if err != nil {
		debugf("embeddings unavailable: %v", err)
		return nil, nil, false
	}
	dir, err := indexDir()
	if err != nil {
		return nil, nil, false
	}
	idx, err := vecindex.Load(dir)
	if err != nil {
		debugf("no usable vector index, matching keyword-only: %v", err)
		return nil, nil, false
	}
	if idx.Manifest.ModelID != prov.ModelID() {
		debugf("vector index model mismatch: index=%s provider=%s", idx.Manifest.ModelID, prov.ModelID())
		return nil, nil, false
	}
	return prov, idx, true
}

func indexDir() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "index"), nil
}

func debugf(format string, args ...any) {
	if flagRecommendDebug {
		printInfo("", fmt.Sprintf(format, args...))
	}
}

func printRecommendations(prof *profile.Profile, result *match.Result) {
	fmt.Printf("\nDetected technologies (%d):\n", len(prof.Detected))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, t := range prof.Detected {
		fmt.Fprintf(w, "  %s\t(%s)\n", t.Name, t.Confidence)
	}
	_ = w.Flush()
	if len(prof.Installed) > 0 {
		printInfo("", fmt.Sprintf("%d skill(s) already installed, excluded from results", len(prof.Installed)))
	}

	recs := selectRecommendations(result)
	if len(recs) == 0 {
		printSkip("", "no matching skills found")
		return
	}

	tiers := []struct {
		title string
		conf  match.Confidence
	}{
		{"High confidence", match.ConfidenceHigh},
		{"Medium confidence", match.ConfidenceMedium},
		{"Low confidence", match.ConfidenceLow},
	}
	for _, tier := range tiers {
		var items []match.Recommendation
		for _, r := range recs {
			if r.Confidence == tier.conf {
				items = append(items, r)
			}
		}
		if len(items) == 0 {
			continue
		}
		printSection(fmt.Sprintf("%s (%d)", tier.title, len(items)))
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for i, r := range items {
			fmt.Fprintf(tw, "  %d.\t%s\t[%s]\n", i+1, r.Name, r.Source)
			fmt.Fprintf(tw, "  \t%s\n", r.Reason)
			if len(r.Alternatives) > 0 {
				alts := make([]string, len(r.Alternatives))
				for j, a := range r.Alternatives {
					alts[j] = a.Name
				}
				fmt.Fprintf(tw, "  \talternatives: %s\n", strings.Join(alts, ", "))
			}
		}
		_ = tw.Flush()
	}
}

// selectRecommendations applies the --min-confidence and --tag projections.
func selectRecommendations(result *match.Result) []match.Recommendation {
	recs := match.AllRecommendations(result)
	if flagRecommendMinConf != "" {
		switch flagRecommendMinConf {
		case "high":
			recs = match.FilterByConfidence(result, match.ConfidenceHigh)
		case "medium":
			recs = match.FilterByConfidence(result, match.ConfidenceMedium)
		case "low":
			recs = match.FilterByConfidence(result, match.ConfidenceLow)
		}
	}
	if flagRecommendTag != "" {
		recs = match.FilterByTag(recs, flagRecommendTag)
	}
	return recs
}
