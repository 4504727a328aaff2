package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/skillscout/skillscout/internal/catalog"
	"github.com/skillscout/skillscout/internal/config"
	"github.com/skillscout/skillscout/internal/embeddings"
	"github.com/skillscout/skillscout/internal/vecindex"
)

var flagIndexForce bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build or update the candidate embedding index",
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&flagIndexForce, "force", false, "Re-embed every candidate even if unchanged")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'skillscout init' first.", err)
	}

	embCfg, err := embeddings.LoadConfig()
	if err != nil {
		return err
	}
	prov, err := embeddings.NewFromConfig(embCfg)
	if err != nil {
		return err
	}

	disc, err := catalog.DiscoverAll(cfg.CatalogRoots, cfg.RegistryRoots)
	if err != nil {
		return err
	}
	if len(disc.Candidates) == 0 {
		return fmt.Errorf("no candidates found under catalog roots")
	}
	for _, s := range disc.Skipped {
		printWarn("", fmt.Sprintf("skipped malformed catalog entry %s: %s", s.Path, s.Reason))
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	unlock, err := acquireIndexLock(filepath.Join(dir, "index.lock"), 5*time.Second)
	if err != nil {
		return err
	}
	defer unlock()

	tmpBase := filepath.Join(dir, "tmp")
	if err := os.MkdirAll(tmpBase, 0o755); err != nil {
		return fmt.Errorf("cannot create temp dir %s: %w", tmpBase, err)
	}
	tmpDir, err := os.MkdirTemp(tmpBase, "index-*")
	if err != nil {
		return fmt.Errorf("cannot create temp index dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	printInfo("", fmt.Sprintf("building embedding index for %d candidates using %s", len(disc.Candidates), prov.ModelID()))
	dest := filepath.Join(dir, "index")
	if _, err := vecindex.Build(ctx, prov, disc.Candidates, vecindex.BuildOptions{
		OutDir:    tmpDir,
		PrevDir:   dest,
		Force:     flagIndexForce,
		Normalize: true,
	}); err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	if err := vecindex.AtomicSwap(tmpDir, dest); err != nil {
		return fmt.Errorf("cannot install index: %w", err)
	}
	printOK("", fmt.Sprintf("embedding index written: %s", dest))
	return nil
}

// acquireIndexLock obtains the per-user index build lock, so two concurrent
// builds never race on the atomic swap.
func acquireIndexLock(lockPath string, timeout time.Duration) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire index lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("another index build is in progress (lock: %s)", lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
