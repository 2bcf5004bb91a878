package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/askvidya/vidya/internal/dataset"
	"github.com/askvidya/vidya/internal/gateway"
	"github.com/askvidya/vidya/internal/llm"
	"github.com/askvidya/vidya/internal/memory"
	"github.com/askvidya/vidya/internal/resolve"
	"github.com/askvidya/vidya/internal/store"
)

const (
	learnedCacheFile = "learned.json"
	videoCacheFile   = "videos.json"
)

// pipeline bundles the resolver with the store it logs to, so commands
// can close both together.
type pipeline struct {
	store    *store.Store
	resolver *resolve.Resolver
}

// Close drains pending cache writes before releasing the store, so a
// one-shot command doesn't exit with a learn write still in flight.
func (p *pipeline) Close() error {
	p.resolver.Wait()
	return p.store.Close()
}

// buildPipeline opens the store, loads the dataset and caches, and
// wires the resolver. A missing provider key degrades the AI stages
// rather than failing the command: the cache, dataset and solver stages
// still work offline.
func buildPipeline(cmd *cobra.Command) (*pipeline, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	eventRepo := st.EventRepo()

	ds, err := dataset.Load(resolveDatasetPath(cmd))
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	dataDir, err := store.DataDir()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}

	deps := resolve.Deps{
		Learned: memory.NewLearnedStore(filepath.Join(dataDir, learnedCacheFile)),
		Videos:  memory.NewVideoStore(filepath.Join(dataDir, videoCacheFile)),
		Dataset: ds,
		Events:  eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Generative answers will be unavailable.")
	} else {
		deps.Gateway = gateway.New(provider, gateway.DefaultConfig())
	}

	return &pipeline{store: st, resolver: resolve.New(deps)}, nil
}

// cachePaths returns the on-disk locations of both cache files.
func cachePaths() (learned, videos string, err error) {
	dataDir, err := store.DataDir()
	if err != nil {
		return "", "", fmt.Errorf("resolve data directory: %w", err)
	}
	return filepath.Join(dataDir, learnedCacheFile), filepath.Join(dataDir, videoCacheFile), nil
}
