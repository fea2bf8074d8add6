package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/db"
)

var verboseOut io.Writer = os.Stderr

// verbosef prints per-step detail when --verbose is set.
func verbosef(format string, args ...any) {
	if verbose {
		fmt.Fprintf(verboseOut, format+"\n", args...)
	}
}

// sourceDesc names the configured content source for log output.
func sourceDesc(cfg *config.Config) string {
	if cfg.ContentURL != "" {
		return cfg.ContentURL
	}
	return cfg.ContentDir
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newFetcher creates the content fetcher for the configured source. A
// content URL wins over a local directory when both are set.
func newFetcher(cfg *config.Config) content.Fetcher {
	if cfg.ContentURL != "" {
		return content.NewHTTPFetcher(cfg.ContentURL)
	}
	return &content.DirFetcher{Dir: cfg.ContentDir}
}

// openDatabase opens the preferences/post-cache database under data_dir.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	return db.Open(filepath.Join(cfg.DataDir, "folio.db"))
}
