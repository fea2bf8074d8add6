package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/search"
	"github.com/ziadkadry99/folio/internal/site"
	"github.com/ziadkadry99/folio/internal/theme"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it locally with the interactive APIs",
	Long: `Builds the site, then serves the output directory together with the
search, theme and publication filter APIs. With --watch, content changes
trigger a rebuild and connected browsers reload.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		bundle, posts, err := loadSite(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if _, err := generateSite(cfg, bundle, posts); err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		engine := search.NewEngine(posts)
		themes := theme.NewStore(database, cfg.Theme.Default)
		_, filters := render.Publications(bundle.Publications)

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Port
		}
		open, _ := cmd.Flags().GetBool("open")
		watch, _ := cmd.Flags().GetBool("watch")

		var reloader *site.Reloader
		if watch && cfg.ContentURL == "" {
			reloader = site.NewReloader()
			watcher := site.NewWatcher(cfg.ContentDir, func() error {
				ctx := cmd.Context()
				bundle, posts, err := loadSite(ctx, cfg)
				if err != nil {
					return err
				}
				if _, err := generateSite(cfg, bundle, posts); err != nil {
					return err
				}
				engine.Reload(posts)
				return nil
			}, reloader)
			if err := watcher.Start(); err != nil {
				return fmt.Errorf("watching %s: %w", cfg.ContentDir, err)
			}
			defer watcher.Stop()
		}

		srv := site.NewServer(site.ServerConfig{
			Port: port,
			Dir:  cfg.OutputDir,
			Open: open,
		}, engine, themes, bundle.Publications, filters, reloader)
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to the configured port)")
	serveCmd.Flags().Bool("open", false, "open the browser after starting")
	serveCmd.Flags().Bool("watch", false, "rebuild and reload on content changes (local content only)")
	rootCmd.AddCommand(serveCmd)
}
