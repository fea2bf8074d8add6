package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/blog"
	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
	"github.com/ziadkadry99/folio/internal/theme"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Load content and generate the static site",
	Long: `Loads the five fixed content documents (all required), discovers and
loads blog posts (best effort), and writes the generated site to the
output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		bundle, posts, err := loadSite(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		pages, err := generateSite(cfg, bundle, posts)
		if err != nil {
			return err
		}

		fmt.Printf("Built %d pages (%d blog posts) into %s\n", pages, len(posts), cfg.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// loadSite fetches the content bundle and the blog posts. The bundle is
// all-or-nothing; the blog set is best effort and may come back empty.
func loadSite(ctx context.Context, cfg *config.Config) (*content.Bundle, []blog.Post, error) {
	f := newFetcher(cfg)

	verbosef("loading %d content documents from %s", len(content.FixedDocs), sourceDesc(cfg))
	bundle, err := content.LoadBundle(ctx, f)
	if err != nil {
		return nil, nil, fmt.Errorf("loading content: %w", err)
	}
	verbosef("content bundle loaded (%d publications)", len(bundle.Publications))

	d := blog.NewDiscoverer(f, cfg.Blog.Path)
	if cfg.Blog.Manifest != "" {
		d.Manifest = cfg.Blog.Manifest
	}
	d.Include = cfg.Blog.Include

	paths, err := d.Discover(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("discovering blog posts: %w", err)
	}
	verbosef("discovered %d blog posts under %s", len(paths), cfg.Blog.Path)

	var posts []blog.Post
	if len(paths) > 0 {
		reporter := progress.NewReporter("Loading blog posts")
		reporter.Start(len(paths))
		posts = blog.LoadPosts(ctx, f, paths, func(done int, path string) {
			reporter.Update(done, path)
		})
		reporter.Finish()
	}
	if len(posts) < len(paths) {
		verbosef("skipped %d of %d blog posts", len(paths)-len(posts), len(paths))
	}

	cachePosts(cfg, posts)
	return bundle, posts, nil
}

// generateSite writes the static site using the persisted theme as the
// initial page theme.
func generateSite(cfg *config.Config, bundle *content.Bundle, posts []blog.Post) (int, error) {
	initial := cfg.Theme.Default
	if database, err := openDatabase(cfg); err == nil {
		store := theme.NewStore(database, cfg.Theme.Default)
		if current, err := store.Current(); err == nil {
			initial = current
		}
		database.Close()
	}

	verbosef("generating site with initial theme %s", initial)
	g := site.NewGenerator(cfg.OutputDir, cfg.SiteName, initial, bundle, posts)
	pages, err := g.Generate()
	if err != nil {
		return 0, fmt.Errorf("generating site: %w", err)
	}
	return pages, nil
}

// cachePosts records the loaded posts in the local database. Failures are
// warnings: the cache is an index, not a build input.
func cachePosts(cfg *config.Config, posts []blog.Post) {
	database, err := openDatabase(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open post cache: %v\n", err)
		return
	}
	defer database.Close()

	cache := blog.NewCache(database)
	for _, p := range posts {
		if err := cache.Put(p); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}
