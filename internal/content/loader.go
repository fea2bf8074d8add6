package content

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Fixed document names. These five are always present; the blog set is
// open-ended and handled separately.
const (
	ConfigDoc       = "config.json"
	EducationDoc    = "education.json"
	ExperienceDoc   = "experience.json"
	ProjectsDoc     = "projects.json"
	PublicationsDoc = "publications.json"
)

// FixedDocs lists the fixed documents in their canonical order.
var FixedDocs = []string{ConfigDoc, EducationDoc, ExperienceDoc, ProjectsDoc, PublicationsDoc}

// LoadBundle fetches the five fixed documents concurrently and decodes
// them. The batch is all-or-nothing: every document must fetch and parse
// before any of them is handed on, and a single failure fails the whole
// call with nothing retained.
func LoadBundle(ctx context.Context, f Fetcher) (*Bundle, error) {
	var bundle Bundle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var cfg SiteConfig
		if err := fetchJSON(ctx, f, ConfigDoc, &cfg); err != nil {
			return err
		}
		bundle.Config = &cfg
		return nil
	})
	g.Go(func() error { return fetchJSON(ctx, f, EducationDoc, &bundle.Education) })
	g.Go(func() error { return fetchJSON(ctx, f, ExperienceDoc, &bundle.Experience) })
	g.Go(func() error { return fetchJSON(ctx, f, ProjectsDoc, &bundle.Projects) })
	g.Go(func() error { return fetchJSON(ctx, f, PublicationsDoc, &bundle.Publications) })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &bundle, nil
}

func fetchJSON(ctx context.Context, f Fetcher, doc string, v any) error {
	data, err := f.Fetch(ctx, doc)
	if err != nil {
		return fmt.Errorf("loading %s: %w", doc, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", doc, err)
	}
	return nil
}
