package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize folio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure folio for your site and generates a .folio.yml file. With --scaffold, sample content documents are created too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}

		scaffold, _ := cmd.Flags().GetBool("scaffold")
		if scaffold && cfg.ContentDir != "" {
			if err := writeScaffold(cfg); err != nil {
				return fmt.Errorf("scaffolding content: %w", err)
			}
			fmt.Printf("Sample content written to %s\n", cfg.ContentDir)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("scaffold", false, "create sample content documents")
	rootCmd.AddCommand(initCmd)
}

// writeScaffold creates the five fixed documents plus one blog post and a
// manifest, so a fresh site builds immediately.
func writeScaffold(cfg *config.Config) error {
	blogDir := filepath.Join(cfg.ContentDir, "blog")
	if err := os.MkdirAll(blogDir, 0o755); err != nil {
		return err
	}

	files := map[string]string{
		filepath.Join(cfg.ContentDir, "config.json"):        sampleConfig,
		filepath.Join(cfg.ContentDir, "education.json"):     sampleEducation,
		filepath.Join(cfg.ContentDir, "experience.json"):    sampleExperience,
		filepath.Join(cfg.ContentDir, "projects.json"):      sampleProjects,
		filepath.Join(cfg.ContentDir, "publications.json"):  samplePublications,
		filepath.Join(blogDir, "hello-world.json"):          sampleBlogPost,
		filepath.Join(blogDir, "manifest.json"):             `["hello-world"]` + "\n",
	}
	for path, body := range files {
		if _, err := os.Stat(path); err == nil {
			continue // never clobber existing content
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return err
		}
	}
	return nil
}

const sampleConfig = `{
  "name": "Your Name",
  "tagline": "What you do",
  "description": "A short introduction.",
  "email": "you@example.com",
  "location": "Your City",
  "phone": "",
  "responseTime": "Usually within 2 days",
  "social": [
    {"name": "GitHub", "url": "https://github.com/you", "icon": "github"}
  ],
  "images": {},
  "about": {
    "bio": [
      "First paragraph about you.",
      "Second paragraph about you."
    ]
  }
}
`

const sampleEducation = `[
  {
    "title": "B.Sc. Computer Science",
    "subtitle": "Some University",
    "date": "2016 - 2020",
    "overview": ["What you studied."],
    "details": ["A highlight.", "Another highlight."]
  }
]
`

const sampleExperience = `[
  {
    "title": "Software Engineer",
    "subtitle": "Some Company",
    "date": "2020 - Present",
    "overview": ["What you build."],
    "details": ["A thing you shipped."]
  }
]
`

const sampleProjects = `[
  {
    "title": "Sample Project",
    "description": "What it does.",
    "image": "",
    "technologies": ["Go"],
    "links": {"demo": "", "code": "https://github.com/you/sample"}
  }
]
`

const samplePublications = `[
  {
    "title": "A Sample Paper",
    "authors": "Your Name",
    "venue": "Some Conference",
    "date": "June 2023",
    "category": "research",
    "links": {"pdf": "https://example.com/paper.pdf"}
  }
]
`

const sampleBlogPost = `{
  "title": "Hello, World",
  "excerpt": "The first post on this site.",
  "date": "2024-01-01",
  "category": "meta",
  "image": "",
  "tags": ["meta"],
  "content": "# Hello\n\nThis is the first post."
}
`
