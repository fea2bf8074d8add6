package config

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .folio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = siteName

	// 2. Content source.
	sourcePrompt := promptui.Select{
		Label: "Where does your content live",
		Items: []string{"local directory", "remote URL"},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}
	if sourceIdx == 0 {
		dirPrompt := promptui.Prompt{
			Label:   "Content directory",
			Default: cfg.ContentDir,
		}
		dir, err := dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
		cfg.ContentDir = dir
		cfg.ContentURL = ""
	} else {
		urlPrompt := promptui.Prompt{
			Label: "Content base URL",
		}
		url, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content url: %w", err)
		}
		cfg.ContentURL = url
		cfg.ContentDir = ""
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 4. Default theme.
	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{"light", "dark"},
	}
	_, themeName, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	cfg.Theme.Default = themeName

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".folio.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration written to .folio.yml")
	if cfg.ContentDir != "" {
		if _, statErr := os.Stat(cfg.ContentDir); os.IsNotExist(statErr) {
			fmt.Printf("Note: content directory %s does not exist yet. Run `folio init --scaffold` to create sample content.\n", cfg.ContentDir)
		}
	}
	return cfg, nil
}
