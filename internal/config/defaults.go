package config

// DefaultConfig returns the configuration used when no file or overrides
// are present.
func DefaultConfig() *Config {
	return &Config{
		SiteName:   "Portfolio",
		ContentDir: "content",
		OutputDir:  "public",
		DataDir:    ".folio",
		Blog: BlogConfig{
			Path:     "blog",
			Manifest: "manifest.json",
		},
		Theme: ThemeConfig{Default: "light"},
		Port:  8080,
	}
}
