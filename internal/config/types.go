package config

// BlogConfig controls blog-post discovery.
type BlogConfig struct {
	// Path is the slash path of the blog directory within the content
	// source.
	Path string `yaml:"path" koanf:"path"`
	// Manifest is the fallback manifest file name within Path.
	Manifest string `yaml:"manifest" koanf:"manifest"`
	// Include holds doublestar patterns matched against post file names.
	Include []string `yaml:"include,omitempty" koanf:"include"`
}

// ThemeConfig controls the persisted theme preference.
type ThemeConfig struct {
	Default string `yaml:"default" koanf:"default"`
}

// Config is the top-level folio configuration, corresponding to .folio.yml.
// At least one of ContentDir and ContentURL must be set; ContentURL wins
// when both are.
type Config struct {
	SiteName   string      `yaml:"site_name" koanf:"site_name"`
	ContentDir string      `yaml:"content_dir,omitempty" koanf:"content_dir"`
	ContentURL string      `yaml:"content_url,omitempty" koanf:"content_url"`
	OutputDir  string      `yaml:"output_dir" koanf:"output_dir"`
	DataDir    string      `yaml:"data_dir" koanf:"data_dir"`
	Blog       BlogConfig  `yaml:"blog" koanf:"blog"`
	Theme      ThemeConfig `yaml:"theme" koanf:"theme"`
	Port       int         `yaml:"port" koanf:"port"`
}
