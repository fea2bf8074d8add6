package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio site engine: load JSON content, render a static site, serve it",
	Long: `Folio loads a portfolio's content documents (profile, education,
experience, projects, publications and blog posts), renders them into a
static HTML site, and serves the result locally with search, theme
persistence and publication filtering.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
