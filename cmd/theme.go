package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the persisted site theme",
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeDB, err := openThemeStore()
		if err != nil {
			return err
		}
		defer closeDB()

		current, err := store.Current()
		if err != nil {
			return err
		}
		fmt.Println(current)
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <light|dark>",
	Short: "Persist the given theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeDB, err := openThemeStore()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := store.Set(args[0]); err != nil {
			return err
		}
		fmt.Printf("Theme set to %s\n", args[0])
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeDB, err := openThemeStore()
		if err != nil {
			return err
		}
		defer closeDB()

		next, err := store.Toggle()
		if err != nil {
			return err
		}
		fmt.Printf("Theme set to %s\n", next)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeShowCmd, themeSetCmd, themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}

func openThemeStore() (*theme.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	database, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	store := theme.NewStore(database, cfg.Theme.Default)
	return store, func() { database.Close() }, nil
}
