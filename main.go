package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile   string
	siteDir      string
	settingsFile string
	debugMode    bool
)

var rootCmd = &cobra.Command{
	Use:   "plateup-pro",
	Short: "Static recipe page generator",
	Long: `Generates placeholder recipe pages and a cumulative JSON index from a
category/item configuration file. Already-generated articles are never
touched; new titles are appended to the index.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := EnsureSettingsExists(settingsFile); err != nil {
			return err
		}
		settings, err := loadCLISettings()
		if err != nil {
			return err
		}

		generator := NewGenerator(settings, siteDir)
		_, err = generator.Run(configFile)
		return err
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <title>",
	Short: "Render one article as markdown on stdout without writing files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadCLISettings()
		if err != nil {
			return err
		}

		markdown, err := PreviewArticle(settings, args[0])
		if err != nil {
			return err
		}
		fmt.Println(markdown)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the persisted article index",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadCLISettings()
		if err != nil {
			return err
		}

		generator := NewGenerator(settings, siteDir)
		for _, record := range generator.LoadExistingIndex() {
			fmt.Printf("%-28s %-18s %s\n", record.Slug, record.Category, record.Title)
		}
		return nil
	},
}

// loadCLISettings applies the debug flag and loads the settings file, falling
// back to defaults when it is absent.
func loadCLISettings() (*Settings, error) {
	if debugMode {
		log.SetLevel(log.DebugLevel)
	}
	return LoadSettings(settingsFile)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "recipes.json", "Path to the JSON source configuration")
	rootCmd.PersistentFlags().StringVar(&siteDir, "site-dir", ".", "Site output root directory")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", filepath.Join(defaultConfigDir, "settings.yaml"), "Path to the YAML settings file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(previewCmd, listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
