package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chordsense/chordsense"
	"github.com/chordsense/chordsense/internal/config"
	"github.com/chordsense/chordsense/pkg/core"
)

var (
	verbose    bool
	contentDir string
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chordsense",
	Short: "A small blog served from a directory of MDX files",
	Long: `Chordsense reads Markdown/MDX files with YAML frontmatter from a content
directory and serves them as a blog index and post pages.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal("Error", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&contentDir, "dir", "d", "", "Content directory (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to chordsense.yaml")
}

// siteRoot returns the nearest directory holding a site, or the working directory.
func siteRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if root, err := chordsense.FindSiteRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}

// loadSite resolves configuration and wires the content service.
func loadSite() (config.Config, *core.Service, error) {
	root, err := siteRoot()
	if err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := config.Load(root, configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if contentDir != "" {
		cfg.Content.Dir = contentDir
	}

	svc, err := chordsense.New(cfg.Content.Dir,
		chordsense.WithExtension(cfg.Content.Extension),
		chordsense.WithPattern(cfg.Content.Pattern),
		chordsense.WithConcurrency(cfg.Content.Concurrency),
		chordsense.WithUnsafeHTML(cfg.Content.UnsafeHTML),
		chordsense.WithHardWraps(cfg.Content.HardWraps),
		chordsense.WithMarkdownExtensions(cfg.Content.Extensions...),
		chordsense.WithLogger(slog.Default()),
	)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, svc, nil
}
