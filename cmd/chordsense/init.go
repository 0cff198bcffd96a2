package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/chordsense/chordsense/internal/config"
	"github.com/chordsense/chordsense/pkg/core"
)

const samplePost = `---
title: "Hello, Chordsense"
summary: "The first post."
date: "%s"
---
# Hello

Posts live in this directory. Edit me or add more ` + "`.mdx`" + ` files.
`

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a site in the current directory",
	Long:  `Create chordsense.yaml and a content directory holding one example post.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		cfg := config.Default()
		if err := config.Write(filepath.Join(cwd, config.FileName), cfg); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		dir := filepath.Join(cwd, cfg.Content.Dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating content directory: %w", err)
		}

		post := filepath.Join(dir, "hello-world"+cfg.Content.Extension)
		if _, err := os.Stat(post); os.IsNotExist(err) {
			body := fmt.Sprintf(samplePost, today())
			if err := os.WriteFile(post, []byte(body), 0644); err != nil {
				return fmt.Errorf("writing example post: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Initialized Chordsense site in", cwd)
		return nil
	},
}

func today() string {
	return time.Now().Format(core.DateLayout)
}

func init() {
	rootCmd.AddCommand(initCmd)
}
