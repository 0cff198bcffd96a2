package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all posts in the content directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, svc, err := loadSite()
		if err != nil {
			return fmt.Errorf("initializing site: %w", err)
		}

		posts, err := svc.ListPosts(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing posts: %w", err)
		}

		out := cmd.OutOrStdout()
		if listJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(posts)
		}

		for _, post := range posts {
			// Basic output: slug - title (date)
			line := post.Slug
			if post.Title != "" {
				line += " - " + post.Title
			}
			if post.Date != "" {
				line += " (" + post.Date + ")"
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
