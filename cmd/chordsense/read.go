package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	readJSON bool
	readHTML bool
)

var readCmd = &cobra.Command{
	Use:   "read [slug]",
	Short: "Read a post",
	Long:  `Read a post by its slug. Outputs the raw body by default, rendered HTML with --html, or a JSON object with --json.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]
		_, svc, err := loadSite()
		if err != nil {
			return fmt.Errorf("initializing site: %w", err)
		}

		out := cmd.OutOrStdout()

		if readHTML {
			rendered, err := svc.RenderPost(cmd.Context(), slug)
			if err != nil {
				return fmt.Errorf("rendering post: %w", err)
			}
			if readJSON {
				return encodeJSON(cmd, map[string]any{"post": rendered.Post, "html": string(rendered.HTML)})
			}
			_, err = out.Write(rendered.HTML)
			return err
		}

		doc, err := svc.GetPost(cmd.Context(), slug)
		if err != nil {
			return fmt.Errorf("reading post: %w", err)
		}
		if readJSON {
			return encodeJSON(cmd, map[string]any{"post": doc.Post, "body": string(doc.Body)})
		}

		_, err = out.Write(doc.Body)
		return err
	},
}

func encodeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output in JSON format")
	readCmd.Flags().BoolVar(&readHTML, "html", false, "Render the body to HTML")
}
