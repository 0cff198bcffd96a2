// Package config loads site configuration from chordsense.yaml, .env and
// CHORDSENSE_* environment variables, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "chordsense.yaml"

// Config holds the site and server settings.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Server  ServerConfig  `yaml:"server"`
}

// SiteConfig is shown in the page layout and on the home page.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ContentConfig describes where posts live and how they are read.
type ContentConfig struct {
	Dir         string   `yaml:"dir"`
	Extension   string   `yaml:"extension"`
	Pattern     string   `yaml:"pattern"`
	Concurrency int      `yaml:"concurrency"`
	UnsafeHTML  bool     `yaml:"unsafe_html"`
	HardWraps   bool     `yaml:"hard_wraps"`
	Extensions  []string `yaml:"markdown_extensions"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Site: SiteConfig{
			Title:       "Chordsense",
			Description: "Learning music theory while building tools with DuckDB + Go.",
		},
		Content: ContentConfig{
			Dir:         "content",
			Extension:   ".mdx",
			Concurrency: 8,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads the configuration for the site rooted at root.
// path may be empty, in which case root/chordsense.yaml is tried; a missing
// default file is not an error. Relative content directories are resolved
// against root.
func Load(root, path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, FileName)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.Content.Dir != "" && !filepath.IsAbs(cfg.Content.Dir) {
		cfg.Content.Dir = filepath.Join(root, cfg.Content.Dir)
	}

	return cfg, cfg.Validate()
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Content.Dir) == "" {
		return fmt.Errorf("content.dir is required")
	}
	if c.Content.Concurrency < 0 {
		return fmt.Errorf("content.concurrency must not be negative, got %d", c.Content.Concurrency)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("CHORDSENSE_CONTENT_DIR"); ok {
		cfg.Content.Dir = v
	}
	if v, ok := os.LookupEnv("CHORDSENSE_EXTENSION"); ok {
		cfg.Content.Extension = v
	}
	if v, ok := os.LookupEnv("CHORDSENSE_ADDR"); ok {
		cfg.Server.Addr = v
	}
	if v, ok := os.LookupEnv("CHORDSENSE_TITLE"); ok {
		cfg.Site.Title = v
	}
	if v, ok := os.LookupEnv("CHORDSENSE_CONCURRENCY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CHORDSENSE_CONCURRENCY %q: %w", v, err)
		}
		cfg.Content.Concurrency = n
	}
	return nil
}

// Write stores cfg as YAML at path. It refuses to overwrite an existing file.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
