// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

// Package config handles loading and merging check-labeler configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com"

// Config is the root configuration structure.
type Config struct {
	// Extends allows inheriting from a remote config (e.g., "org/repo@branch").
	Extends string `yaml:"extends,omitempty"`

	// CheckRegexp locates the checkbox in the pull request body.
	// Its first capture group holds the box content.
	CheckRegexp string `yaml:"check_regexp"`

	// Label is synchronized onto every referenced issue.
	Label string `yaml:"label"`

	// DryRun logs label changes without applying them.
	DryRun bool `yaml:"dry_run"`

	// GitHub configures API access.
	GitHub GitHubConfig `yaml:"github"`
}

// GitHubConfig holds GitHub API settings.
type GitHubConfig struct {
	Token  string `yaml:"token,omitempty"`
	APIURL string `yaml:"api_url,omitempty"`
}

// Load reads a config file from the given path and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parseRaw(data)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// parseRaw expands environment variables and decodes YAML without applying defaults.
func parseRaw(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Fetcher retrieves a remote config. It receives the GitHub settings of the
// local file so that the fetch can use its token and API URL.
type Fetcher func(ref string, local GitHubConfig) ([]byte, error)

// LoadWithInheritance loads a config and resolves the 'extends' chain.
// The fetcher function is used to retrieve remote configs.
func LoadWithInheritance(path string, fetcher Fetcher) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if cfg.Extends == "" {
		return cfg, nil
	}

	parentData, err := fetcher(cfg.Extends, cfg.GitHub)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent config '%s': %w", cfg.Extends, err)
	}

	parentCfg, err := parseRaw(parentData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parent config: %w", err)
	}

	// Merge: child overrides parent
	merged := mergeConfigs(parentCfg, cfg)
	merged.applyDefaults()

	return merged, nil
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	candidates := []string{
		".github/check-labeler.yaml",
		".github/check-labeler.yml",
		".check-labeler.yaml",
		".check-labeler.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// ApplyInputs overlays GitHub Action inputs onto the config. Empty inputs
// leave the current value untouched. The lookup receives input names as
// declared in action.yml (e.g. "check-regexp").
func (c *Config) ApplyInputs(input func(name string) string) error {
	if v := input("check-regexp"); v != "" {
		c.CheckRegexp = v
	}
	if v := input("label"); v != "" {
		c.Label = v
	}
	if v := input("github-token"); v != "" {
		c.GitHub.Token = v
	}
	if v := input("dry-run"); v != "" {
		dryRun, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid dry-run input %q: %w", v, err)
		}
		c.DryRun = dryRun
	}
	return nil
}

// ApplyEnv fills values the Actions runner exposes through its standard
// environment (GITHUB_TOKEN, GITHUB_API_URL) when nothing more specific is set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if c.GitHub.Token == "" {
		c.GitHub.Token = getenv("GITHUB_TOKEN")
	}
	if v := getenv("GITHUB_API_URL"); v != "" && (c.GitHub.APIURL == "" || c.GitHub.APIURL == DefaultAPIURL) {
		c.GitHub.APIURL = v
	}
	c.applyDefaults()
}

// Validate checks that the settings required for a run are present.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.CheckRegexp) == "" {
		errs = append(errs, errors.New("check-regexp is required"))
	}
	if strings.TrimSpace(c.Label) == "" {
		errs = append(errs, errors.New("label is required"))
	}
	return errors.Join(errs...)
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.GitHub.APIURL == "" {
		c.GitHub.APIURL = DefaultAPIURL
	}
}

// mergeConfigs merges a child config onto a parent config.
// Non-zero values in child override parent.
func mergeConfigs(parent, child *Config) *Config {
	result := *parent

	if child.CheckRegexp != "" {
		result.CheckRegexp = child.CheckRegexp
	}
	if child.Label != "" {
		result.Label = child.Label
	}
	// DryRun stays on when either side sets it.
	result.DryRun = parent.DryRun || child.DryRun

	if child.GitHub.Token != "" {
		result.GitHub.Token = child.GitHub.Token
	}
	if child.GitHub.APIURL != "" {
		result.GitHub.APIURL = child.GitHub.APIURL
	}

	return &result
}

// ParseExtendsRef parses "org/repo@branch" into components.
func ParseExtendsRef(ref string) (org, repo, branch, path string, err error) {
	// Format: org/repo@branch or org/repo@branch:path
	parts := strings.SplitN(ref, "@", 2)
	if len(parts) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo@branch)", ref)
	}

	orgRepo := strings.SplitN(parts[0], "/", 2)
	if len(orgRepo) != 2 || orgRepo[0] == "" || orgRepo[1] == "" {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo)", ref)
	}

	org = orgRepo[0]
	repo = orgRepo[1]

	branchPath := strings.SplitN(parts[1], ":", 2)
	branch = branchPath[0]
	if len(branchPath) == 2 {
		path = branchPath[1]
	} else {
		path = ".github/check-labeler.yaml" // default path
	}

	return org, repo, branch, path, nil
}
