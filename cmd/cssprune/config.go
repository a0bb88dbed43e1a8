package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssprune"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssprune.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, explicitly set flags only)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSPRUNE_* prefix)
	if err := k.Load(env.Provider("CSSPRUNE_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. The first underscore
// separates the section, later ones become hyphens:
//
//	CSSPRUNE_REMOVE                   -> remove
//	CSSPRUNE_SASS_BINARY              -> sass.binary
//	CSSPRUNE_MARKUP_RESPECT_GITIGNORE -> markup.respect-gitignore
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "CSSPRUNE_"))
	key = strings.Replace(key, "_", ".", 1)
	return strings.ReplaceAll(key, "_", "-")
}

// buildRunConfig constructs the library's Config struct from koanf state.
func buildRunConfig(markupDir string, stylesheets []string) cssprune.Config {
	config := cssprune.Config{
		MarkupDir:        markupDir,
		Stylesheets:      stylesheets,
		Remove:           getBoolWithFallback("remove", "remove", false),
		Out:              getStringWithFallback("out", "out", cssprune.DefaultOut),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		SassBinary:       getStringWithFallback("sass-binary", "sass.binary", ""),
		RespectGitignore: getBoolWithFallback("", "markup.respect-gitignore", true),
	}

	// --no-gitignore only ever turns the check off
	if k.Bool("no-gitignore") {
		config.RespectGitignore = false
	}

	// Handle extensions: check flag key first, then config key
	if exts := k.Strings("ext"); len(exts) > 0 {
		config.MarkupExtensions = exts
	} else if exts := k.Strings("markup.extensions"); len(exts) > 0 {
		config.MarkupExtensions = exts
	} else {
		config.MarkupExtensions = cssprune.DefaultMarkupExtensions
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if flagKey != "" && k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
