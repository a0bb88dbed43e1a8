package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssprune.yaml config file",
	Long:  `Create a .cssprune.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssprune.yaml"); err == nil && !force {
			return fmt.Errorf(".cssprune.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssprune.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .cssprune.yaml")
		return nil
	},
}

const defaultConfig = `# cssprune configuration
# Docs: https://github.com/yacobolo/cssprune

# Report settings
verbose: false
format: text             # text | json | yaml
color: false

# Pruning
remove: false
out: pruned.css

# Markup discovery
markup:
  extensions:
    - .html
    - .jsx
    - .tsx
  respect-gitignore: true

# Preprocessor for .scss / .sass stylesheets
sass:
  binary: sass
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
