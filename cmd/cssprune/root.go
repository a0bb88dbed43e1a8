package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssprune"
)

var rootCmd = &cobra.Command{
	Use:   "cssprune <markup-dir> <stylesheet>...",
	Short: "Find and strip CSS classes that no markup uses",
	Long: `Scan a directory of .html/.jsx/.tsx files for static class names and
compare them against the class selectors of one or more stylesheets.

Stylesheets may be files, directories or glob patterns ("styles/**/*.css").
.scss and .sass files are compiled with the sass binary first.

Only literal class="..." / className="..." values are seen. Classes built
with conditionals, concatenation, clsx() or variables are reported unused.`,
	Example: `  # Report unused classes
  cssprune src styles/main.css

  # Write a pruned stylesheet
  cssprune src "styles/**/*.scss" --remove --out dist/app.css

  # Machine-readable report
  cssprune src styles --format json`,
	Args: cobra.MinimumNArgs(2),
	// Argument errors print usage; anything after PreRunE does not.
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Root().SilenceUsage = true
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrune(cmd, args)
	},
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress the report (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssprune.yaml", "Config file path")

	f := rootCmd.Flags()
	f.BoolP("remove", "r", false, "Write a stylesheet with unused rules removed")
	f.StringP("out", "o", cssprune.DefaultOut, "Output path for the pruned stylesheet")
	f.String("format", "text", "Report format: text|json|yaml")
	f.StringSlice("ext", nil, "Markup file extensions to scan (default .html,.jsx,.tsx)")
	f.String("sass-binary", "", "sass executable used for .scss/.sass files (default sass)")
	f.Bool("no-gitignore", false, "Scan markup files ignored by <markup-dir>/.gitignore")

	// Positional arguments are paths
	rootCmd.ValidArgsFunction = func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveDefault
	}
	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	config := buildRunConfig(args[0], args[1:])
	config.Logger = cssprune.NewLogger(cmd.ErrOrStderr(), config.Verbose)

	result, err := cssprune.Run(ctx, config)
	if err != nil {
		return err
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	format := cssprune.DetermineOutputFormat(getStringWithFallback("format", "format", "text"))
	useColors := cssprune.ShouldUseColors(getBoolWithFallback("color", "color", false))
	if err := cssprune.WriteOutput(cmd.OutOrStdout(), result, format, useColors); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}
