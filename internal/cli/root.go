package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xephas-official/assetlink/internal/app"
	"github.com/xephas-official/assetlink/internal/assets"
	"github.com/xephas-official/assetlink/internal/debug"
	"github.com/xephas-official/assetlink/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// Root command flags
var (
	rootAssetDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "assetlink <folder>[/<filename>]",
	Short: "Raw-content link generator for linkyoo assets",
	Long: `assetlink builds raw-content URLs for assets in the ` + assets.Owner + `/` + assets.Repo + ` repository.

Use "assetlink <folder>/<filename>" to print the raw URL for one file, or
"assetlink <folder>" to list the folder's local files newest first, each
paired with its generated link.

Allowed folders: meta, placeholders, blog

Examples:
  assetlink meta/cover.webp
  assetlink blog
  assetlink placeholders --root ./linkyoo`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
	RunE: runRoot,
}

// usageError marks errors that should be accompanied by usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			// Usage goes to stdout; the error above went to stderr.
			_ = rootCmd.Help()
		}
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Flags for the root command
	rootCmd.Flags().StringVar(&rootAssetDir, FlagRoot, "", DescRoot)

	// Add subcommands
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	if len(args) > 1 {
		return &usageError{fmt.Errorf("expected a single path argument, got %d", len(args))}
	}

	spec, err := assets.ParsePath(args[0])
	if err != nil {
		return &usageError{err}
	}

	switch spec.Mode {
	case assets.FileMode:
		result, err := app.Link(app.LinkOptions{Path: args[0]})
		if err != nil {
			return err
		}
		fmt.Println(result.URL)
		return nil
	default:
		result, err := app.List(app.ListOptions{
			Folder:  spec.Folder,
			RootDir: rootAssetDir,
		})
		if err != nil {
			return err
		}
		printListResult(result)
		return nil
	}
}

// printListResult prints a numbered, newest-first listing of the folder's
// files with their generated links.
func printListResult(result *app.ListResult) {
	if result.Warning != "" {
		printErrorMsg(result.Warning)
	}

	if len(result.Entries) == 0 {
		fmt.Printf("No files found in %s\n", result.Folder)
		return
	}

	fmt.Printf("Found %d %s in %s:\n", len(result.Entries), pluralizeFiles(len(result.Entries)), result.Folder)
	for i, entry := range result.Entries {
		fmt.Println()
		fmt.Printf("%d. %s\n", i+1, entry.Name)
		fmt.Printf("   %s\n", entry.URL)
	}
}

// pluralizeFiles returns "file" or "files" for a count.
func pluralizeFiles(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
