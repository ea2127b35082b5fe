package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/xephas-official/assetlink/internal/app"
	"github.com/xephas-official/assetlink/internal/assets"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick an asset and print its link",
	Long: `Select an asset folder and file interactively, then print the
raw-content URL for the chosen file.

The file list comes from the local asset root, newest first, the same way
"assetlink <folder>" lists it.

Examples:
  assetlink pick
  assetlink pick --root ./linkyoo`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

// Pick command flags
var (
	pickAssetDir string
)

func init() {
	// Flags for pick
	pickCmd.Flags().StringVar(&pickAssetDir, FlagRoot, "", DescRoot)
}

func runPick(cmd *cobra.Command, args []string) error {
	var folder string
	folderPrompt := &survey.Select{
		Message: "Asset folder:",
		Options: assets.AllowedFolders,
	}
	if err := survey.AskOne(folderPrompt, &folder); err != nil {
		return fmt.Errorf("folder selection aborted: %w", err)
	}

	result, err := app.List(app.ListOptions{
		Folder:  folder,
		RootDir: pickAssetDir,
	})
	if err != nil {
		return err
	}
	if result.Warning != "" {
		printErrorMsg(result.Warning)
	}
	if len(result.Entries) == 0 {
		printWarning(fmt.Sprintf("No files found in %s", folder))
		return nil
	}

	names := make([]string, len(result.Entries))
	for i, entry := range result.Entries {
		names[i] = entry.Name
	}

	var file string
	filePrompt := &survey.Select{
		Message: "File:",
		Options: names,
	}
	if err := survey.AskOne(filePrompt, &file); err != nil {
		return fmt.Errorf("file selection aborted: %w", err)
	}

	link, err := app.Link(app.LinkOptions{Path: folder + "/" + file})
	if err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("%s/%s", folder, file))
	fmt.Println(link.URL)
	return nil
}
