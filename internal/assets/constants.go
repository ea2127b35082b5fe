package assets

// Fixed coordinates of the asset repository. All generated links point into
// this repository; the values never change at runtime.
const (
	// Owner is the GitHub account that hosts the asset repository.
	Owner = "xephas-official"
	// Repo is the asset repository name.
	Repo = "AppAssets"
	// Branch is the branch links are generated against.
	Branch = "main"
	// ProjectPath is the subdirectory under which all asset folders live.
	ProjectPath = "linkyoo"
)

// AllowedFolders is the fixed set of asset folders links may be generated for.
// Folder membership is validated before any filesystem access or URL output.
var AllowedFolders = []string{"meta", "placeholders", "blog"}

// IsAllowedFolder reports whether folder is a member of AllowedFolders.
func IsAllowedFolder(folder string) bool {
	for _, f := range AllowedFolders {
		if f == folder {
			return true
		}
	}
	return false
}
