package assets

import "fmt"

// RawContentURL formats the raw-content URL for a file in the asset repository.
// It is a pure function of its inputs and performs no validation or escaping;
// callers are responsible for validating the folder (see ParsePath) and for
// supplying a filename that is already a valid URL path segment.
//
// Downstream consumers match these links byte-for-byte, so the format is fixed:
//
//	https://raw.githubusercontent.com/{owner}/{repo}/refs/heads/{branch}/{projectPath}/{folder}/{filename}
func RawContentURL(folder, filename string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/refs/heads/%s/%s/%s/%s",
		Owner, Repo, Branch, ProjectPath, folder, filename)
}
