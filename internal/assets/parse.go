package assets

import "strings"

// PathMode discriminates the two forms a path argument can take.
type PathMode int

const (
	// FolderMode means the argument named a folder only.
	FolderMode PathMode = iota
	// FileMode means the argument named a folder and a filename.
	FileMode
)

// PathSpec is the parsed form of a path argument.
type PathSpec struct {
	// Mode indicates whether a filename was supplied.
	Mode PathMode
	// Folder is the validated asset folder name.
	Folder string
	// Filename is the file name within the folder (FileMode only).
	Filename string
}

// ParsePath parses and validates a path argument of the form "folder" or
// "folder/filename". The folder segment is checked against AllowedFolders
// before anything else happens; no filesystem access or URL generation may
// precede this check. ParsePath has no side effects, so parsing is testable
// independent of process exit and console output.
func ParsePath(arg string) (PathSpec, error) {
	if arg == "" {
		return PathSpec{}, NewInvalidPathError("path must be in the format folder/filename or just folder")
	}

	segments := strings.Split(arg, "/")
	if len(segments) > 2 {
		return PathSpec{}, NewInvalidPathError("path must be in the format folder/filename or just folder")
	}

	folder := segments[0]
	if !IsAllowedFolder(folder) {
		return PathSpec{}, NewUnknownFolderError(folder)
	}

	if len(segments) == 1 {
		return PathSpec{Mode: FolderMode, Folder: folder}, nil
	}

	filename := segments[1]
	if filename == "" {
		return PathSpec{}, NewInvalidPathError("path must be in the format folder/filename or just folder")
	}

	return PathSpec{Mode: FileMode, Folder: folder, Filename: filename}, nil
}
