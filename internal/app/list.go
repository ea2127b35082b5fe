package app

import (
	"github.com/xephas-official/assetlink/internal/assets"
	"github.com/xephas-official/assetlink/internal/debug"
)

// ListOptions holds options for listing an asset folder.
type ListOptions struct {
	// Folder is the asset folder name to list.
	Folder string
	// RootDir overrides the asset root directory. If empty, the root is
	// resolved relative to the executable.
	RootDir string
}

// ListEntry pairs a file name with its generated raw-content URL.
type ListEntry struct {
	// Name is the file name within the folder.
	Name string
	// URL is the generated raw-content URL for the file.
	URL string
}

// ListResult holds the result of listing an asset folder.
type ListResult struct {
	// Folder is the validated asset folder.
	Folder string
	// Entries are the folder's files, newest first, with their links.
	Entries []ListEntry
	// Warning carries a non-fatal listing failure message. When set, Entries
	// is empty and the caller reports the warning without failing.
	Warning string
}

// List validates an asset folder name and lists its files newest first, each
// paired with its raw-content URL. A missing or unreadable directory degrades
// to an empty result with a warning instead of an error; only an invalid
// folder name fails.
func List(opts ListOptions) (*ListResult, error) {
	debug.DebugValue("[app] List folder", opts.Folder)

	spec, err := assets.ParsePath(opts.Folder)
	if err != nil {
		return nil, NewValidationError("invalid folder", err)
	}
	if spec.Mode != assets.FolderMode {
		return nil, NewValidationError("expected a folder name without a filename", nil)
	}

	var lister *assets.Lister
	if opts.RootDir != "" {
		lister = assets.NewListerWithBase(opts.RootDir)
	} else {
		lister = assets.NewLister()
	}

	names, err := lister.List(spec.Folder)
	if err != nil {
		// Listing failures are non-fatal: report and continue with no files.
		debug.Debug("[app] listing degraded to empty result: %v", err)
		return &ListResult{Folder: spec.Folder, Warning: err.Error()}, nil
	}

	entries := make([]ListEntry, len(names))
	for i, name := range names {
		entries[i] = ListEntry{
			Name: name,
			URL:  assets.RawContentURL(spec.Folder, name),
		}
	}

	return &ListResult{Folder: spec.Folder, Entries: entries}, nil
}
