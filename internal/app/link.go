package app

import (
	"github.com/xephas-official/assetlink/internal/assets"
	"github.com/xephas-official/assetlink/internal/debug"
)

// LinkOptions holds options for generating a single asset link.
type LinkOptions struct {
	// Path is the raw "folder/filename" argument.
	Path string
}

// LinkResult holds the result of link generation.
type LinkResult struct {
	// Folder is the validated asset folder.
	Folder string
	// Filename is the asset file name.
	Filename string
	// URL is the generated raw-content URL.
	URL string
}

// Link validates a "folder/filename" path and generates its raw-content URL.
func Link(opts LinkOptions) (*LinkResult, error) {
	debug.DebugValue("[app] Link path", opts.Path)

	spec, err := assets.ParsePath(opts.Path)
	if err != nil {
		return nil, NewValidationError("invalid path", err)
	}
	if spec.Mode != assets.FileMode {
		return nil, NewValidationError("path must be in the format folder/filename", nil)
	}

	url := assets.RawContentURL(spec.Folder, spec.Filename)
	debug.DebugValue("[app] generated URL", url)

	return &LinkResult{
		Folder:   spec.Folder,
		Filename: spec.Filename,
		URL:      url,
	}, nil
}
