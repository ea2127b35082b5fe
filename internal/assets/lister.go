package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xephas-official/assetlink/internal/debug"
)

// Lister enumerates the files of a local asset folder, newest first.
type Lister struct {
	// BaseDir is the asset root directory containing the allowed folders.
	// If empty, the root is resolved relative to the tool's own location.
	BaseDir string
}

// NewLister creates a Lister rooted next to the executable.
func NewLister() *Lister {
	return &Lister{}
}

// NewListerWithBase creates a Lister rooted at baseDir.
func NewListerWithBase(baseDir string) *Lister {
	return &Lister{BaseDir: baseDir}
}

// fileEntry pairs a filename with its modification time for sorting.
// Entries are transient; only the names leave List.
type fileEntry struct {
	name    string
	modTime time.Time
}

// Root resolves the asset root directory. When BaseDir is unset it is the
// ProjectPath directory next to the running executable.
func (l *Lister) Root() (string, error) {
	if l.BaseDir != "" {
		return filepath.Clean(l.BaseDir), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), ProjectPath), nil
}

// List returns the non-hidden regular files of folder, sorted by modification
// time descending. The folder must already be validated against AllowedFolders.
// A missing directory or unreadable listing returns a ListFailed error; the
// caller is expected to degrade to an empty result rather than abort. Entries
// that cannot be stat'd are skipped.
func (l *Lister) List(folder string) ([]string, error) {
	root, err := l.Root()
	if err != nil {
		return nil, NewListError(folder, err)
	}

	dir := filepath.Join(root, folder)
	debug.DebugValue("[lister] directory", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewListError(folder, fmt.Errorf("directory does not exist: %s", dir))
		}
		return nil, NewListError(folder, err)
	}

	files := make([]fileEntry, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		// Hidden files are excluded from listings.
		if strings.HasPrefix(name, ".") {
			debug.Debug("[lister] skipping hidden entry: %s", name)
			continue
		}
		if !entry.Type().IsRegular() {
			debug.Debug("[lister] skipping non-regular entry: %s", name)
			continue
		}

		info, err := entry.Info()
		if err != nil {
			debug.Debug("[lister] skipping unstatable entry %s: %v", name, err)
			continue
		}

		files = append(files, fileEntry{name: name, modTime: info.ModTime()})
	}

	// Newest first. Ties keep directory-read order.
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.name
	}

	debug.Debug("[lister] listed %d files in %s", len(names), folder)
	return names, nil
}
