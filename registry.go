package mdswagger

import (
	"iter"
	"path/filepath"
	"slices"
	"sync"
)

// File is an asset the build must copy into the generated site.
type File struct {
	SrcURI      string // Name relative to the source directory
	AbsSrcPath  string
	AbsDestPath string
	DestURI     string // Path at which the file appears in the site output tree
}

// newFile mirrors a file named name from srcDir into destDir.
func newFile(name, srcDir, destDir string) File {
	return File{
		SrcURI:      filepath.ToSlash(name),
		AbsSrcPath:  filepath.Join(srcDir, name),
		AbsDestPath: filepath.Join(destDir, name),
		DestURI:     filepath.ToSlash(name),
	}
}

// FileRegistry is the build-wide list of files to copy.
// Implementations must be append-only.
type FileRegistry interface {
	Append(f File)
	All() iter.Seq[File]
}

// Files is a FileRegistry safe for concurrent use.
type Files struct {
	mu    sync.RWMutex
	files []File
}

// Compile-time interface implementation check.
var _ FileRegistry = (*Files)(nil)

// NewFiles returns a registry seeded with files.
func NewFiles(files ...File) *Files {
	return &Files{files: slices.Clone(files)}
}

// Append registers f.
func (r *Files) Append(f File) {
	r.mu.Lock()
	r.files = append(r.files, f)
	r.mu.Unlock()
}

// All iterates over a snapshot of the registered files in registration order.
func (r *Files) All() iter.Seq[File] {
	r.mu.RLock()
	snapshot := slices.Clone(r.files)
	r.mu.RUnlock()
	return slices.Values(snapshot)
}

// Len returns the number of registered files.
func (r *Files) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.files)
}
