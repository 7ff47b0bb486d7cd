package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every file read during a run; a FileID indexes into it.
// Adding the same path twice yields two ids, the old content stays valid.
type FileSet struct {
	files []File
}

func NewFileSet() *FileSet {
	return &FileSet{}
}

// Add stores already normalized content and returns its id.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	fs.files = append(fs.files, File{
		ID:      FileID(n),
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	})
	return FileID(n)
}

// Load reads path from disk and adds it via AddRaw.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fs.AddRaw(path, content, 0), nil
}

// AddRaw drops a leading BOM and turns CRLF into LF, recording both in flags.
func (fs *FileSet) AddRaw(path string, content []byte, flags FileFlags) FileID {
	content, bom := removeBOM(content)
	if bom {
		flags |= FileHadBOM
	}
	content, crlf := normalizeCRLF(content)
	if crlf {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags)
}

// AddVirtual is AddRaw for content that did not come from disk.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.AddRaw(name, content, FileVirtual)
}

// Get returns nil for an unknown id.
func (fs *FileSet) Get(id FileID) *File {
	if int(id) >= len(fs.files) {
		return nil
	}
	return &fs.files[id]
}

// Resolve converts both ends of span into 1-based line and column.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	idx := fs.files[span.File].LineIdx
	return toLineCol(idx, span.Start), toLineCol(idx, span.End)
}
