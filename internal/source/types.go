package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single Apex source file.
type File struct {
	ID      FileID
	Path    string // нормализованный путь, как его передал вызывающий
	RelPath string // путь относительно BaseDir (для вывода и сортировки)
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// Name returns the file name without directory and extension,
// e.g. "AccountController" for "classes/AccountController.cls".
func (f *File) Name() string {
	return stem(f.Path)
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
