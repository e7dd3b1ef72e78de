package driver

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"

	"apexts/internal/ast"
	"apexts/internal/diag"
	"apexts/internal/parser"
	"apexts/internal/project"
	"apexts/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 2

// DiskCache хранит результаты разбора файлов по ключу H(content || options).
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome of ConvertFile. Spans are stored with the
// file id of the run that produced them and retargeted on restore.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path        string
	Status      uint8
	ClassName   string
	Class       *ast.ClassDecl
	Diagnostics []diag.Diagnostic
}

// OpenDiskCache opens (and creates) a cache in dir. An empty dir selects
// $XDG_CACHE_HOME/apexts, falling back to ~/.cache/apexts.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, errors.Wrap(err, "locate cache directory")
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "apexts")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create cache directory %s", dir)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог "files" + шардинг по первому байту.
	return filepath.Join(c.dir, "files", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errors.Wrap(err, "create cache shard")
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return errors.Wrap(err, "create cache entry")
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "encode cache entry")
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "close cache entry")
	}
	// Атомарная замена
	if err = os.Rename(tmp, p); err != nil {
		return errors.Wrap(err, "commit cache entry")
	}
	return nil
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrap(err, "open cache entry")
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, errors.Wrap(err, "decode cache entry")
	}
	return true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.RemoveAll(filepath.Join(c.dir, "files")); err != nil {
		return errors.Wrap(err, "drop cache")
	}
	return nil
}

func newDiskPayload(res *FileResult) *DiskPayload {
	return &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        res.Path,
		Status:      uint8(res.Status),
		ClassName:   res.ClassName,
		Class:       res.Class,
		Diagnostics: res.Bag.Items(),
	}
}

// restore fills res from the payload, rebinding spans to file id.
func (p *DiskPayload) restore(res *FileResult, id source.FileID) {
	res.Status = parser.Status(p.Status)
	res.ClassName = p.ClassName
	res.Class = p.Class
	res.Cached = true
	if res.Class != nil {
		res.Class.Retarget(id)
		res.Class.Path = res.Path
	}
	for _, d := range p.Diagnostics {
		d.Primary = d.Primary.WithFile(id)
		notes := make([]diag.Note, len(d.Notes))
		for i, n := range d.Notes {
			notes[i] = diag.Note{Span: n.Span.WithFile(id), Msg: n.Msg}
		}
		d.Notes = notes
		res.Bag.Add(d)
	}
	if res.Status == parser.StatusFailed {
		res.Err = errors.Mark(errors.Newf("%s: structural parse error", res.Path), ErrStructural)
	}
}
