package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridshift/internal/levels/formats"
)

//go:embed data/*.yaml
var builtin embed.FS

// Loader reads level files from a file system.
type Loader struct {
	FS     fs.FS
	Cols   int
	Rows   int
	Logger *log.Logger
}

// NewLoader creates a loader for levels on a cols×rows board.
func NewLoader(fsys fs.FS, cols, rows int) *Loader {
	return &Loader{FS: fsys, Cols: cols, Rows: rows, Logger: log.Default()}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin(cols, rows int) *Loader {
	sub, _ := fs.Sub(builtin, "data")
	return NewLoader(sub, cols, rows)
}

// Dir returns a loader over a directory on disk.
func Dir(root string, cols, rows int) *Loader {
	return NewLoader(os.DirFS(root), cols, rows)
}

// LoadAll loads every level file. Invalid files are skipped with a warning.
// Levels are ordered by file path, and a pack keeps its own order, so the
// last level is the hardest. ErrNoLevels is returned when nothing is usable.
func (l *Loader) LoadAll() ([]Level, error) {
	var out []Level

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}
		lvls, err := l.LoadFile(p)
		if err != nil {
			l.Logger.Warn("skipping level file", "path", p, "err", err)
			return nil
		}
		out = append(out, lvls...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNoLevels
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FilePath < out[j].FilePath
	})
	return out, nil
}

// LoadFile loads every level of a single file. Levels without an ID are
// named after the file, with a sequence number for packs.
func (l *Loader) LoadFile(p string) ([]Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", p, err)
	}
	parsed, err := formats.Parse(data, path.Ext(p))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", p, err)
	}

	base := strings.TrimSuffix(path.Base(p), path.Ext(p))
	out := make([]Level, 0, len(parsed))
	for i, fl := range parsed {
		if fl.ID == "" {
			fl.ID = base
			if len(parsed) > 1 {
				fl.ID = fmt.Sprintf("%s-%02d", base, i+1)
			}
		}
		lvl, err := FromFormat(fl, l.Cols, l.Rows)
		if err != nil {
			return nil, fmt.Errorf("file %s: %w", p, err)
		}
		lvl.FilePath = p
		out = append(out, lvl)
	}
	return out, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	lvls, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range lvls {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// Validate loads every file and reports each one that fails, without
// skipping. It is meant for checking a level directory by hand.
func (l *Loader) Validate() (int, error) {
	var errs []error
	count := 0
	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}
		lvls, err := l.LoadFile(p)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		count += len(lvls)
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("levels: walking: %w", err)
	}
	if count == 0 && len(errs) == 0 {
		return 0, ErrNoLevels
	}
	return count, errors.Join(errs...)
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
