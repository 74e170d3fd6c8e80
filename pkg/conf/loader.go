package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/NVIDIA/tunectl/pkg/sysctl"
)

// DropInDirs is the default search path for sysctl.d drop-in files, highest
// precedence first.
var DropInDirs = []string{
	"/etc/sysctl.d",
	"/run/sysctl.d",
	"/usr/local/lib/sysctl.d",
	"/usr/lib/sysctl.d",
}

// Loader resolves and parses configuration sources into an ordered list of
// settings.
type Loader struct {
	// Dirs is the drop-in search path. If nil, DropInDirs is used.
	Dirs []string

	// Log receives per-source parse failures. If nil, slog.Default is used.
	Log *slog.Logger
}

// Files resolves the configuration sources to read. Explicitly named files
// are used as given, in order. Without arguments, the drop-in directories
// are scanned for *.conf files: results merge across directories, sorted by
// base name, and a base name found in an earlier directory shadows the same
// name in later ones. An absent directory is not an error.
func (l *Loader) Files(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	dirs := l.Dirs
	if dirs == nil {
		dirs = DropInDirs
	}

	byBase := make(map[string]string)
	for _, dir := range dirs {
		des, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read config directory %s: %w", dir, err)
		}
		for _, de := range des {
			name := de.Name()
			if de.IsDir() || !strings.HasSuffix(name, ".conf") {
				continue
			}
			if _, ok := byBase[name]; ok {
				continue
			}
			byBase[name] = filepath.Join(dir, name)
		}
	}

	bases := make([]string, 0, len(byBase))
	for b := range byBase {
		bases = append(bases, b)
	}
	sort.Strings(bases)

	files := make([]string, 0, len(bases))
	for _, b := range bases {
		files = append(files, byBase[b])
	}
	return files, nil
}

// Load parses every source into a single ordered entry list. Names are
// canonicalized with sysctl.Normalize at load time. A name seen again keeps
// its original position but takes the later value (INI overlay, last value
// wins). A malformed source is logged and marks the run failed, but the
// remaining sources are still loaded; the first load error is returned.
func (l *Loader) Load(paths []string) ([]sysctl.Entry, error) {
	log := l.Log
	if log == nil {
		log = slog.Default()
	}

	var (
		entries  []sysctl.Entry
		firstErr error
	)
	index := make(map[string]int)

	for _, p := range paths {
		log.Debug("parsing configuration source", slog.String("path", p))
		if err := loadFile(p, &entries, index); err != nil {
			log.Error("failed to parse configuration source",
				slog.String("path", p),
				slog.String("error", err.Error()),
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return entries, firstErr
}

// loadFile parses one source. A single parse attempt per source.
func loadFile(path string, entries *[]sysctl.Entry, index map[string]int) error {
	f, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters: "=",
	}, path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, sec := range f.Sections() {
		for _, key := range sec.Keys() {
			name := key.Name()
			if sec.Name() != ini.DefaultSection {
				name = sec.Name() + "." + name
			}
			name = sysctl.Normalize(strings.TrimSpace(name))

			if i, ok := index[name]; ok {
				(*entries)[i].Value = key.String()
				continue
			}
			index[name] = len(*entries)
			*entries = append(*entries, sysctl.Entry{Name: name, Value: key.String()})
		}
	}
	return nil
}
