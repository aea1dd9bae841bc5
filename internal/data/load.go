package data

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Extensions lists the file types Load understands.
var Extensions = []string{".csv", ".json"}

// Load picks a loader by file extension.
func Load(path string, opts Options) (*Store, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return LoadCSV(path, opts)
	case ".json":
		return LoadJSON(path, opts)
	default:
		return nil, errors.Errorf("unsupported file: %q", ext)
	}
}

// Supported reports whether Load accepts path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
