package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"beatmapper/debug"
)

var ErrEmptyFilename = errors.New("empty export filename")

// Sink receives a serializable object and the file name it should be
// delivered as.
type Sink interface {
	Export(v any, filename string) (string, error)
}

// DirSink writes exports as indented JSON files into Dir
type DirSink struct {
	Dir string
}

// Export writes v to Dir/filename and returns the written path
func (s DirSink) Export(v any, filename string) (string, error) {
	name := sanitizeFilename(filename)
	if name == "" {
		return "", ErrEmptyFilename
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	debug.Log("export", "wrote %s (%d bytes)", path, len(data))
	return path, nil
}

// ListExports returns the .json files in Dir, sorted by name
func (s DirSink) ListExports() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// sanitizeFilename removes/replaces characters that are problematic in filenames
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	name = strings.ReplaceAll(name, ":", "-")
	name = strings.ReplaceAll(name, "*", "")
	name = strings.ReplaceAll(name, "?", "")
	name = strings.ReplaceAll(name, "\"", "")
	name = strings.ReplaceAll(name, "<", "")
	name = strings.ReplaceAll(name, ">", "")
	name = strings.ReplaceAll(name, "|", "")
	return name
}
