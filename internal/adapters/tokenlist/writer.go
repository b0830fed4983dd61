package tokenlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	domainlist "github.com/esssios/evm-tokenList/internal/domain/tokenlist"
)

// Writer serializes token lists to <networkKey>-tokenlist.json files.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// FilePath returns the output path for a network key.
func (w *Writer) FilePath(networkKey string) string {
	return filepath.Join(w.dir, networkKey+"-tokenlist.json")
}

// Write refreshes the list timestamp and writes the envelope as indented
// JSON, overwriting any previous file for the network. Returns the path of
// the written file.
func (w *Writer) Write(networkKey string, list *domainlist.List) (string, error) {
	if w.dir != "." {
		if err := os.MkdirAll(w.dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	path := w.FilePath(networkKey)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	list.Touch()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(list); err != nil {
		return "", fmt.Errorf("failed to write JSON: %w", err)
	}

	return path, nil
}
