package ncdu

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrWrite wraps failures writing the export.
var ErrWrite = errors.New("write failed")

// Marshal encodes e, indented with two spaces when indent is set.
func Marshal(e Export, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(e, "", "  ")
	}
	return json.Marshal(e)
}

// Write encodes e to w followed by a newline.
func Write(w io.Writer, e Export, indent bool) error {
	data, err := Marshal(e, indent)
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Save writes e to path, creating parent directories as needed.
func Save(e Export, path string, indent bool) error {
	data, err := Marshal(e, indent)
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %v", ErrWrite, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
