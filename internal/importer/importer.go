// Package importer reads file listings into tree.SizedFile records.
//
// Two layouts are supported: CSV with a header row, where the path and size
// columns are looked up by name, and the tab-separated output of `du -a -b`,
// which has no header and puts the size before the path.
package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"ncdu-import/internal/tree"
)

// Options selects the input layout.
type Options struct {
	PathColumn string
	SizeColumn string
	// DuOutput switches to headerless "<size>\t<path>" lines; the column
	// names are ignored.
	DuOutput bool
}

// Import reads every record from r. The first bad record aborts the import.
func Import(r io.Reader, opts Options) ([]tree.SizedFile, error) {
	if opts.DuOutput {
		return importDu(r)
	}
	return importCSV(r, opts)
}

func importCSV(r io.Reader, opts Options) ([]tree.SizedFile, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %q (input has no header)", ErrMissingColumn, opts.PathColumn)
	}
	if err != nil {
		return nil, readError(err)
	}
	pathIdx, err := columnIndex(header, opts.PathColumn)
	if err != nil {
		return nil, err
	}
	sizeIdx, err := columnIndex(header, opts.SizeColumn)
	if err != nil {
		return nil, err
	}
	need := max(pathIdx, sizeIdx) + 1

	var files []tree.SizedFile
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) < need {
			return nil, fmt.Errorf("line %d: %w: expected at least %d fields, got %d",
				line, ErrMalformedRow, need, len(record))
		}

		f, err := newRecord(line, record[pathIdx], record[sizeIdx], opts.SizeColumn)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, nil
}

// importDu splits each line at its first tab; everything after it is the
// path, tabs and quotes included.
func importDu(r io.Reader) ([]tree.SizedFile, error) {
	reader := bufio.NewReader(r)

	var files []tree.SizedFile
	for line := 1; ; line++ {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrIO, err)
		}
		text = strings.TrimSuffix(text, "\n")

		if text != "" {
			size, path, ok := strings.Cut(text, "\t")
			if !ok {
				return nil, fmt.Errorf("line %d: %w: expected \"<size>\\t<path>\", got %q",
					line, ErrMalformedRow, text)
			}
			f, err := newRecord(line, path, size, "size")
			if err != nil {
				return nil, err
			}
			files = append(files, f)
		}

		if err == io.EOF {
			return files, nil
		}
	}
}

func newRecord(line int, path, size, sizeName string) (tree.SizedFile, error) {
	if !utf8.ValidString(path) {
		return tree.SizedFile{}, fmt.Errorf("line %d: %w: path %q is not valid UTF-8",
			line, ErrMalformedRow, path)
	}
	n, err := parseSize(size)
	if err != nil {
		return tree.SizedFile{}, fmt.Errorf("line %d: %w: column %q: %q is not a non-negative integer",
			line, ErrInvalidSize, sizeName, size)
	}
	return tree.SizedFile{Path: path, Size: n}, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q not found in header %q", ErrMissingColumn, name, header)
}

func parseSize(s string) (int64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 63)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

func readError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("line %d: %w: %v", parseErr.Line, ErrMalformedRow, parseErr.Err)
	}
	return fmt.Errorf("%w: %v", ErrIO, err)
}
