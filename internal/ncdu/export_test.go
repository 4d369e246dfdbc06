package ncdu

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ncdu-import/internal/tree"
)

const header = `[1,2,{"progname":"ncdu-import","progver":"1.0","timestamp":1699656086},`

func marshalRoot(t *testing.T, files []tree.SizedFile) string {
	t.Helper()
	data, err := json.Marshal(FromTree(tree.Build(files)).Root)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	return string(data)
}

func TestFromTree_EmptyInput(t *testing.T) {
	got := marshalRoot(t, nil)

	want := `[{"name":"ROOT","dsize":0}]`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFromTree_LeafPreservation(t *testing.T) {
	got := marshalRoot(t, []tree.SizedFile{{Path: "a/b", Size: 5}})

	want := `[{"name":"ROOT","dsize":0},[{"name":"a","dsize":0},{"name":"b","dsize":5}]]`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFromTree_ChildrenSortedByName(t *testing.T) {
	got := marshalRoot(t, []tree.SizedFile{
		{Path: "b", Size: 2},
		{Path: "a", Size: 1},
		{Path: "c", Size: 3},
	})

	want := `[{"name":"ROOT","dsize":0},{"name":"a","dsize":1},{"name":"b","dsize":2},{"name":"c","dsize":3}]`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFromTree_DirectoryDominance(t *testing.T) {
	for _, files := range [][]tree.SizedFile{
		{{Path: "dir", Size: 2}, {Path: "dir/file", Size: 1}},
		{{Path: "dir/file", Size: 1}, {Path: "dir", Size: 2}},
	} {
		got := marshalRoot(t, files)

		want := `[{"name":"ROOT","dsize":0},[{"name":"dir","dsize":0},{"name":"file","dsize":1}]]`
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}

func TestExport_Document(t *testing.T) {
	exp := FromTree(tree.Build([]tree.SizedFile{{Path: "x", Size: 9}}))

	data, err := Marshal(exp, false)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := header + `[{"name":"ROOT","dsize":0},{"name":"x","dsize":9}]]`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestExport_DocumentHasFourElements(t *testing.T) {
	data, err := Marshal(FromTree(tree.Build(nil)), true)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var doc []json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Indented export is not valid JSON: %v", err)
	}
	if len(doc) != 4 {
		t.Errorf("Expected 4 top-level elements, got %d", len(doc))
	}
}

func TestWrite_Indented(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FromTree(tree.Build(nil)), true); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := `[
  1,
  2,
  {
    "progname": "ncdu-import",
    "progver": "1.0",
    "timestamp": 1699656086
  },
  [
    {
      "name": "ROOT",
      "dsize": 0
    }
  ]
]
`
	if buf.String() != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWrite_Failure(t *testing.T) {
	err := Write(failingWriter{}, FromTree(tree.Build(nil)), false)
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("Expected ErrWrite, got %v", err)
	}
}

func TestSave_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "export.json")

	if err := Save(FromTree(tree.Build(nil)), path, false); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved export: %v", err)
	}
	if !strings.HasPrefix(string(data), header) {
		t.Errorf("Saved export has unexpected header: %s", data)
	}
}
