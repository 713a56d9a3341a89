package bundle

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthropics/teamforge/internal/domain"
)

func testFiles() domain.FileSet {
	return domain.FileSet{
		"AGENTS.md":          "# policy\n",
		".agent/state.json":  "{}\n",
		"prompts/planner.md": "# planner\n",
	}
}

func TestWriteDir(t *testing.T) {
	dir := t.TempDir()
	files := testFiles()

	if err := WriteDir(dir, files); err != nil {
		t.Fatalf("WriteDir: %v", err)
	}

	for rel, want := range files {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", rel, data, want)
		}
	}

	// No temp files may survive.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 3 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("unexpected entries in output dir: %v", names)
	}
}

func TestWriteDir_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "AGENTS.md")
	if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := WriteDir(dir, domain.FileSet{"AGENTS.md": "new"}); err != nil {
		t.Fatalf("WriteDir: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("content = %q, want overwritten", data)
	}
}

func TestWriteZip_SortedEntries(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, testFiles()); err != nil {
		t.Fatalf("WriteZip: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}

	wantOrder := []string{".agent/state.json", "AGENTS.md", "prompts/planner.md"}
	if len(zr.File) != len(wantOrder) {
		t.Fatalf("archive has %d entries, want %d", len(zr.File), len(wantOrder))
	}
	for i, f := range zr.File {
		if f.Name != wantOrder[i] {
			t.Errorf("entry %d = %q, want %q", i, f.Name, wantOrder[i])
		}
	}

	rc, err := zr.File[1].Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if string(data) != "# policy\n" {
		t.Errorf("entry content = %q", data)
	}
}

func TestWriteZipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "bundle.zip")
	if err := WriteZipFile(path, testFiles()); err != nil {
		t.Fatalf("WriteZipFile: %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 3 {
		t.Errorf("archive has %d entries, want 3", len(zr.File))
	}
}
