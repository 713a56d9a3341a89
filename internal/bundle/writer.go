// Package bundle packages a generated file set for delivery: materialized
// into a directory tree or archived as a zip. It is a downstream consumer of
// the compiler's output and never reaches back into the core.
package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/anthropics/teamforge/internal/domain"
)

// WriteDir materializes the file set under root, creating subdirectories as
// needed. Each file is written to a temp file in its target directory and
// renamed into place, so a crash mid-write never leaves a half-written file
// at a final path.
func WriteDir(root string, files domain.FileSet) error {
	for _, rel := range files.Paths() {
		target := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return wrapWrite(rel, err)
		}
		if err := writeAtomic(target, []byte(files[rel])); err != nil {
			return wrapWrite(rel, err)
		}
	}
	return nil
}

func writeAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, filepath.Base(target)+".tmp*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// WriteZip archives the file set to w. Entries are emitted in sorted path
// order so the archive layout is reproducible for a fixed file set.
func WriteZip(w io.Writer, files domain.FileSet) error {
	zw := zip.NewWriter(w)
	for _, rel := range files.Paths() {
		f, err := zw.Create(rel)
		if err != nil {
			zw.Close()
			return wrapWrite(rel, err)
		}
		if _, err := f.Write([]byte(files[rel])); err != nil {
			zw.Close()
			return wrapWrite(rel, err)
		}
	}
	if err := zw.Close(); err != nil {
		return domain.WrapEngineError(domain.ErrBundleWrite.Code, "finalize archive", err)
	}
	return nil
}

// WriteZipFile archives the file set to a zip at path, writing via a temp
// file like WriteDir does.
func WriteZipFile(path string, files domain.FileSet) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wrapWrite(path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return wrapWrite(path, err)
	}
	tmpPath := tmp.Name()

	if err := WriteZip(tmp, files); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return wrapWrite(path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return wrapWrite(path, err)
	}
	return nil
}

func wrapWrite(rel string, err error) error {
	return domain.WrapEngineError(domain.ErrBundleWrite.Code, fmt.Sprintf("write %s", rel), err)
}
