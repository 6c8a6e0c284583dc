package boilerplate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// extraction records every path it creates so a failed extraction can be
// rolled back. Paths that existed beforehand are never recorded.
type extraction struct {
	root    string
	created []string
}

// Extract unpacks every entry of the zip archive at archivePath into destRoot.
// Opening failures wrap ErrOpenArchive; failures after the archive was opened
// wrap ErrExtract and leave nothing the extraction created behind.
func (u *Unpacker) Extract(archivePath, destRoot string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("%w: opening zip archive: %v", ErrOpenArchive, err)
	}
	defer r.Close()

	x := &extraction{root: destRoot}
	for _, f := range r.File {
		if err := x.entry(f); err != nil {
			x.rollback()
			return fmt.Errorf("%w: %v", ErrExtract, err)
		}
	}

	u.logger.Debug("extracted archive", "entries", len(r.File), "root", destRoot, "created", len(x.created))
	return nil
}

func (x *extraction) entry(f *zip.File) error {
	name := filepath.FromSlash(f.Name)
	if !filepath.IsLocal(name) {
		return fmt.Errorf("entry %q escapes the destination directory", f.Name)
	}
	target := filepath.Join(x.root, name)

	mode := f.Mode()
	switch {
	case mode.IsDir():
		return x.mkdir(target)
	case mode&os.ModeSymlink != 0:
		return fmt.Errorf("entry %q is a symbolic link", f.Name)
	}

	if err := x.mkdir(filepath.Dir(target)); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening zip entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	if _, err := os.Lstat(target); os.IsNotExist(err) {
		x.created = append(x.created, target)
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm()|0600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("extracting %s: %w", f.Name, err)
	}
	return out.Close()
}

// mkdir creates dir and its missing parents, recording the outermost one it creates.
func (x *extraction) mkdir(dir string) error {
	var missing string
	for p := dir; p != x.root && p != filepath.Dir(p); p = filepath.Dir(p) {
		if _, err := os.Lstat(p); err == nil {
			break
		}
		missing = p
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if missing != "" {
		x.created = append(x.created, missing)
	}
	return nil
}

func (x *extraction) rollback() {
	for i := len(x.created) - 1; i >= 0; i-- {
		os.RemoveAll(x.created[i]) // best-effort
	}
}
