package boilerplate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Materialize creates destRoot/name from src. On success the temporary
// archive is gone and the returned path is the new add-on directory.
func (u *Unpacker) Materialize(ctx context.Context, src Source, destRoot, name string) (string, error) {
	archivePath := filepath.Join(destRoot, src.archiveName())

	if src.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, src.Timeout)
		defer cancel()
	}

	if err := u.Download(ctx, src.URL, archivePath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}

	if err := u.Extract(archivePath, destRoot); err != nil {
		os.Remove(archivePath) // best-effort
		return "", err
	}
	if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
		u.logger.Warn("removing temporary archive", "path", archivePath, "error", err)
	}

	extracted := filepath.Join(destRoot, src.RootFolder)
	final := filepath.Join(destRoot, name)
	if err := rename(extracted, final); err != nil {
		os.RemoveAll(extracted) // best-effort
		return "", fmt.Errorf("%w: %v", ErrRename, err)
	}

	u.logger.Debug("materialized add-on", "path", final)
	return final, nil
}

// rename moves the extracted folder into place without ever replacing an
// existing entry.
func rename(from, to string) error {
	if from == to {
		return nil
	}
	info, err := os.Stat(from)
	if err != nil {
		return fmt.Errorf("extracted folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("extracted %s is not a directory", from)
	}
	if _, err := os.Lstat(to); err == nil {
		return fmt.Errorf("%s already exists", to)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.Rename(from, to)
}
