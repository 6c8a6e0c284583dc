package platform

import (
	"fmt"
	"os"
	"runtime"
)

// CreateDirSymlink creates a symbolic link at link pointing to the directory target.
// On Windows this requires developer mode or an elevated shell; the error
// says so instead of silently copying the tree.
func CreateDirSymlink(target, link string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("symlink target %s: %w", target, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("symlink target %s is not a directory", target)
	}

	if err := os.Symlink(target, link); err != nil {
		if runtime.GOOS == "windows" && !os.IsExist(err) {
			return fmt.Errorf("creating symlink %s (enable Windows developer mode or use --place-directly): %w", link, err)
		}
		return fmt.Errorf("creating symlink %s: %w", link, err)
	}
	return nil
}

// ReadSymlinkTarget returns the target of path when it is a symlink.
// The boolean is false for regular files and directories.
func ReadSymlinkTarget(path string) (string, bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", false, err
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return "", false, nil
	}
	target, err := os.Readlink(path)
	if err != nil {
		return "", true, err
	}
	return target, true, nil
}

// IsSymlinkSupported returns true if the current platform supports native symlinks.
// On Windows this attempts a test symlink to check developer mode.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	tmpDir, err := os.MkdirTemp("", "symlink-probe")
	if err != nil {
		return false
	}
	defer os.RemoveAll(tmpDir)

	link := tmpDir + string(os.PathSeparator) + "probe"
	return os.Symlink(tmpDir, link) == nil
}
