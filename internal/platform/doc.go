// Package platform isolates the OS-specific parts of the CLI: the lookup
// table that maps an operating system to its application support directory,
// and directory symlink creation. Unsupported operating systems fail loudly
// instead of resolving to an empty path.
package platform
