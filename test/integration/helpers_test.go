//go:build integration

package integration_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethan309/create-local-addon/internal/config"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir       string // HOME, holds ~/.local-addon/config.yaml
	AppSupportDir string // LOCAL_ADDON_APP_SUPPORT_DIR, holds the Local variants
	WorkDir       string // where add-ons are generated
	ServerURL     string // serves the boilerplate archive
}

// setupTestEnv creates isolated temp directories, serves a boilerplate
// archive and points the configuration at both through the environment.
func setupTestEnv(t *testing.T, variants ...string) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:       t.TempDir(),
		AppSupportDir: t.TempDir(),
		WorkDir:       t.TempDir(),
	}

	archive := boilerplateArchive(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/archive/master.zip" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/zip")
		w.Write(archive)
	}))
	t.Cleanup(server.Close)
	env.ServerURL = server.URL

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("LOCAL_ADDON_APP_SUPPORT_DIR", env.AppSupportDir)
	t.Setenv("LOCAL_ADDON_BOILERPLATE_URL", server.URL+"/archive/master.zip")

	for _, v := range variants {
		if err := os.MkdirAll(filepath.Join(env.AppSupportDir, v, "addons"), 0755); err != nil {
			t.Fatalf("creating %s add-ons dir: %v", v, err)
		}
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	config.Load()

	return env
}

// boilerplateArchive builds a zip shaped like the GitHub archive of the
// boilerplate repository.
func boilerplateArchive(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"clone-test-master/package.json": `{"name": "clone-test", "productName": "Clone Test", "version": "1.0.0", "main": "lib/main.js"}`,
		"clone-test-master/lib/main.js":  "module.exports = function (context) {};\n",
		"clone-test-master/README.md":    "# Clone Test\n",
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("adding %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return buf.Bytes()
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
