package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethan309/create-local-addon/internal/pipeline"
	"github.com/ethan309/create-local-addon/internal/platform"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	appSupport string
	workDir    string
}

// setupEnv isolates HOME, config and the working directory, installs Local
// under a temp application support root and serves the boilerplate archive.
func setupEnv(t *testing.T) env {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	flagBeta, flagPlaceDirectly, flagDoNotSymlink, flagDisable, flagVerbose = false, false, false, false, false
	listJSON = false

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("clone-test-master/package.json")
	require.NoError(t, err)
	_, err = w.Write([]byte(`{"name": "clone-test", "productName": "Clone Test", "version": "1.0.0", "main": "main.js"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	archive := buf.Bytes()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	t.Cleanup(server.Close)

	e := env{appSupport: t.TempDir(), workDir: t.TempDir()}
	require.NoError(t, os.MkdirAll(filepath.Join(e.appSupport, "Local", "addons"), 0755))

	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOCAL_ADDON_APP_SUPPORT_DIR", e.appSupport)
	t.Setenv("LOCAL_ADDON_BOILERPLATE_URL", server.URL+"/master.zip")
	prevDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(e.workDir))
	t.Cleanup(func() { _ = os.Chdir(prevDir) })
	return e
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCreateWithExplicitName(t *testing.T) {
	if !platform.IsSymlinkSupported() {
		t.Skip("symlinks not supported on this machine")
	}
	e := setupEnv(t)

	out, err := execute(t, "", "my-addon")
	require.NoError(t, err, out)

	dir := filepath.Join(e.workDir, "my-addon")
	assert.FileExists(t, filepath.Join(dir, "package.json"))
	assert.NoFileExists(t, filepath.Join(e.workDir, "boilerplate.zip"))

	target, isLink, err := platform.ReadSymlinkTarget(filepath.Join(e.appSupport, "Local", "addons", "my-addon"))
	require.NoError(t, err)
	assert.True(t, isLink)
	assert.Equal(t, dir, target)

	data, err := os.ReadFile(filepath.Join(e.appSupport, "Local", "enabled-addons.json"))
	require.NoError(t, err)
	var enabled map[string]bool
	require.NoError(t, json.Unmarshal(data, &enabled))
	assert.Equal(t, map[string]bool{"my-addon": true}, enabled)

	assert.Contains(t, out, "LOCAL ADDON CREATOR")
}

func TestCreatePromptsForName(t *testing.T) {
	e := setupEnv(t)

	out, err := execute(t, "\n", "--do-not-symlink")
	require.NoError(t, err, out)

	assert.DirExists(t, filepath.Join(e.workDir, "my-new-local-addon"))
	assert.Contains(t, out, "What is the name of your addon?")
	assert.NoFileExists(t, filepath.Join(e.appSupport, "Local", "enabled-addons.json"))
}

func TestCreatePlaceDirectlyDisabled(t *testing.T) {
	e := setupEnv(t)

	out, err := execute(t, "", "--place-directly", "--disable", "direct")
	require.NoError(t, err, out)

	assert.DirExists(t, filepath.Join(e.appSupport, "Local", "addons", "direct"))
	assert.NoDirExists(t, filepath.Join(e.workDir, "direct"))
	assert.NoFileExists(t, filepath.Join(e.appSupport, "Local", "enabled-addons.json"))
}

func TestCreateWithoutInstallation(t *testing.T) {
	e := setupEnv(t)
	require.NoError(t, os.RemoveAll(filepath.Join(e.appSupport, "Local")))

	out, err := execute(t, "", "my-addon")
	require.ErrorIs(t, err, pipeline.ErrSetup)
	assert.Contains(t, out, "No installations of Local found!")

	entries, err := os.ReadDir(e.workDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateRejectsExtraArgs(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "one", "two")
	require.Error(t, err)
}

func TestListJSON(t *testing.T) {
	e := setupEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(e.appSupport, "Local", "addons", "existing"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(e.appSupport, "Local", "enabled-addons.json"), []byte(`{"existing": true}`), 0644))

	out, err := execute(t, "", "list", "--json")
	require.NoError(t, err, out)

	var got listOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Local", got.Active)
	assert.Equal(t, []string{"Local"}, got.Installed)
	assert.Equal(t, []listEntry{{Name: "existing", Enabled: true}}, got.Addons)
}

func TestListNoInstallation(t *testing.T) {
	e := setupEnv(t)
	require.NoError(t, os.RemoveAll(filepath.Join(e.appSupport, "Local")))

	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No installations of Local found")
}

func TestConfigSetGet(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "config", "set", "download_timeout", "30s")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Set download_timeout = 30s")

	viper.Reset()
	out, err = execute(t, "", "config", "get", "download_timeout")
	require.NoError(t, err)
	assert.Equal(t, "30s\n", out)

	_, err = execute(t, "", "config", "set", "nope", "x")
	require.Error(t, err)
}

func TestVersionShort(t *testing.T) {
	buildVersion = "1.2.3"
	t.Cleanup(func() { buildVersion = "" })
	versionShort = true
	t.Cleanup(func() { versionShort = false })

	out, err := execute(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestListWarnsOnCorruptEnabledFile(t *testing.T) {
	e := setupEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(e.appSupport, "Local", "addons", "existing"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(e.appSupport, "Local", "enabled-addons.json"), []byte("{broken"), 0644))

	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: parsing ")
	assert.Contains(t, out, "existing")
}
