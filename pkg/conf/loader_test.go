package conf

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/tunectl/pkg/sysctl"
)

func writeConf(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testLoader(dirs ...string) *Loader {
	return &Loader{
		Dirs: dirs,
		Log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestLoadNormalizesNamesAndKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeConf(t, dir, "10-base.conf", `
# forwarding
net.ipv4.ip_forward = 1
kernel.panic = 10

; semicolon comments too
vm.swappiness = 60
`)

	l := testLoader()
	entries, err := l.Load([]string{path})
	require.NoError(t, err)

	want := []sysctl.Entry{
		{Name: "net/ipv4/ip_forward", Value: "1"},
		{Name: "kernel/panic", Value: "10"},
		{Name: "vm/swappiness", Value: "60"},
	}
	assert.Equal(t, want, entries)
}

func TestLoadOverlayLastValueWins(t *testing.T) {
	dir := t.TempDir()
	a := writeConf(t, dir, "10-a.conf", "net.ipv4.ip_forward = 0\nkernel.panic = 10\n")
	b := writeConf(t, dir, "20-b.conf", "net.ipv4.ip_forward = 1\n")

	l := testLoader()
	entries, err := l.Load([]string{a, b})
	require.NoError(t, err)

	// The overridden name keeps its first-seen position.
	require.Len(t, entries, 2)
	assert.Equal(t, sysctl.Entry{Name: "net/ipv4/ip_forward", Value: "1"}, entries[0])
	assert.Equal(t, sysctl.Entry{Name: "kernel/panic", Value: "10"}, entries[1])
}

func TestLoadSlashFormNamesPassThrough(t *testing.T) {
	dir := t.TempDir()
	path := writeConf(t, dir, "10-slash.conf", "net/ipv4/ip_forward = 1\n")

	l := testLoader()
	entries, err := l.Load([]string{path})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "net/ipv4/ip_forward", entries[0].Name)
}

func TestLoadParseErrorContinues(t *testing.T) {
	dir := t.TempDir()
	bad := writeConf(t, dir, "10-bad.conf", "this line has no delimiter\n")
	good := writeConf(t, dir, "20-good.conf", "kernel.panic = 10\n")

	l := testLoader()
	entries, err := l.Load([]string{bad, good})

	// The malformed source fails the run but not the remaining sources.
	require.Error(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kernel/panic", entries[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	l := testLoader()
	_, err := l.Load([]string{filepath.Join(t.TempDir(), "absent.conf")})
	require.Error(t, err)
}

func TestFilesExplicitArgs(t *testing.T) {
	l := testLoader()
	files, err := l.Files([]string{"b.conf", "a.conf"})
	require.NoError(t, err)
	// Explicit sources are used as given, order preserved.
	assert.Equal(t, []string{"b.conf", "a.conf"}, files)
}

func TestFilesDropInDiscovery(t *testing.T) {
	etc := t.TempDir()
	lib := t.TempDir()

	writeConf(t, etc, "50-override.conf", "")
	writeConf(t, lib, "50-override.conf", "")
	writeConf(t, lib, "10-defaults.conf", "")
	writeConf(t, etc, "99-local.conf", "")
	writeConf(t, etc, "README", "") // not a .conf file

	l := testLoader(etc, lib, filepath.Join(etc, "does-not-exist"))
	files, err := l.Files(nil)
	require.NoError(t, err)

	want := []string{
		filepath.Join(lib, "10-defaults.conf"),
		filepath.Join(etc, "50-override.conf"), // earlier dir shadows later
		filepath.Join(etc, "99-local.conf"),
	}
	assert.Equal(t, want, files)
}
