package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rithikkrisna/wificreds/internal/creds"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadTable_YAML(t *testing.T) {
	path := writeFile(t, "credentials.yaml", `
credentials:
  - name: home
    ssid: MyHomeWiFi
    password: HomePassword123
  - name: office
    ssid: OfficeNetwork
    password: OfficePassword456
`)

	table, err := LoadTable(path, newTestLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, table.Count())

	name, ok := table.DefaultName()
	require.True(t, ok)
	assert.Equal(t, "home", name)

	ssid, ok := table.SSID("office")
	require.True(t, ok)
	assert.Equal(t, "OfficeNetwork", ssid)
}

func TestLoadTable_JSON(t *testing.T) {
	path := writeFile(t, "credentials.json", `{
  "credentials": [
    {"name": "guest", "ssid": "GuestWiFi", "password": "GuestPassword789"}
  ]
}`)

	table, err := LoadTable(path, newTestLogger())
	require.NoError(t, err)

	assert.Equal(t, 1, table.Count())
	assert.True(t, table.Has("guest"))
}

func TestLoadTable_EmptyFile(t *testing.T) {
	path := writeFile(t, "credentials.yaml", "credentials: []\n")

	table, err := LoadTable(path, newTestLogger())
	require.NoError(t, err)

	assert.Equal(t, 0, table.Count())
	assert.False(t, table.IsValid(""))
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.yaml"), newTestLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not readable")
}

func TestLoadTable_EmptyPath(t *testing.T) {
	_, err := LoadTable("", newTestLogger())
	require.Error(t, err)
}

func TestLoadTable_MalformedYAML(t *testing.T) {
	path := writeFile(t, "credentials.yaml", "credentials: [oops\n")

	_, err := LoadTable(path, newTestLogger())
	require.Error(t, err)
}

func TestLoadTable_DuplicateNamesFirstWins(t *testing.T) {
	path := writeFile(t, "credentials.yaml", `
credentials:
  - name: home
    ssid: FirstHome
    password: first
  - name: home
    ssid: SecondHome
    password: second
`)

	table, err := LoadTable(path, newTestLogger())
	require.NoError(t, err)

	ssid, ok := table.SSID("home")
	require.True(t, ok)
	assert.Equal(t, "FirstHome", ssid)
}

func TestLoadTable_AtCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("credentials:\n")
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&b, "  - name: net-%d\n    ssid: ssid-%d\n    password: secret\n", i, i)
	}
	path := writeFile(t, "credentials.yaml", b.String())

	table, err := LoadTable(path, newTestLogger())
	require.NoError(t, err)
	assert.Equal(t, 1000, table.Count())
}

func TestLoadTable_TooLarge(t *testing.T) {
	var b strings.Builder
	b.WriteString("credentials:\n")
	for i := 0; i < 1001; i++ {
		fmt.Fprintf(&b, "  - name: net-%d\n    ssid: ssid-%d\n    password: secret\n", i, i)
	}
	path := writeFile(t, "credentials.yaml", b.String())

	_, err := LoadTable(path, newTestLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, creds.ErrTableTooLarge)
}
