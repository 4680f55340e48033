package commands

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/tinyshop/config"
	"github.com/talkincode/tinyshop/internal/catalogapi"
	"github.com/talkincode/tinyshop/internal/store"
	"github.com/talkincode/tinyshop/internal/webserver"
)

func startCatalog(t *testing.T) string {
	t.Helper()
	s := webserver.NewServer(config.WebConfig{})
	catalogapi.Register(s, catalogapi.Deps{Products: store.NewMemoryStore().Factory()})
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return ts.URL
}

func execute(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", server}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands_Lifecycle(t *testing.T) {
	server := startCatalog(t)

	out, err := execute(t, server, "create", "--name", "Tent", "--price", "19.99")
	require.NoError(t, err)
	assert.Contains(t, out, "Tent")
	assert.Contains(t, out, "19.99")

	out, err = execute(t, server, "update", "1", "--description", "Sleeps two")
	require.NoError(t, err)
	assert.Contains(t, out, "product 1 updated")

	out, err = execute(t, server, "get", "1", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Tent","description":"Sleeps two","price":19.99,"imageUrl":null}]`, out)

	out, err = execute(t, server, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "Tent")

	out, err = execute(t, server, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "product 1 deleted")

	_, err = execute(t, server, "get", "1")
	assert.Error(t, err)
	_, err = execute(t, server, "delete", "1")
	assert.Error(t, err)
}

func TestCommands_InvalidInput(t *testing.T) {
	server := startCatalog(t)

	_, err := execute(t, server, "get", "abc")
	assert.Error(t, err)

	_, err = execute(t, server, "create", "--name", "Tent", "--price", "cheap")
	assert.Error(t, err)

	_, err = execute(t, server, "update", "42", "--name", "Ghost")
	assert.Error(t, err)
}

func TestCommands_Export(t *testing.T) {
	server := startCatalog(t)

	_, err := execute(t, server, "create", "--name", "Tent", "--price", "19.99", "--image", "/images/tent.png")
	require.NoError(t, err)
	_, err = execute(t, server, "create", "--name", "Lantern", "--price", "-0.5")
	require.NoError(t, err)

	out, err := execute(t, server, "export")
	require.NoError(t, err)
	assert.Equal(t,
		"id,name,description,price,image_url\n1,Tent,,19.99,/images/tent.png\n2,Lantern,,-0.5,\n",
		out)

	file := filepath.Join(t.TempDir(), "products.csv")
	_, err = execute(t, server, "export", "--out", file)
	require.NoError(t, err)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}
