package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const housing = `price,area,bedrooms,stories,furnishingstatus
1000000,100,2,1,furnished
1500000,300,3,2,semi-furnished
5000000,300,4,2,unfurnished
1200000,500,2,3,furnished
1200000,250,3,2,furnished
`

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rc := NewRootCommand(strings.NewReader(""), &out, &out)
	rc.SetArgs(args)
	err := rc.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestRootHelp(t *testing.T) {
	out, err := execRoot(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Available Commands:")
	assert.Contains(t, out, "resolve")
	assert.Contains(t, out, "--click-radius")
}

func TestConfigPriority(t *testing.T) {
	file := writeFile(t, "linkview.toml", `
split = 70
x = "stories"
dimensions = ["price", "stories"]
`)
	t.Setenv("LINKVIEW_SPLIT", "40")
	t.Setenv("LINKVIEW_Y", "area")

	out, err := execRoot(t, "config", "-c", file, "--x", "bedrooms")
	require.NoError(t, err)
	assert.Contains(t, out, `x = "bedrooms"`)
	assert.Contains(t, out, `y = "area"`)
	assert.Contains(t, out, "split = 40")
	assert.Contains(t, out, `"stories"`)
	assert.Contains(t, out, `"rooms=bedrooms"`)
}

func TestConfigRejects(t *testing.T) {
	_, err := execRoot(t, "config", "--split", "95")
	assert.Error(t, err)

	file := writeFile(t, "bad.toml", "zoom = 3\n")
	_, err = execRoot(t, "config", "-c", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option")
}

func TestResolve(t *testing.T) {
	data := writeFile(t, "housing.csv", housing)

	out, err := execRoot(t, "resolve", "-d", data, "-r", "price=1000000:2000000", "-r", "area=200:400", "--columns", "price,area")
	require.NoError(t, err)
	assert.Contains(t, out, "1500000")
	assert.Contains(t, out, "1200000")
	assert.NotContains(t, out, "5000000")
	assert.Contains(t, out, "2 records selected")

	out, err = execRoot(t, "resolve", "-d", data)
	require.NoError(t, err)
	assert.Equal(t, "0 records selected\n", out)

	out, err = execRoot(t, "resolve", "-d", data, "--pick", "2", "--columns", "price")
	require.NoError(t, err)
	assert.Contains(t, out, "5000000")
	assert.Contains(t, out, "1 record selected")

	// the alias is an attribute of its own
	out, err = execRoot(t, "resolve", "-d", data, "-r", "rooms=4:4")
	require.NoError(t, err)
	assert.Contains(t, out, "1 record selected")
}

func TestResolveErrors(t *testing.T) {
	data := writeFile(t, "housing.csv", housing)
	for _, args := range [][]string{
		{"resolve"},
		{"resolve", "-d", data, "--pick", "9"},
		{"resolve", "-d", data, "-r", "furnishingstatus=1:2"},
		{"resolve", "-d", data, "-r", "price"},
		{"resolve", "-d", data, "--pick", "1", "-r", "price=1e6:2e6"},
		{"resolve", "-d", filepath.Join(t.TempDir(), "missing.csv")},
	} {
		_, err := execRoot(t, args...)
		assert.Error(t, err, "%v", args)
	}
}
