package grouplib_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabchain/grouplib"
)

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

const sample = `[
  {
    "generators": [[[1,2,4]],[[3,5,8]],[[7,9]]],
    "order": "18",
    "metadata": {"name": "s3-fixture"}
  },
  {
    "generators": [],
    "order": "1"
  }
]`

func TestLoadParsesGeneratorsAndOrder(t *testing.T) {
	groups, err := grouplib.Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	g0 := groups[0]
	assert.Equal(t, "18", g0.Order.String())
	assert.Equal(t, "s3-fixture", g0.Metadata["name"])
	require.Len(t, g0.Group().Generators(), 3)
	assert.Equal(t, 3, g0.Group().Generators()[0].Order())
	assert.Equal(t, 3, g0.Group().Generators()[1].Order())
	assert.Equal(t, 2, g0.Group().Generators()[2].Order())

	g1 := groups[1]
	assert.Empty(t, g1.Group().Generators())
	assert.Equal(t, "1", g1.Order.String())
}

func TestLoadRejectsMalformedGenerator(t *testing.T) {
	_, err := grouplib.Load(strings.NewReader(`[{"generators":[[[1,1]]],"order":"1"}]`))
	assert.Error(t, err)
}

func TestLoadRejectsBadOrder(t *testing.T) {
	_, err := grouplib.Load(strings.NewReader(`[{"generators":[],"order":"not-a-number"}]`))
	assert.ErrorIs(t, err, grouplib.ErrBadOrder)
}

func TestMarshalRoundTrip(t *testing.T) {
	groups, err := grouplib.Load(strings.NewReader(sample))
	require.NoError(t, err)

	data, err := json.MarshalIndent(groups, "", "  ")
	require.NoError(t, err)

	reloaded, err := grouplib.Load(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, reloaded, len(groups))
	assert.Equal(t, groups[0].Order.String(), reloaded[0].Order.String())
}

func TestLoadZipConcatenatesEntries(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("small.json")
	require.NoError(t, err)
	_, err = w.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	tmp := t.TempDir() + "/lib.zip"
	require.NoError(t, writeFile(tmp, buf.Bytes()))

	groups, err := grouplib.LoadZip(tmp)
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestLoadZipRejectsEmptyArchive(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	require.NoError(t, zw.Close())

	tmp := t.TempDir() + "/empty.zip"
	require.NoError(t, writeFile(tmp, buf.Bytes()))

	_, err := grouplib.LoadZip(tmp)
	assert.ErrorIs(t, err, grouplib.ErrNoZipEntries)
}
