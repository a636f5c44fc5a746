package jproperties_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/io7m-com/jproperties"
)

const sampleProperties = `# A comment line
! Another comment line
key = value
spaced   =   trimmed
colon: separated
escaped = caf\u00e9
raw = ${not.expanded}
int = 23
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.properties")
	require.NoError(t, os.WriteFile(path, []byte(sampleProperties), 0o600))

	p, err := jproperties.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "value", p["key"])
	assert.Equal(t, "trimmed", p["spaced"])
	assert.Equal(t, "separated", p["colon"])
	assert.Equal(t, "café", p["escaped"])
	assert.Equal(t, "${not.expanded}", p["raw"])
	assert.NotContains(t, p, "# A comment line")

	val, err := jproperties.GetInt(p, "int")
	require.NoError(t, err)
	assert.Equal(t, 23, val)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := jproperties.Load(filepath.Join(t.TempDir(), "nonexistent.properties"))
	assert.Error(t, err)
}

func TestLoadBytes(t *testing.T) {
	p, err := jproperties.LoadBytes([]byte("a = 1\nb = 2\n"))
	require.NoError(t, err)
	assert.Equal(t, jproperties.Properties{"a": "1", "b": "2"}, p)
}
