package schemas

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	files, err := fs.Glob(Migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	contents, err := fs.ReadFile(Migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(contents), "CREATE TABLE IF NOT EXISTS lookup_entries")
}
