package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"create books table", "create_books_table"},
		{"Create-Books-Table", "create_books_table"},
		{"CREATE_BOOKS_TABLE", "create_books_table"},
		{"create__books__table", "create_books_table"},
		{"Create Salespeople 2", "create_salespeople_2"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	tmpDir := t.TempDir()

	mf, err := CreateMigration(tmpDir, "create books table")
	require.NoError(t, err)
	require.NotNil(t, mf)

	// Version format is YYYYMMDDHHMMSS
	assert.Len(t, mf.Version, 14)

	assert.True(t, strings.HasSuffix(mf.UpPath, ".up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, ".down.sql"))

	upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)
	assert.Contains(t, upBase, "create_books_table")

	assert.FileExists(t, mf.UpPath)
	assert.FileExists(t, mf.DownPath)

	content, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "create books table")
}

func TestListMigrations(t *testing.T) {
	t.Run("missing directory yields empty list", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})

	t.Run("lists up migrations once", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{
			"0001_create_books.up.sql",
			"0001_create_books.down.sql",
			"0002_create_salespeople.up.sql",
			"0002_create_salespeople.down.sql",
			"README.md",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("--"), 0644))
		}

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"0001_create_books", "0002_create_salespeople"}, migrations)
	})
}
