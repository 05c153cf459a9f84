package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"my resume.pdf", "my_resume.pdf"},
		{"  spaced out .pdf ", "spaced_out_.pdf"},
		{"../../etc/passwd", "....etcpasswd"},
		{"cv (final) v2!.pdf", "cv_final_v2.pdf"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CleanFileName(tc.in), "in %q", tc.in)
	}
}

func TestUniqueFilePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cvs")

	first, err := UniqueFilePath(dir, "resume.pdf")
	require.NoError(t, err)
	second, err := UniqueFilePath(dir, "resume.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, "_resume.pdf"))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUserDirs(t *testing.T) {
	assert.Equal(t, filepath.Join("base", "users", "7", "cvs"), UserCVDir("base", 7))
	assert.Equal(t, filepath.Join("base", "users", "7", "reports"), UserReportDir("base", 7))
}

func TestRemoveFileIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, RemoveFileIfExists(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Missing files and empty paths are not errors.
	assert.NoError(t, RemoveFileIfExists(path))
	assert.NoError(t, RemoveFileIfExists(""))
}
