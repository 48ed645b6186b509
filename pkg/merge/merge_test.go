package merge

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/file"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"1.txt": "a\nb\nc\n",
		"2.txt": "only\n",
		"3.txt": "x\n\ny",
	})
	paths := []string{
		filepath.Join(dir, "1.txt"),
		filepath.Join(dir, "2.txt"),
		filepath.Join(dir, "3.txt"),
	}

	contents, err := Load(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, contents, 3)

	assert.Equal(t, Content{Name: paths[0], Length: 3, Lines: []string{"a", "b", "c"}}, contents[0])
	assert.Equal(t, Content{Name: paths[1], Length: 1, Lines: []string{"only"}}, contents[1])
	assert.Equal(t, Content{Name: paths[2], Length: 3, Lines: []string{"x", "", "y"}}, contents[2])
}

func TestLoad_Options(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"notes.txt": "# title\nkeep\n",
	})
	path := filepath.Join(dir, "notes.txt")

	contents, err := Load(context.Background(), []string{path}, file.WithSkipComments(true))
	require.NoError(t, err)
	assert.Equal(t, []Content{{Name: path, Length: 1, Lines: []string{"keep"}}}, contents)

	_, err = Load(context.Background(), []string{path}, file.WithMaxSize(4))
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidArgument))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("no inputs", func(t *testing.T) {
		_, err := Load(context.Background(), nil)
		assert.Equal(t, errors.ErrCodeInvalidArgument, errors.CodeOf(err))
	})

	t.Run("missing file", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{"1.txt": "a\n"})
		_, err := Load(context.Background(), []string{
			filepath.Join(dir, "1.txt"),
			filepath.Join(dir, "missing.txt"),
		})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
	})

	t.Run("canceled context", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{"1.txt": "a\n"})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Load(ctx, []string{filepath.Join(dir, "1.txt")})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSortByLength(t *testing.T) {
	contents := []Content{
		{Name: "long", Length: 5},
		{Name: "short-a", Length: 1},
		{Name: "mid", Length: 3},
		{Name: "short-b", Length: 1},
		{Name: "empty", Length: 0},
	}

	SortByLength(contents)

	names := make([]string, 0, len(contents))
	for _, c := range contents {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"empty", "short-a", "short-b", "mid", "long"}, names)
}

func TestWrite(t *testing.T) {
	contents := []Content{
		{Name: "2.txt", Length: 1, Lines: []string{"only"}},
		{Name: "1.txt", Length: 3, Lines: []string{"a", "", "c"}},
		{Name: "empty.txt", Length: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, contents))

	assert.Equal(t, "2.txt\n1\nonly\n1.txt\n3\na\n\nc\nempty.txt\n0\n", buf.String())
}

func TestWriteFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"1.txt": "line 1\nline 2\nline 3\n",
		"2.txt": "first\n",
	})
	paths := []string{filepath.Join(dir, "1.txt"), filepath.Join(dir, "2.txt")}

	contents, err := Load(context.Background(), paths)
	require.NoError(t, err)
	SortByLength(contents)

	out := filepath.Join(dir, "result.txt")
	require.NoError(t, WriteFile(out, contents))

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	want := paths[1] + "\n1\nfirst\n" + paths[0] + "\n3\nline 1\nline 2\nline 3\n"
	assert.Equal(t, want, string(got))
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "result.txt"), []Content{{Name: "a"}})
	assert.Equal(t, errors.ErrCodeInternal, errors.CodeOf(err))
}
