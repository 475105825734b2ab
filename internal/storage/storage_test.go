package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveGeneratesUniqueNamesWithExtension(t *testing.T) {
	svc, err := NewService(t.TempDir())
	require.NoError(t, err)

	first, err := svc.Save(strings.NewReader("hello"), "report.pdf")
	require.NoError(t, err)
	second, err := svc.Save(strings.NewReader("hello"), "report.pdf")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, strings.HasSuffix(first, ".pdf"))
	require.True(t, strings.HasSuffix(second, ".pdf"))

	data, err := os.ReadFile(svc.Path(first))
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}

func TestExistsAndRemove(t *testing.T) {
	svc, err := NewService(t.TempDir())
	require.NoError(t, err)

	name, err := svc.Save(strings.NewReader("bytes"), "photo.png")
	require.NoError(t, err)
	require.True(t, svc.Exists(name))

	require.NoError(t, svc.Remove(name))
	require.False(t, svc.Exists(name))

	// removing an already-missing blob is not an error
	require.NoError(t, svc.Remove(name))
}

func TestFailedWriteLeavesNoPartialFile(t *testing.T) {
	svc, err := NewService(t.TempDir())
	require.NoError(t, err)

	_, err = svc.Save(&failingReader{}, "big.bin")
	require.Error(t, err)

	entries, err := os.ReadDir(svc.Dir())
	require.NoError(t, err)
	require.Empty(t, entries)
}

type failingReader struct{}

func (*failingReader) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}
