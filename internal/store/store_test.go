package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "todo.json"))

	items := []record{}
	err := s.Load(&items)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "todo.json"))

	in := []record{{ID: 1, Title: "우유 사기"}, {ID: 2, Title: "책 읽기"}}
	require.NoError(t, s.Save(in))

	out := []record{}
	require.NoError(t, s.Load(&out))
	require.Equal(t, in, out)
}

func TestSaveOverwritesWholeDocument(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "todo.json"))

	require.NoError(t, s.Save([]record{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}))
	require.NoError(t, s.Save([]record{{ID: 3, Title: "c"}}))

	out := []record{}
	require.NoError(t, s.Load(&out))
	require.Len(t, out, 1)
	require.Equal(t, 3, out[0].ID)
}

func TestLoadMalformedDocumentFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path)
	items := []record{}
	err := s.Load(&items)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse")
}
