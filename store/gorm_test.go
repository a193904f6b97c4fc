package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*GormStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pos.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	return s, path
}

func TestGorm_WriteReadRoundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	want := []widget{{Name: "DVR 4-Channel", Price: 3999}}

	require.NoError(t, s.Write(KeySales, want))

	var got []widget
	s.Read(KeySales, &got)
	assert.Equal(t, want, got)
}

func TestGorm_ReadAbsentKeyLeavesFallback(t *testing.T) {
	s, _ := openTestStore(t)

	got := []widget{{Name: "fallback"}}
	s.Read("missing", &got)
	require.Len(t, got, 1)
	assert.Equal(t, "fallback", got[0].Name)
}

func TestGorm_WriteOverwrites(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Write("k", widget{Name: "old"}))
	require.NoError(t, s.Write("k", widget{Name: "new"}))

	var got widget
	s.Read("k", &got)
	assert.Equal(t, "new", got.Name)
}

func TestGorm_Remove(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Write("k", widget{Name: "x"}))
	require.NoError(t, s.Remove("k"))

	got := widget{Name: "fallback"}
	s.Read("k", &got)
	assert.Equal(t, "fallback", got.Name)
}

func TestGorm_SurvivesReopen(t *testing.T) {
	s, path := openTestStore(t)
	require.NoError(t, s.Write(KeyProducts, []widget{{Name: "persisted"}}))

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)

	var got []widget
	reopened.Read(KeyProducts, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "persisted", got[0].Name)
}

func TestGorm_CorruptValueLeavesFallbackUntouched(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.db.Save(&Record{Key: "k", Value: `[{"name":`}).Error)

	got := []widget{{Name: "fallback"}}
	s.Read("k", &got)
	require.Len(t, got, 1)
	assert.Equal(t, "fallback", got[0].Name)
}
