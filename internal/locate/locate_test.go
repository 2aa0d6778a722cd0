package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestResolveExact(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "ゲーム.csv"))

	got, ok := Resolve(dir, "ゲーム.csv")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "ゲーム.csv"), got)
}

func TestResolveNormalizationMismatch(t *testing.T) {
	dir := t.TempDir()

	// "プログラミング" has voiced kana that decompose under NFD.
	composed := norm.NFC.String("プログラミング.csv")
	decomposed := norm.NFD.String(composed)
	require.NotEqual(t, composed, decomposed)

	touch(t, filepath.Join(dir, decomposed))
	if _, err := os.Stat(filepath.Join(dir, composed)); err == nil {
		t.Skip("filesystem normalizes names itself")
	}

	got, ok := Resolve(dir, composed)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, decomposed), got)

	// and the other way around
	dir2 := t.TempDir()
	touch(t, filepath.Join(dir2, composed))
	got, ok = Resolve(dir2, decomposed)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir2, composed), got)
}

func TestResolveMissing(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "other.csv"))

	got, ok := Resolve(dir, "キッズ.csv")
	assert.False(t, ok)
	assert.Equal(t, filepath.Join(dir, "キッズ.csv"), got)

	got, ok = Resolve(filepath.Join(dir, "no-such-dir"), "a.csv")
	assert.False(t, ok)
	assert.Equal(t, filepath.Join(dir, "no-such-dir", "a.csv"), got)
}

func TestResolvePath(t *testing.T) {
	base := t.TempDir()
	rel := filepath.Join("デジタネ", norm.NFD.String("デジタネ_キーワード.csv"))
	touch(t, filepath.Join(base, rel))

	got, ok := ResolvePath(base, "デジタネ/デジタネ_キーワード.csv")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(base, rel), got)
}
