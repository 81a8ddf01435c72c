package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "store.toml")

	fs, err := Open(path)
	require.NoError(t, err)

	_, err = fs.Get(KeyLanguage)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, fs.Set(KeyLanguage, "ur"))
	require.NoError(t, fs.Set(KeyPhoneNumber, "+92 - 3001234567"))

	v, err := fs.Get(KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "ur", v)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.toml")

	fs, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(KeyAge, AgeAbove18))
	require.NoError(t, fs.Set(KeyDisease, "dengue"))

	reopened, err := Open(path)
	require.NoError(t, err)

	v, err := reopened.Get(KeyAge)
	require.NoError(t, err)
	assert.Equal(t, AgeAbove18, v)

	v, err = reopened.Get(KeyDisease)
	require.NoError(t, err)
	assert.Equal(t, "dengue", v)
}

func TestFileStoreRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.toml")

	fs, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(KeyAnswers, `{"diseaseId":"eyes"}`))
	require.NoError(t, fs.Remove(KeyAnswers))

	_, err = fs.Get(KeyAnswers)
	assert.ErrorIs(t, err, ErrNotFound)

	// Removal is durable too.
	reopened, err := Open(path)
	require.NoError(t, err)
	_, err = reopened.Get(KeyAnswers)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.toml")

	fs, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(KeySkinPhoto, "first"))
	require.NoError(t, fs.Set(KeySkinPhoto, "second"))

	v, err := fs.Get(KeySkinPhoto)
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestFileStoreLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	fs, err := Open(filepath.Join(dir, "store.toml"))
	require.NoError(t, err)
	require.NoError(t, fs.Set(KeyGender, "female"))

	_, err = os.Stat(filepath.Join(dir, "store.toml.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestArtifactRoundTrip(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	encoded := EncodeArtifact("image/jpeg", raw)

	mime, data, err := DecodeArtifact(encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
	assert.Equal(t, raw, data)
}

func TestDecodeArtifactRejectsPlainValues(t *testing.T) {
	_, _, err := DecodeArtifact("+92 - 3001234567")
	assert.Error(t, err)
}
