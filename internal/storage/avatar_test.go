package storage_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScarMeireles/JuntosMais/internal/storage"
)

func TestSaveAndLoad(t *testing.T) {
	s := storage.NewAvatarStore(afero.NewMemMapFs(), "data/avatars")

	require.NoError(t, s.Save(9, "image/png", strings.NewReader("png-bytes")))

	data, ok := s.Load(9)
	require.True(t, ok)
	assert.Equal(t, []byte("png-bytes"), data)

	_, ok = s.Load(10)
	assert.False(t, ok)
}

func TestSaveRejectsNonImage(t *testing.T) {
	s := storage.NewAvatarStore(afero.NewMemMapFs(), "data/avatars")
	err := s.Save(9, "application/pdf", strings.NewReader("%PDF"))
	assert.ErrorIs(t, err, storage.ErrNotImage)
}

func TestSaveRejectsOversized(t *testing.T) {
	s := storage.NewAvatarStore(afero.NewMemMapFs(), "data/avatars")
	big := bytes.Repeat([]byte{0xFF}, storage.MaxAvatarSize+1)
	err := s.Save(9, "image/jpeg", bytes.NewReader(big))
	assert.ErrorIs(t, err, storage.ErrTooLarge)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := storage.NewAvatarStore(afero.NewMemMapFs(), "data/avatars")
	require.NoError(t, s.Save(9, "image/png", strings.NewReader("x")))

	require.NoError(t, s.Remove(9))
	_, ok := s.Load(9)
	assert.False(t, ok)

	assert.NoError(t, s.Remove(9))
}
