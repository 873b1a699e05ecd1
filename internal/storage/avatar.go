// Package storage keeps the few files this front end owns locally. The only
// local artifact today is the optional profile image; everything else lives
// behind the backend API.
package storage

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// MaxAvatarSize is the upload ceiling for profile images.
const MaxAvatarSize = 5 << 20 // 5MB

var (
	// ErrNotImage is returned for uploads that are not image/*.
	ErrNotImage = errors.New("profile picture must be an image")
	// ErrTooLarge is returned for uploads beyond MaxAvatarSize.
	ErrTooLarge = errors.New("profile picture exceeds the 5MB limit")
)

// AvatarStore persists one profile image per user on an afero filesystem,
// so tests run against an in-memory FS.
type AvatarStore struct {
	fs  afero.Fs
	dir string
}

// NewAvatarStore creates the store rooted at dir.
func NewAvatarStore(fs afero.Fs, dir string) *AvatarStore {
	return &AvatarStore{fs: fs, dir: dir}
}

func (s *AvatarStore) path(userID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("avatar_%d", userID))
}

// Save validates and stores the uploaded image, replacing any previous one.
func (s *AvatarStore) Save(userID int64, contentType string, r io.Reader) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	// Read one byte past the limit to distinguish "exactly at" from "over".
	data, err := io.ReadAll(io.LimitReader(r, MaxAvatarSize+1))
	if err != nil {
		return fmt.Errorf("reading upload: %w", err)
	}
	if len(data) > MaxAvatarSize {
		return ErrTooLarge
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating avatar directory: %w", err)
	}
	return afero.WriteFile(s.fs, s.path(userID), data, 0o644)
}

// Load returns the stored image, or ok=false when the user has none.
func (s *AvatarStore) Load(userID int64) (data []byte, ok bool) {
	data, err := afero.ReadFile(s.fs, s.path(userID))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Remove deletes the user's image. Removing a missing image is a no-op.
func (s *AvatarStore) Remove(userID int64) error {
	err := s.fs.Remove(s.path(userID))
	if err != nil && !errors.Is(err, afero.ErrFileNotFound) {
		// afero wraps os errors inconsistently across backends.
		if exists, _ := afero.Exists(s.fs, s.path(userID)); !exists {
			return nil
		}
		return err
	}
	return nil
}
