package files

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "voice-enhancer/internal/app/errors"
)

// DefaultAudioExt is used when an upload carries no usable extension.
// Browser recorders produce webm.
const DefaultAudioExt = ".webm"

// StageUpload copies src into dir under a fresh unique name that keeps the
// original file's extension, and returns the staged path. The caller owns
// the file and must remove it.
func StageUpload(dir, originalName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}

	path := filepath.Join(dir, uuid.NewString()+AudioExt(originalName))
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}
	return path, nil
}

// AudioExt returns the lower-cased extension of name, or DefaultAudioExt.
// The speech-to-text provider detects the container from the extension.
func AudioExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if ext == "" || ext == "." || len(ext) > 6 {
		return DefaultAudioExt
	}
	return ext
}

// RemoveIfExists deletes path; a file that is already gone is not an error.
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
