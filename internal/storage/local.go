package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalUploader writes objects below a base directory on the local disk.
type LocalUploader struct {
	baseDir string
}

func NewLocalUploader(baseDir string) (*LocalUploader, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, errors.New("upload dir is empty")
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &LocalUploader{baseDir: abs}, nil
}

func (u *LocalUploader) BaseDir() string { return u.baseDir }

func (u *LocalUploader) Upload(ctx context.Context, objectName string, _ string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst, err := u.resolve(objectName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrExists, objectName)
		}
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return dst, nil
}

// resolve keeps every object inside baseDir.
func (u *LocalUploader) resolve(objectName string) (string, error) {
	clean := filepath.Clean("/" + filepath.FromSlash(objectName))
	if clean == string(filepath.Separator) {
		return "", errors.New("object name is empty")
	}
	return filepath.Join(u.baseDir, clean), nil
}
