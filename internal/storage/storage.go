package storage

import (
	"context"
	"errors"
	"io"
)

// ErrExists is returned when the object name is already taken. Uploaders never overwrite.
var ErrExists = errors.New("storage: object already exists")

type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

