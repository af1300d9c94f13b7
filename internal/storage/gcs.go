package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSUploader struct {
	client *gcs.Client
	bucket string
	prefix string
	public bool
}

type GCSOptions struct {
	Bucket          string
	Prefix          string // object key prefix, ex: "uploads"
	CredentialsFile string // empty uses application default credentials
	Public          bool   // grant allUsers read on each object
}

func NewGCSUploader(ctx context.Context, o GCSOptions) (*GCSUploader, error) {
	if o.Bucket == "" {
		return nil, errors.New("GCS bucket is not set")
	}
	var opts []option.ClientOption
	if o.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(o.CredentialsFile))
	}
	c, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCSUploader{client: c, bucket: o.Bucket, prefix: strings.Trim(o.Prefix, "/"), public: o.Public}, nil
}

func (u *GCSUploader) Close() error { return u.client.Close() }

func (u *GCSUploader) objectKey(objectName string) string {
	if u.prefix == "" {
		return objectName
	}
	return u.prefix + "/" + objectName
}

func (u *GCSUploader) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	key := u.objectKey(objectName)
	obj := u.client.Bucket(u.bucket).Object(key).If(gcs.Conditions{DoesNotExist: true})

	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	if !u.public {
		return fmt.Sprintf("gs://%s/%s", u.bucket, key), nil
	}

	if err := u.client.Bucket(u.bucket).Object(key).ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, key), nil
}
