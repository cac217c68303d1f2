package storage

import (
	"context"
	"errors"
	"io"
)

// ErrUploaderDisabled is returned by the no-op uploader installed when no
// object storage is configured.
var ErrUploaderDisabled = errors.New("media uploads are not configured")

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

type disabledUploader struct{}

// Disabled returns an uploader that rejects every upload. Entity image
// fields still work: they just hold whatever URL the caller supplies.
func Disabled() FileUploader {
	return disabledUploader{}
}

func (disabledUploader) Upload(context.Context, string, string, io.Reader) (*UploadResult, error) {
	return nil, ErrUploaderDisabled
}

func (disabledUploader) Delete(context.Context, string) error {
	return ErrUploaderDisabled
}

func (disabledUploader) GetPublicURL(string) string {
	return ""
}
