package mockstorage

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/ffliq/ffliq-backend/storage"
)

type Uploader struct {
	mock.Mock
}

func (m *Uploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	args := m.Called(ctx, key, contentType, reader)
	var r *storage.UploadResult
	if args.Get(0) != nil {
		r = args.Get(0).(*storage.UploadResult)
	}
	return r, args.Error(1)
}

func (m *Uploader) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Uploader) GetPublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

var _ storage.FileUploader = (*Uploader)(nil)
