package filestorage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	s3client "job-board-backend/s3"
)

var ErrStorageUnavailable = errors.New("хранилище файлов недоступно")

type Provider interface {
	UploadResume(ctx context.Context, resumeID uint, file []byte, contentType string) (key string, err error)
	GetFile(ctx context.Context, key string) ([]byte, error)
}

// NewInstance client может быть nil, тогда операции возвращают ErrStorageUnavailable
func NewInstance(client s3client.Provider) Provider {
	return &impl{
		s3client: client,
	}
}

type impl struct {
	s3client s3client.Provider
}

func (i impl) UploadResume(ctx context.Context, resumeID uint, file []byte, contentType string) (key string, err error) {
	if i.s3client == nil {
		return "", ErrStorageUnavailable
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key = getResumeKey(resumeID)
	err = i.s3client.PutObject(ctx, key, bytes.NewReader(file), int64(len(file)), contentType)
	if err != nil {
		return "", err
	}
	return key, nil
}

func (i impl) GetFile(ctx context.Context, key string) ([]byte, error) {
	if i.s3client == nil {
		return nil, ErrStorageUnavailable
	}
	return i.s3client.GetObject(ctx, key)
}

// каждая загрузка получает новый ключ, предыдущая версия остается в бакете
func getResumeKey(resumeID uint) string {
	return fmt.Sprintf("resumes/%d/%s", resumeID, uuid.NewString())
}
