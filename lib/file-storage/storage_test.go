package filestorage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type memClient struct {
	objects      map[string][]byte
	contentTypes map[string]string
}

func (m *memClient) MakeBucket(ctx context.Context) error { return nil }

func (m *memClient) PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.objects[key] = body
	m.contentTypes[key] = contentType
	return nil
}

func (m *memClient) GetObject(ctx context.Context, key string) ([]byte, error) {
	return bytes.Clone(m.objects[key]), nil
}

func TestFileStorage(t *testing.T) {
	t.Run(`upload and get resume`, func(t *testing.T) {
		client := &memClient{objects: map[string][]byte{}, contentTypes: map[string]string{}}
		storage := NewInstance(client)

		key, err := storage.UploadResume(context.TODO(), 5, []byte("cv body"), "")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(key, "resumes/5/"))
		require.Equal(t, "application/octet-stream", client.contentTypes[key])

		body, err := storage.GetFile(context.TODO(), key)
		require.NoError(t, err)
		require.Equal(t, "cv body", string(body))

		otherKey, err := storage.UploadResume(context.TODO(), 5, []byte("v2"), "application/pdf")
		require.NoError(t, err)
		require.NotEqual(t, key, otherKey)
	})

	t.Run(`storage not configured`, func(t *testing.T) {
		storage := NewInstance(nil)
		_, err := storage.UploadResume(context.TODO(), 1, []byte("x"), "")
		require.ErrorIs(t, err, ErrStorageUnavailable)
		_, err = storage.GetFile(context.TODO(), "resumes/1/x")
		require.ErrorIs(t, err, ErrStorageUnavailable)
	})
}
