package theme

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"toolbox/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps each preference as a small text object named prefix/key.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStore creates an ObjectStore on bucket. An empty prefix stores keys at
// the bucket root.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *ObjectStore) objectName(key string) string {
	return path.Join(s.prefix, key)
}

func (s *ObjectStore) Get(ctx context.Context, key string) (Mode, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(key), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return Automatic, nil
		}
		return "", fmt.Errorf("failed to get theme preference: %w", err)
	}
	defer obj.Close()

	// Minio reports a missing object on first read.
	data, err := io.ReadAll(io.LimitReader(obj, 64))
	if err != nil {
		if storage.IsNotFound(err) {
			return Automatic, nil
		}
		return "", fmt.Errorf("failed to read theme preference: %w", err)
	}
	return modeOrDefault(strings.TrimSpace(string(data))), nil
}

func (s *ObjectStore) Set(ctx context.Context, key string, mode Mode) error {
	body := string(mode)
	_, err := s.client.PutObject(ctx, s.bucket, s.objectName(key), strings.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		return fmt.Errorf("failed to put theme preference: %w", err)
	}
	return nil
}

func (s *ObjectStore) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.objectName(key), minio.RemoveObjectOptions{})
	if err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("failed to remove theme preference: %w", err)
	}
	return nil
}
