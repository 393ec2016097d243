package kvstore

import (
	"context"
	"os"

	"elegance/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// blobStore implements Store over a gocloud.dev blob bucket, one blob per
// key. The file driver gives the durable local snapshot the storefront
// expects; the memory driver backs tests and ephemeral runs.
type blobStore struct {
	bucket *blob.Bucket
}

// NewFileStore opens a file-backed store rooted at dir, creating the
// directory when missing.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create store directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file bucket")
	}

	return &blobStore{bucket: bucket}, nil
}

// NewMemoryStore opens an in-memory store.
func NewMemoryStore() Store {
	return &blobStore{bucket: memblob.OpenBucket(nil)}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read key %q", key)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, nil); err != nil {
		return errors.Wrapf(err, "failed to write key %q", key)
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete key %q", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
