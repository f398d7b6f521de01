// Package blobstore persists the device state as objects in a gocloud bucket.
// The bucket URL selects the driver: file:///path for a local directory,
// mem:// for an in-process bucket.
package blobstore

import (
	"context"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentType = "application/json"

// Store is a kv.Store backed by a blob bucket.
type Store struct {
	bucket *blob.Bucket
}

// Open opens the bucket at bucketURL. Objects are written under prefix when it
// is not empty.
func Open(ctx context.Context, bucketURL, prefix string) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", bucketURL)
	}
	if prefix != "" {
		bucket = blob.PrefixedBucket(bucket, prefix)
	}

	return &Store{bucket: bucket}, nil
}

// Get reads the object stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to read object %s", key)
	}

	return raw, true, nil
}

// Set writes value as the object under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to write object %s", key)
	}

	return nil
}

// Delete removes the objects. Missing objects are ignored.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrapf(err, "failed to delete object %s", key)
		}
	}

	return nil
}

// Close releases the bucket.
func (s *Store) Close() error {
	return errors.WithStack(s.bucket.Close())
}
