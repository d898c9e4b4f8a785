package bq

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
)

// StatObject returns the attributes of gs://bucket/object, checking the
// source exists before a load job is submitted.
func StatObject(ctx context.Context, bucket, object string) (*storage.ObjectAttrs, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	attrs, err := client.Bucket(bucket).Object(object).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("object %s not found", GCSURI(bucket, object))
		}
		return nil, fmt.Errorf("failed to stat %s: %w", GCSURI(bucket, object), err)
	}

	return attrs, nil
}
