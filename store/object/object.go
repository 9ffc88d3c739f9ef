// Package object stores groups as empty objects in a minio bucket, the label
// as the object key and the type tag and description as user metadata. The
// bucket listing doubles as the label listing, which keeps the flat-namespace
// view aligned with how object stores present key prefixes.
package object

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.scnd.dev/open/grove/grouppath"
)

const (
	metaTypeTag     = "Typetag"
	metaDescription = "Description"
)

type Store struct {
	Client *minio.Client
	Bucket string
}

func New(client *minio.Client, bucket string) *Store {
	return &Store{
		Client: client,
		Bucket: bucket,
	}
}

// EnsureBucket creates the backing bucket when it does not exist yet.
func (r *Store) EnsureBucket(ctx context.Context) error {
	exists, err := r.Client.BucketExists(ctx, r.Bucket)
	if err != nil {
		return fmt.Errorf("unable to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := r.Client.MakeBucket(ctx, r.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("unable to create bucket: %w", err)
	}
	return nil
}

func (r *Store) ListLabels(ctx context.Context, typeTag string) ([]string, error) {
	labels := make([]string, 0)
	for object := range r.Client.ListObjects(ctx, r.Bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return nil, fmt.Errorf("unable to list objects: %w", object.Err)
		}
		if typeTag != "" {
			info, err := r.stat(ctx, object.Key)
			if err != nil {
				return nil, err
			}
			if info == nil || metaValue(info.UserMetadata, metaTypeTag) != typeTag {
				continue
			}
		}
		labels = append(labels, object.Key)
	}
	return labels, nil
}

func (r *Store) CountByLabel(ctx context.Context, label string, typeTag string) (int64, error) {
	info, err := r.stat(ctx, label)
	if err != nil {
		return 0, err
	}
	if info == nil {
		return 0, nil
	}
	if typeTag != "" && metaValue(info.UserMetadata, metaTypeTag) != typeTag {
		return 0, nil
	}
	return 1, nil
}

func (r *Store) GetByLabel(ctx context.Context, label string, typeTag string) (*grouppath.Group, error) {
	info, err := r.stat(ctx, label)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}

	group := r.group(label, info.UserMetadata)
	if typeTag != "" && (group.TypeTag == nil || *group.TypeTag != typeTag) {
		return nil, nil
	}
	return group, nil
}

func (r *Store) GetOrCreateByLabel(ctx context.Context, label string, typeTag string) (*grouppath.Group, bool, error) {
	group, err := r.GetByLabel(ctx, label, typeTag)
	if err != nil {
		return nil, false, err
	}
	if group != nil {
		return group, false, nil
	}

	metadata := map[string]string{}
	if typeTag != "" {
		metadata[metaTypeTag] = typeTag
	}
	if err := r.put(ctx, label, metadata); err != nil {
		return nil, false, err
	}
	return r.group(label, metadata), true, nil
}

func (r *Store) SetDescription(ctx context.Context, group *grouppath.Group, description string) error {
	metadata := map[string]string{
		metaDescription: description,
	}
	if group.TypeTag != nil {
		metadata[metaTypeTag] = *group.TypeTag
	}
	if err := r.put(ctx, *group.Label, metadata); err != nil {
		return err
	}
	group.Description = &description
	return nil
}

func (r *Store) Delete(ctx context.Context, group *grouppath.Group) error {
	if err := r.Client.RemoveObject(ctx, r.Bucket, *group.Label, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("unable to remove object: %w", err)
	}
	return nil
}

// stat returns nil without error when the key does not exist.
func (r *Store) stat(ctx context.Context, key string) (*minio.ObjectInfo, error) {
	info, err := r.Client.StatObject(ctx, r.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		response := minio.ToErrorResponse(err)
		if response.Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to stat object: %w", err)
	}
	return &info, nil
}

func (r *Store) put(ctx context.Context, key string, metadata map[string]string) error {
	_, err := r.Client.PutObject(ctx, r.Bucket, key, bytes.NewReader(nil), 0, minio.PutObjectOptions{
		UserMetadata: metadata,
	})
	if err != nil {
		return fmt.Errorf("unable to put object: %w", err)
	}
	return nil
}

func (r *Store) group(label string, metadata map[string]string) *grouppath.Group {
	l := label
	group := &grouppath.Group{
		Label: &l,
	}
	if tag := metaValue(metadata, metaTypeTag); tag != "" {
		group.TypeTag = &tag
	}
	if description := metaValue(metadata, metaDescription); description != "" {
		group.Description = &description
	}
	return group
}

// metaValue looks a metadata key up case-insensitively, since gateways differ
// in how they canonicalize the X-Amz-Meta header names.
func metaValue(metadata map[string]string, key string) string {
	for candidate, value := range metadata {
		if strings.EqualFold(candidate, key) {
			return value
		}
	}
	return ""
}
