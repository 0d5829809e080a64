package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hupe1980/recordlink/blobstore"
	"github.com/hupe1980/recordlink/blobstore/minio"
	"github.com/hupe1980/recordlink/blobstore/s3"
)

// openLocation maps a location to a store and a blob name:
//
//	s3://bucket/dir/records.jsonl     S3 via the default AWS credential chain
//	minio://bucket/dir/records.jsonl  MinIO at cfg.MinIO.Endpoint
//	dir/records.jsonl                 local file system
func openLocation(ctx context.Context, loc string, cfg Config) (blobstore.BlobStore, string, error) {
	scheme, rest, remote := strings.Cut(loc, "://")
	if !remote {
		return blobstore.NewLocalStore(filepath.Dir(loc)), filepath.Base(loc), nil
	}

	bucket, name, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || name == "" {
		return nil, "", fmt.Errorf("location %q: want %s://bucket/key", loc, scheme)
	}

	switch scheme {
	case "s3":
		opts := []s3.Option{}
		if cfg.S3.Region != "" {
			opts = append(opts, s3.WithRegion(cfg.S3.Region))
		}
		if cfg.S3.PartSize > 0 {
			opts = append(opts, s3.WithPartSize(cfg.S3.PartSize))
		}
		store, err := s3.New(ctx, bucket, opts...)
		if err != nil {
			return nil, "", err
		}
		return store, name, nil
	case "minio":
		store, err := minio.Dial(minio.Config{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Region:    cfg.MinIO.Region,
			Secure:    cfg.MinIO.Secure,
			Bucket:    bucket,
		})
		if err != nil {
			return nil, "", err
		}
		return store, name, nil
	default:
		return nil, "", fmt.Errorf("location %q: unsupported scheme %q", loc, scheme)
	}
}
