// Package minio provides a BlobStore backed by MinIO or any S3-compatible
// object store (Ceph, Garage, SeaweedFS).
//
// # Usage
//
//	store, err := minio.Dial(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Bucket:    "recordlink",
//	    Prefix:    "runs/",
//	})
//
// Dial requires no AWS configuration, which keeps air-gapped deployments
// simple.
package minio
