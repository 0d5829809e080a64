// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
// # Features
//
//   - Range reads for partial fetches
//   - Multipart uploads for large result files
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
