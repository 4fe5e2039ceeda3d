// Package s3bucket turns a resolved configuration into a working S3 client.
//
// This is the consumer side of cfgx: after Resolve succeeds, the three
// resolved fields become a static credentials provider and a region, and the
// resulting client is the only place the secret access key flows to.
package s3bucket

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hengadev/cfgx"
)

// BucketLister defines the listing operation used to verify resolved
// credentials (allows mocking the SDK client in tests).
type BucketLister interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

// NewClient builds an S3 client from a resolved configuration.
//
// The resolved credentials become a static provider: the client authenticates
// as exactly the identity stored in the secret, independent of whatever
// ambient credentials the environment carries.
//
// Example:
//
//	resolved, err := cfgx.Resolve(ctx, store, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := s3bucket.NewClient(resolved)
func NewClient(resolved cfgx.ResolvedConfig) *s3.Client {
	awsCfg := aws.Config{
		Region: resolved.Region(),
		Credentials: credentials.NewStaticCredentialsProvider(
			resolved.AccessKeyID(),
			resolved.SecretAccessKey(),
			"",
		),
	}
	return s3.NewFromConfig(awsCfg)
}

// Buckets lists the bucket names visible to the client's credentials.
//
// Used by cfgx-check to prove a resolved configuration actually works against
// the storage service. A semantic credential failure here (e.g. the store
// returned revoked keys) is a runtime error distinct from the resolver's
// startup taxonomy; it surfaces as the SDK error, unwrapped.
func Buckets(ctx context.Context, client BucketLister) ([]string, error) {
	result, err := client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	names := make([]string, 0, len(result.Buckets))
	for _, bucket := range result.Buckets {
		names = append(names, aws.ToString(bucket.Name))
	}
	return names, nil
}
