// Package aws provides AWS Secrets Manager integration for cfgx.
//
// This package implements the cfgx.SecretStore interface using AWS Secrets
// Manager, enabling a service to fetch its credential secret at startup
// instead of hardcoding keys in source.
//
// # Features
//
//   - Read-only access: the resolver never creates or updates secrets
//   - Not-found detection mapped to cfgx.ErrSecretNotFound
//   - IAM-based access control
//   - CloudTrail audit logging on the store side
//
// # Basic Usage
//
//	import (
//	    "context"
//	    "github.com/hengadev/cfgx"
//	    awssecrets "github.com/hengadev/cfgx/providers/secrets/aws"
//	)
//
//	store, err := awssecrets.NewStore(ctx, awssecrets.Config{
//	    Region: "us-east-2",
//	})
//	if err != nil {
//	    // handle error
//	}
//
//	resolved, err := cfgx.Resolve(ctx, store, cfgx.Config{
//	    SecretName: "FastAPI_S3_Credentials",
//	})
//
// # Configuration
//
// The Config struct supports multiple configuration options:
//
//	// Option 1: Specify region explicitly
//	cfg := awssecrets.Config{Region: "us-east-2"}
//
//	// Option 2: Use default AWS configuration (from env vars or AWS config file)
//	cfg := awssecrets.Config{}
//
//	// Option 3: Provide custom AWS config
//	awsCfg, _ := config.LoadDefaultConfig(ctx)
//	cfg := awssecrets.Config{AWSConfig: &awsCfg}
//
// # IAM Permissions
//
// The IAM role or user only needs read access to the one secret:
//
//	{
//	    "Version": "2012-10-17",
//	    "Statement": [
//	        {
//	            "Effect": "Allow",
//	            "Action": ["secretsmanager:GetSecretValue"],
//	            "Resource": "arn:aws:secretsmanager:region:account-id:secret:FastAPI_S3_Credentials-*"
//	        }
//	    ]
//	}
//
// # Error Handling
//
// GetSecret returns wrapped errors from the cfgx package:
//
//   - cfgx.ErrSecretNotFound: no secret exists under the requested name
//   - cfgx.ErrSecretStoreUnavailable: transport or authentication failure
//   - cfgx.ErrMalformedSecret: the secret holds binary data with no string value
//
// For more information, see https://github.com/hengadev/cfgx
package aws
