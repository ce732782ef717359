// Package objectstore implements the S3-backed object storage collaborator.
package objectstore

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"driftlens/domain"
)

var _ domain.ObjectStore = (*S3Store)(nil)

// S3Store talks to S3 or any S3-compatible object storage. Custom endpoints
// use path-style addressing.
type S3Store struct {
	client *s3.Client
}

// New creates an S3Store. With nil credentials the client relies on the
// ambient AWS configuration of the process.
func New(creds *domain.StorageCredentials) *S3Store {
	opts := s3.Options{}
	if creds != nil {
		opts.Region = creds.Region
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			creds.AccessKeyID, creds.SecretAccessKey, "",
		)
		if creds.Endpoint != "" {
			opts.BaseEndpoint = aws.String(creds.Endpoint)
			opts.UsePathStyle = true
		}
	}
	return &S3Store{client: s3.New(opts)}
}

// Upload copies a local file to bucket/key, tagging the object with metadata.
func (s *S3Store) Upload(ctx context.Context, localPath, bucket, key string, metadata map[string]string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return domain.ErrStorage("upload", localPath, err)
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:   aws.String(bucket),
		Key:      aws.String(key),
		Body:     f,
		Metadata: metadata,
	})
	if err != nil {
		return domain.ErrStorage("upload", localPath, err)
	}
	return nil
}

// ReadFirstLine streams a remote object and returns its first line, without
// the trailing newline. The body read stops as soon as a newline is seen.
func (s *S3Store) ReadFirstLine(ctx context.Context, bucket, key string) (string, error) {
	target := domain.ObjectURL(bucket, key)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", domain.ErrStorage("read", target, err)
	}
	defer out.Body.Close()

	reader := bufio.NewReader(out.Body)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", domain.ErrStorage("read", target, err)
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// Options returns a copy of the underlying client options.
func (s *S3Store) Options() s3.Options {
	return s.client.Options()
}
