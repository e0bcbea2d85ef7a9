package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// NewS3Client loads the default AWS configuration for region. A non-empty
// endpoint points the client at an S3-compatible store such as MinIO or
// Supabase storage.
func NewS3Client(ctx context.Context, region, endpoint string, usePathStyle bool) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = usePathStyle
	}), nil
}

// Images resolves assistant avatars stored in an S3 bucket.
type Images struct {
	client     *s3.Client
	presign    *s3.PresignClient
	bucket     string
	ttl        time.Duration
	downloader *Downloader
}

func NewImages(client *s3.Client, bucket string, ttl time.Duration, downloader *Downloader) *Images {
	return &Images{
		client:     client,
		presign:    s3.NewPresignClient(client),
		bucket:     bucket,
		ttl:        ttl,
		downloader: downloader,
	}
}

// ResolveURL returns a presigned GET URL for the object at path, or "" when
// the object does not exist.
func (i *Images) ResolveURL(ctx context.Context, path string) (string, error) {
	_, err := i.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(i.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("head object %s/%s: %w", i.bucket, path, err)
	}

	req, err := i.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(i.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(i.ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s/%s: %w", i.bucket, path, err)
	}
	return req.URL, nil
}

func (i *Images) Download(ctx context.Context, url string) ([]byte, error) {
	return i.downloader.Download(ctx, url)
}

// Encode turns downloaded image bytes into a data URL. An empty object
// encodes to a data URL with an empty payload.
func (i *Images) Encode(data []byte) (string, error) {
	return EncodeDataURL(data), nil
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}
