package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/wolfyek/client-gallery/internal/config"
)

// R2Storage hosts manually uploaded assets (cover images, pasted photos)
// in a Cloudflare R2 bucket. Uploads go straight from the admin's
// browser to R2 through presigned PUT URLs; the server only signs.
type R2Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewR2Storage builds the R2 client from static credentials. Returns nil
// when no credentials are configured, which disables the upload surface.
func NewR2Storage(cfg config.R2Config) *R2Storage {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.BucketName == "" {
		return nil
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized R2 client")
	return &R2Storage{
		client:        client,
		bucket:        cfg.BucketName,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// PresignUpload creates a presigned URL for uploading one asset.
func (r *R2Storage) PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	presigner := s3.NewPresignClient(r.client)
	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// PublicURL returns the stable public URL for an uploaded key.
func (r *R2Storage) PublicURL(key string) string {
	return r.publicBaseURL + "/" + key
}

// ObjectExists checks whether an upload actually landed in the bucket.
func (r *R2Storage) ObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
