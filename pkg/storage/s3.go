package storage

import (
	"io"
	"mime"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"videoshare/pkg/logger"
)

// S3Store uploads objects to a single S3 bucket.
type S3Store struct {
	uploader *s3manager.Uploader
	bucket   string
}

func NewS3Store(region, bucket string) (*S3Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	return &S3Store{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
	}, nil
}

func (s *S3Store) Put(name string, body io.Reader) (string, error) {
	// Determine the object's MIME type from its extension
	contentType := mime.TypeByExtension(filepath.Ext(name))

	result, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Warning("failed to upload object to S3: ", err)
		return "", err
	}

	return result.Location, nil
}
