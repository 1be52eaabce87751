package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"canteen/canteen-svc/internal/domain"
	"canteen/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type ObjectStorage interface {
	Put(ctx context.Context, r io.Reader, in domain.Upload) (domain.StoredObject, error)
	KeyOf(url string) (string, bool)
	Delete(ctx context.Context, key string) error
}

// NewObjectStorage picks the driver named by STORAGE_DRIVER.
func NewObjectStorage(ctx context.Context, cfg *config.Config) (ObjectStorage, error) {
	switch cfg.StorageDriver {
	case "", "local":
		return NewLocalObjects(cfg.LocalUploadDir, cfg.LocalUploadURLPrefix), nil
	case "s3":
		if cfg.S3Region == "" || cfg.S3Bucket == "" || cfg.S3PublicBaseURL == "" {
			return nil, fmt.Errorf("S3 config missing: S3_REGION, S3_BUCKET, S3_PUBLIC_BASE_URL required")
		}
		return NewS3Objects(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3Prefix, cfg.S3PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER: %s", cfg.StorageDriver)
	}
}

func objectExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	default:
		return ""
	}
}

type LocalObjects struct {
	BaseDir   string
	URLPrefix string
}

func NewLocalObjects(baseDir, urlPrefix string) *LocalObjects {
	return &LocalObjects{BaseDir: baseDir, URLPrefix: urlPrefix}
}

func (l *LocalObjects) Put(_ context.Context, r io.Reader, in domain.Upload) (domain.StoredObject, error) {
	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return domain.StoredObject{}, err
	}

	key := uuid.NewString() + objectExt(in.Filename)
	f, err := os.OpenFile(filepath.Join(l.BaseDir, key), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return domain.StoredObject{}, err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return domain.StoredObject{}, err
	}

	return domain.StoredObject{Key: key, URL: strings.TrimRight(l.URLPrefix, "/") + "/" + key}, nil
}

func (l *LocalObjects) KeyOf(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, strings.TrimRight(l.URLPrefix, "/")+"/")
	if !ok || key == "" || strings.Contains(key, "/") {
		return "", false
	}
	return key, true
}

func (l *LocalObjects) Delete(_ context.Context, key string) error {
	return os.Remove(filepath.Join(l.BaseDir, filepath.Base(key)))
}

type S3Objects struct {
	Client        *s3.Client
	Bucket        string
	Prefix        string
	PublicBaseURL string
}

func NewS3Objects(ctx context.Context, region, bucket, prefix, publicBaseURL string) (*S3Objects, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &S3Objects{
		Client:        s3.NewFromConfig(awsCfg),
		Bucket:        bucket,
		Prefix:        prefix,
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *S3Objects) Put(ctx context.Context, r io.Reader, in domain.Upload) (domain.StoredObject, error) {
	key := uuid.NewString() + objectExt(in.Filename)
	if s.Prefix != "" {
		key = strings.Trim(s.Prefix, "/") + "/" + key
	}

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.Bucket,
		Key:         &key,
		Body:        r,
		ContentType: &in.ContentType,
	})
	if err != nil {
		return domain.StoredObject{}, err
	}

	return domain.StoredObject{Key: key, URL: s.PublicBaseURL + "/" + key}, nil
}

func (s *S3Objects) KeyOf(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.PublicBaseURL+"/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

func (s *S3Objects) Delete(ctx context.Context, key string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.Bucket,
		Key:    &key,
	})
	return err
}
