// Package storage implements object storage for product images on GCS.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"krishihive/config"
	"krishihive/internal/domain/service"
	"krishihive/internal/errors"

	"cloud.google.com/go/storage"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// gcsStorage implements service.ObjectStorage on a single bucket.
type gcsStorage struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the GCS-backed object storage.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.Bucket == "" {
		return nil, errors.New("storage.bucket is required")
	}

	var opts []option.ClientOption
	if params.Config.Firebase != nil && params.Config.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firebase.CredentialsPath))
	}

	client, err := storage.NewClient(params.Ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create storage client")
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://storage.googleapis.com/%s", cfg.Bucket)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("closing storage client")

			return client.Close()
		},
	})

	return &gcsStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

// Upload writes the object under the given key and returns its public URL.
func (s *gcsStorage) Upload(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		// Abandon the write; Close would otherwise commit a partial object.
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write object")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize object")
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}
