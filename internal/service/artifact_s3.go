// internal/service/artifact_s3.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"smart_exam/internal/config"
	"smart_exam/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3ArtifactStore は AWS S3 上のアーティファクトに署名付きURLを発行する実装です
type S3ArtifactStore struct {
	presigner *s3.PresignClient
	cfg       *config.S3Config
}

// NewS3ArtifactStore は設定に応じて認証方法を切り替えてS3クライアントを生成します
func NewS3ArtifactStore(cfg *config.Config) ArtifactStore {
	var awsCfgOpts []func(*awsconfig.LoadOptions) error
	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(cfg.S3.Region))

	switch cfg.S3.AuthType {
	case "static_credentials":
		slog.Info("Configuring S3 with static credentials.")
		if cfg.S3.AccessKeyID == "" || cfg.S3.SecretAccessKey == "" {
			slog.Error("S3 auth_type is 'static_credentials' but access_key_id or secret_access_key is missing in config.")
			// 起動時にpanicさせることで、設定ミスに即座に気づけるようにする
			panic("missing static credentials for S3")
		}
		creds := credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))

	case "iam_role":
		slog.Info("Configuring S3 with IAM Role credentials.")

	default:
		slog.Warn("Unknown S3 auth_type specified, defaulting to IAM Role.", "type", cfg.S3.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsCfgOpts...)
	if err != nil {
		slog.Error("Failed to load AWS config for S3", "error", err)
		panic(err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3ArtifactStore{
		presigner: s3.NewPresignClient(client),
		cfg:       &cfg.S3,
	}
}

func (s *S3ArtifactStore) ObjectKey(testID uuid.UUID) string {
	return fmt.Sprintf("review-tests/%s.pdf", testID)
}

// PresignGet はGET用の署名付きURLを発行します
func (s *S3ArtifactStore) PresignGet(ctx context.Context, key string) (string, error) {
	logger := middleware.GetLogger(ctx)

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(time.Duration(s.cfg.PresignExpiry)*time.Minute))
	if err != nil {
		logger.Error("Failed to presign S3 GET", "error", err, "key", key)
		return "", fmt.Errorf("S3ArtifactStore.PresignGet: %w", err)
	}
	return req.URL, nil
}
