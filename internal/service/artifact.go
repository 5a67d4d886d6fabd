// internal/service/artifact.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ArtifactStore は復習テストのプリント用アーティファクト（PDF）への参照を扱います。
// PDFの生成自体は外部コラボレータの責務で、ここではキーの発行と
// ダウンロードURLの署名のみを行います。
type ArtifactStore interface {
	// ObjectKey はテストに対応するアーティファクトの格納キーを返します
	ObjectKey(testID uuid.UUID) string
	// PresignGet はダウンロード用の署名付きURLを発行します
	PresignGet(ctx context.Context, key string) (string, error)
}

// noopArtifactStore はローカル開発用のダミー実装です
type noopArtifactStore struct{}

// NewNoopArtifactStore はS3が無効な環境向けのArtifactStoreを返します
func NewNoopArtifactStore() ArtifactStore {
	return &noopArtifactStore{}
}

func (s *noopArtifactStore) ObjectKey(testID uuid.UUID) string {
	return fmt.Sprintf("review-tests/%s.pdf", testID)
}

func (s *noopArtifactStore) PresignGet(ctx context.Context, key string) (string, error) {
	// ローカルではURLを発行しない
	return "", nil
}
