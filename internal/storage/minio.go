package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient archiva los originales de las planillas importadas, para
// poder auditar una importación después del hecho.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	minioCfg := cfg.MinIO
	client, err := minio.New(minioCfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioCfg.AccessKey, minioCfg.SecretKey, ""),
		Secure: minioCfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, minioCfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, minioCfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Printf("Bucket %s created successfully", minioCfg.Bucket)
	}

	return &MinIOClient{
		client: client,
		bucket: minioCfg.Bucket,
	}, nil
}

// ArchivarPlanilla guarda el original bajo importaciones/<fecha>/<nombre>.
func (m *MinIOClient) ArchivarPlanilla(ctx context.Context, nombre string, contenido io.Reader, tamano int64) (string, error) {
	objectKey := fmt.Sprintf("importaciones/%s/%s", time.Now().Format("2006-01-02"), nombre)
	_, err := m.client.PutObject(ctx, m.bucket, objectKey, contenido, tamano, minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to archive spreadsheet: %w", err)
	}
	return objectKey, nil
}

// DescartarPlanilla retira un original archivado; se usa cuando el
// archivo subido resultó ilegible y no aporta nada al registro de
// auditoría.
func (m *MinIOClient) DescartarPlanilla(ctx context.Context, objectKey string) error {
	return m.client.RemoveObject(ctx, m.bucket, objectKey, minio.RemoveObjectOptions{})
}
