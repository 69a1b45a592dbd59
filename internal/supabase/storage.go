package supabase

import (
	"bytes"
	"fmt"
	"math/rand"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	// Ensure URL doesn't have trailing slash
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadAsset pushes the file bytes to the bucket and returns the storage
// path and public URL. The stored object name mirrors the original app:
// <timestamp>_<random>.<ext> under a per-user, per-session prefix.
func (s *StorageClient) UploadAsset(userID uuid.NullUUID, sessionID, filename, contentType string, data []byte) (string, string, error) {
	owner := "anonymous"
	if userID.Valid {
		owner = userID.UUID.String()
	}
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	objectName := fmt.Sprintf("%d_%s.%s", time.Now().UnixMilli(), randomSuffix(7), ext)
	storagePath := fmt.Sprintf("users/%s/sessions/%s/%s", owner, sessionID, objectName)

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	upsert := false
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	return storagePath, s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DeleteFile(storagePath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	return err
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
