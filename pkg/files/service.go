package files

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"time"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/file"
	"github.com/agencydesk/agencydesk/pkg/storage"
)

// Entity types a file can attach to.
const (
	EntityTask       = "task"
	EntitySubmission = "submission"
	EntityQuery      = "query"
	EntityClient     = "client"
)

var validEntityTypes = map[string]bool{
	EntityTask:       true,
	EntitySubmission: true,
	EntityQuery:      true,
	EntityClient:     true,
}

// ObjectStore is the slice of object storage the file registry needs.
// *storage.S3Service satisfies it.
type ObjectStore interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
	DeleteObject(ctx context.Context, key string) error
}

// Service tracks file metadata; bytes live in object storage.
type Service struct {
	client  *ent.Client
	storage ObjectStore
}

// NewService creates a new file service.
func NewService(client *ent.Client, store ObjectStore) *Service {
	return &Service{client: client, storage: store}
}

// RegisterFileRequest records an uploaded file against an entity.
type RegisterFileRequest struct {
	FileName   string `json:"file_name" validate:"required,min=1,max=255"`
	FileType   string `json:"file_type,omitempty" validate:"max=100"`
	FileSize   int64  `json:"file_size" validate:"min=0"`
	EntityType string `json:"entity_type" validate:"required,oneof=task submission query client"`
	EntityID   int    `json:"entity_id" validate:"required,gt=0"`
}

// UploadURLRequest asks for a presigned upload slot.
type UploadURLRequest struct {
	FileName   string `json:"file_name" validate:"required,min=1,max=255"`
	FileType   string `json:"file_type,omitempty" validate:"max=100"`
	EntityType string `json:"entity_type" validate:"required,oneof=task submission query client"`
	EntityID   int    `json:"entity_id" validate:"required,gt=0"`
}

// UploadURLResponse carries the presigned PUT URL and the storage key the
// client must register afterwards.
type UploadURLResponse struct {
	UploadURL  string `json:"upload_url"`
	StorageKey string `json:"storage_key"`
	ExpiresIn  int    `json:"expires_in_seconds"`
}

// FileResponse represents a stored file record.
type FileResponse struct {
	ID          int       `json:"id"`
	FileName    string    `json:"file_name"`
	FileType    string    `json:"file_type,omitempty"`
	FileSize    int64     `json:"file_size"`
	StorageKey  string    `json:"storage_key"`
	UploadedBy  int       `json:"uploaded_by"`
	EntityType  string    `json:"entity_type"`
	EntityID    int       `json:"entity_id"`
	DownloadURL string    `json:"download_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewUploadURL issues a presigned PUT and the storage key to register once
// the upload completes.
func (s *Service) NewUploadURL(ctx context.Context, req UploadURLRequest) (*UploadURLResponse, error) {
	key, err := newStorageKey(req.EntityType, req.EntityID, req.FileName)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.PresignUpload(ctx, key, req.FileType)
	if err != nil {
		return nil, err
	}

	return &UploadURLResponse{
		UploadURL:  url,
		StorageKey: key,
		ExpiresIn:  int(storage.PresignTTL.Seconds()),
	}, nil
}

// RegisterFile records metadata for an object already uploaded via a
// presigned URL.
func (s *Service) RegisterFile(ctx context.Context, uploadedBy int, storageKey string, req RegisterFileRequest) (*FileResponse, error) {
	if !validEntityTypes[req.EntityType] {
		return nil, fmt.Errorf("invalid entity type: %s", req.EntityType)
	}
	if storageKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}

	f, err := s.client.File.Create().
		SetFileName(req.FileName).
		SetFileType(req.FileType).
		SetFileSize(req.FileSize).
		SetStorageKey(storageKey).
		SetUploadedBy(uploadedBy).
		SetEntityType(req.EntityType).
		SetEntityID(req.EntityID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to register file: %w", err)
	}

	return toResponse(f, ""), nil
}

// GetFile loads one file record with a fresh download URL.
func (s *Service) GetFile(ctx context.Context, id int) (*FileResponse, error) {
	f, err := s.client.File.Query().
		Where(file.ID(id), file.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("file not found")
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	url, err := s.storage.PresignDownload(ctx, f.StorageKey)
	if err != nil {
		return nil, err
	}

	return toResponse(f, url), nil
}

// ListFiles returns the live files attached to an entity.
func (s *Service) ListFiles(ctx context.Context, entityType string, entityID int) ([]*FileResponse, error) {
	if !validEntityTypes[entityType] {
		return nil, fmt.Errorf("invalid entity type: %s", entityType)
	}

	fs, err := s.client.File.Query().
		Where(
			file.EntityType(entityType),
			file.EntityID(entityID),
			file.DeletedAtIsNil(),
		).
		Order(ent.Desc(file.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	responses := make([]*FileResponse, len(fs))
	for i, f := range fs {
		responses[i] = toResponse(f, "")
	}
	return responses, nil
}

// CopyFileToEntity clones a file record onto another entity. Only the
// metadata row is duplicated; both records share the same storage object.
func (s *Service) CopyFileToEntity(ctx context.Context, fileID int, entityType string, entityID int, copiedBy int) (*FileResponse, error) {
	if !validEntityTypes[entityType] {
		return nil, fmt.Errorf("invalid entity type: %s", entityType)
	}

	src, err := s.client.File.Query().
		Where(file.ID(fileID), file.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("file not found")
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	cp, err := s.client.File.Create().
		SetFileName(src.FileName).
		SetFileType(src.FileType).
		SetFileSize(src.FileSize).
		SetStorageKey(src.StorageKey).
		SetUploadedBy(copiedBy).
		SetEntityType(entityType).
		SetEntityID(entityID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}

	return toResponse(cp, ""), nil
}

// DeleteFile soft-deletes a file record. The storage object stays until the
// retention sweep, other records may still reference the same key.
func (s *Service) DeleteFile(ctx context.Context, id int) error {
	n, err := s.client.File.Update().
		Where(file.ID(id), file.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("file not found")
	}
	return nil
}

// PurgeDeleted removes file rows soft-deleted before the cutoff, deleting the
// storage object only when no live record still shares its key.
func (s *Service) PurgeDeleted(ctx context.Context, cutoff time.Time) (int, error) {
	stale, err := s.client.File.Query().
		Where(file.DeletedAtNotNil(), file.DeletedAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load deleted files: %w", err)
	}

	purged := 0
	for _, f := range stale {
		shared, err := s.client.File.Query().
			Where(
				file.StorageKey(f.StorageKey),
				file.DeletedAtIsNil(),
			).
			Exist(ctx)
		if err != nil {
			return purged, fmt.Errorf("failed to check key sharing: %w", err)
		}

		if !shared {
			if err := s.storage.DeleteObject(ctx, f.StorageKey); err != nil {
				return purged, err
			}
		}

		if err := s.client.File.DeleteOne(f).Exec(ctx); err != nil {
			return purged, fmt.Errorf("failed to purge file row: %w", err)
		}
		purged++
	}

	return purged, nil
}

func newStorageKey(entityType string, entityID int, fileName string) (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate storage key: %w", err)
	}
	return fmt.Sprintf("%s/%d/%s%s", entityType, entityID, hex.EncodeToString(b), path.Ext(fileName)), nil
}

func toResponse(f *ent.File, downloadURL string) *FileResponse {
	return &FileResponse{
		ID:          f.ID,
		FileName:    f.FileName,
		FileType:    f.FileType,
		FileSize:    f.FileSize,
		StorageKey:  f.StorageKey,
		UploadedBy:  f.UploadedBy,
		EntityType:  f.EntityType,
		EntityID:    f.EntityID,
		DownloadURL: downloadURL,
		CreatedAt:   f.CreatedAt,
	}
}
