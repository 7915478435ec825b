package files

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/enttest"
	"github.com/agencydesk/agencydesk/ent/file"
	"github.com/agencydesk/agencydesk/ent/user"

	_ "github.com/mattn/go-sqlite3"
)

// stubStore fakes object storage and records deletions.
type stubStore struct {
	deleted []string
}

func (s *stubStore) PresignUpload(_ context.Context, key, _ string) (string, error) {
	return "https://storage.example.com/upload/" + key, nil
}

func (s *stubStore) PresignDownload(_ context.Context, key string) (string, error) {
	return "https://storage.example.com/download/" + key, nil
}

func (s *stubStore) DeleteObject(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func setupTestService(t *testing.T) (*Service, *ent.Client, *stubStore) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	store := &stubStore{}
	return NewService(client, store), client, store
}

func createUploader(t *testing.T, client *ent.Client) *ent.User {
	u, err := client.User.Create().
		SetFullName("emp").
		SetUsername("emp").
		SetEmail("emp@example.com").
		SetRole(user.RoleEmployee).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestNewUploadURL(t *testing.T) {
	service, client, _ := setupTestService(t)
	defer client.Close()

	resp, err := service.NewUploadURL(context.Background(), UploadURLRequest{
		FileName:   "mockup.png",
		FileType:   "image/png",
		EntityType: EntityTask,
		EntityID:   7,
	})
	require.NoError(t, err)

	assert.Contains(t, resp.UploadURL, resp.StorageKey)
	assert.Contains(t, resp.StorageKey, "task/7/")
	assert.Contains(t, resp.StorageKey, ".png")
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestRegisterAndGetFile(t *testing.T) {
	service, client, _ := setupTestService(t)
	defer client.Close()

	uploader := createUploader(t, client)

	f, err := service.RegisterFile(context.Background(), uploader.ID, "task/7/abc.png", RegisterFileRequest{
		FileName:   "mockup.png",
		FileType:   "image/png",
		FileSize:   2048,
		EntityType: EntityTask,
		EntityID:   7,
	})
	require.NoError(t, err)
	assert.Equal(t, uploader.ID, f.UploadedBy)
	assert.Empty(t, f.DownloadURL)

	got, err := service.GetFile(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, "task/7/abc.png", got.StorageKey)
	assert.Equal(t, "https://storage.example.com/download/task/7/abc.png", got.DownloadURL)
}

func TestRegisterFile_Validation(t *testing.T) {
	service, client, _ := setupTestService(t)
	defer client.Close()

	uploader := createUploader(t, client)

	_, err := service.RegisterFile(context.Background(), uploader.ID, "k", RegisterFileRequest{
		FileName:   "mockup.png",
		EntityType: "invoice",
		EntityID:   1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entity type")

	_, err = service.RegisterFile(context.Background(), uploader.ID, "", RegisterFileRequest{
		FileName:   "mockup.png",
		EntityType: EntityTask,
		EntityID:   1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage key is required")
}

func TestListFiles_ScopedToEntity(t *testing.T) {
	service, client, _ := setupTestService(t)
	defer client.Close()

	uploader := createUploader(t, client)

	_, err := service.RegisterFile(context.Background(), uploader.ID, "task/1/a.png", RegisterFileRequest{
		FileName: "a.png", EntityType: EntityTask, EntityID: 1,
	})
	require.NoError(t, err)
	_, err = service.RegisterFile(context.Background(), uploader.ID, "task/2/b.png", RegisterFileRequest{
		FileName: "b.png", EntityType: EntityTask, EntityID: 2,
	})
	require.NoError(t, err)

	list, err := service.ListFiles(context.Background(), EntityTask, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a.png", list[0].FileName)
}

func TestCopyFileToEntity_SharesStorageKey(t *testing.T) {
	service, client, _ := setupTestService(t)
	defer client.Close()

	uploader := createUploader(t, client)

	src, err := service.RegisterFile(context.Background(), uploader.ID, "task/1/a.png", RegisterFileRequest{
		FileName: "a.png", FileSize: 512, EntityType: EntityTask, EntityID: 1,
	})
	require.NoError(t, err)

	cp, err := service.CopyFileToEntity(context.Background(), src.ID, EntitySubmission, 9, uploader.ID)
	require.NoError(t, err)
	assert.NotEqual(t, src.ID, cp.ID)
	assert.Equal(t, src.StorageKey, cp.StorageKey)
	assert.Equal(t, EntitySubmission, cp.EntityType)
	assert.Equal(t, 9, cp.EntityID)

	_, err = service.CopyFileToEntity(context.Background(), src.ID, "invoice", 9, uploader.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entity type")
}

func TestDeleteFile_SoftDelete(t *testing.T) {
	service, client, store := setupTestService(t)
	defer client.Close()

	uploader := createUploader(t, client)

	f, err := service.RegisterFile(context.Background(), uploader.ID, "task/1/a.png", RegisterFileRequest{
		FileName: "a.png", EntityType: EntityTask, EntityID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteFile(context.Background(), f.ID))

	// Hidden from reads, but the row and object are still there.
	_, err = service.GetFile(context.Background(), f.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	list, err := service.ListFiles(context.Background(), EntityTask, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, store.deleted)

	// Double delete reports not found.
	err = service.DeleteFile(context.Background(), f.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestPurgeDeleted(t *testing.T) {
	service, client, store := setupTestService(t)
	defer client.Close()

	uploader := createUploader(t, client)

	lone, err := service.RegisterFile(context.Background(), uploader.ID, "task/1/lone.png", RegisterFileRequest{
		FileName: "lone.png", EntityType: EntityTask, EntityID: 1,
	})
	require.NoError(t, err)

	shared, err := service.RegisterFile(context.Background(), uploader.ID, "task/1/shared.png", RegisterFileRequest{
		FileName: "shared.png", EntityType: EntityTask, EntityID: 1,
	})
	require.NoError(t, err)
	_, err = service.CopyFileToEntity(context.Background(), shared.ID, EntitySubmission, 9, uploader.ID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteFile(context.Background(), lone.ID))
	require.NoError(t, service.DeleteFile(context.Background(), shared.ID))

	// Nothing is old enough yet.
	purged, err := service.PurgeDeleted(context.Background(), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, purged)

	purged, err = service.PurgeDeleted(context.Background(), time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, purged)

	// The lone object is gone; the shared key stays because the copy on the
	// submission is still live.
	assert.Equal(t, []string{"task/1/lone.png"}, store.deleted)

	remaining, err := client.File.Query().Where(file.DeletedAtNotNil()).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, remaining)
}
