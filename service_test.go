package driverelay_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/driverelay"
)

// MockStorage is a mock implementation of driverelay.Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, token string, dst driverelay.Destination, content io.Reader) (driverelay.UploadedFile, error) {
	args := m.Called(ctx, token, dst, content)
	return args.Get(0).(driverelay.UploadedFile), args.Error(1)
}

func (m *MockStorage) Probe(ctx context.Context, token string) (*driverelay.FileRef, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driverelay.FileRef), args.Error(1)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestService_Upload_MissingFilePath(t *testing.T) {
	storage := new(MockStorage)
	service := driverelay.NewService(storage, "")

	_, err := service.Upload(context.Background(), "tok", driverelay.UploadRequest{})

	var valErr *driverelay.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "filePath", valErr.Field)
	storage.AssertNotCalled(t, "Upload")
}

func TestService_Upload_FileNotFound(t *testing.T) {
	storage := new(MockStorage)
	service := driverelay.NewService(storage, "")

	_, err := service.Upload(context.Background(), "tok", driverelay.UploadRequest{
		FilePath: "/missing/file.mp4",
	})

	var nfErr *driverelay.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "/missing/file.mp4", nfErr.Path)
	storage.AssertNotCalled(t, "Upload")
}

func TestService_Upload_DirectoryIsNotFound(t *testing.T) {
	storage := new(MockStorage)
	service := driverelay.NewService(storage, "")

	_, err := service.Upload(context.Background(), "tok", driverelay.UploadRequest{
		FilePath: t.TempDir(),
	})

	var nfErr *driverelay.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	storage.AssertNotCalled(t, "Upload")
}

func TestService_Upload_Success(t *testing.T) {
	path := writeTempFile(t, "clip.mp4", "video bytes")

	storage := new(MockStorage)
	expected := driverelay.UploadedFile{
		ID:             "file-id",
		Name:           "clip.mp4",
		WebViewLink:    "https://drive.google.com/file/d/file-id/view",
		WebContentLink: "https://drive.google.com/uc?id=file-id",
		MimeType:       "video/mp4",
		Size:           11,
	}
	storage.On("Upload", mock.Anything, "tok", mock.MatchedBy(func(dst driverelay.Destination) bool {
		return dst.Name == "clip.mp4" && dst.MimeType == driverelay.DefaultMimeType && dst.FolderID == ""
	}), mock.Anything).Return(expected, nil)

	service := driverelay.NewService(storage, "")
	got, err := service.Upload(context.Background(), "tok", driverelay.UploadRequest{FilePath: path})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
	storage.AssertExpectations(t)
}

func TestService_Upload_RootSentinelOmitsFolder(t *testing.T) {
	path := writeTempFile(t, "clip.mp4", "video bytes")

	storage := new(MockStorage)
	storage.On("Upload", mock.Anything, "tok", mock.MatchedBy(func(dst driverelay.Destination) bool {
		return dst.FolderID == ""
	}), mock.Anything).Return(driverelay.UploadedFile{ID: "id"}, nil)

	service := driverelay.NewService(storage, "")
	_, err := service.Upload(context.Background(), "tok", driverelay.UploadRequest{
		FilePath: path,
		FolderID: driverelay.FolderRoot,
	})

	require.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestService_Upload_ProviderErrorPassesThrough(t *testing.T) {
	path := writeTempFile(t, "clip.mp4", "video bytes")

	provErr := &driverelay.ProviderError{Status: 403, Message: "quota exceeded"}
	storage := new(MockStorage)
	storage.On("Upload", mock.Anything, "tok", mock.Anything, mock.Anything).
		Return(driverelay.UploadedFile{}, provErr)

	service := driverelay.NewService(storage, "")
	_, err := service.Upload(context.Background(), "tok", driverelay.UploadRequest{FilePath: path})

	var got *driverelay.ProviderError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 403, got.Status)
}

func TestService_CheckAuth(t *testing.T) {
	storage := new(MockStorage)
	storage.On("Probe", mock.Anything, "tok").
		Return(&driverelay.FileRef{ID: "f1", Name: "first.mp4"}, nil)

	service := driverelay.NewService(storage, "")
	ref, err := service.CheckAuth(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "f1", ref.ID)
	storage.AssertExpectations(t)
}

func TestService_CheckAuth_EmptyAccount(t *testing.T) {
	storage := new(MockStorage)
	storage.On("Probe", mock.Anything, "tok").Return(nil, nil)

	service := driverelay.NewService(storage, "")
	ref, err := service.CheckAuth(context.Background(), "tok")

	require.NoError(t, err)
	assert.Nil(t, ref)
}
