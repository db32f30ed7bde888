package driverelay

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Storage is the provider-facing interface. The drive package implements it
// against the Google Drive API; tests substitute mocks.
type Storage interface {
	// Upload streams content to the provider under the given destination
	// metadata, authenticated with token. Provider rejections come back as
	// *AuthError or *ProviderError.
	Upload(ctx context.Context, token string, dst Destination, content io.Reader) (UploadedFile, error)

	// Probe issues a minimal read-only listing call to validate token.
	// Returns the first visible file, or nil when the account is empty.
	Probe(ctx context.Context, token string) (*FileRef, error)
}

// Service implements the relay's two authenticated operations. It holds no
// per-request state; a single instance serves all requests.
type Service struct {
	storage         Storage
	defaultMimeType string
}

// NewService creates a relay service backed by storage. An empty
// defaultMimeType falls back to DefaultMimeType.
func NewService(storage Storage, defaultMimeType string) *Service {
	if defaultMimeType == "" {
		defaultMimeType = DefaultMimeType
	}
	return &Service{
		storage:         storage,
		defaultMimeType: defaultMimeType,
	}
}

// Upload checks the request's preconditions in order and forwards the file.
// Missing filePath is a *ValidationError, a nonexistent file is a
// *NotFoundError and short-circuits before any provider call. Nothing is
// retried; the first failure is the final answer.
func (s *Service) Upload(ctx context.Context, token string, req UploadRequest) (UploadedFile, error) {
	if req.FilePath == "" {
		return UploadedFile{}, &ValidationError{Field: "filePath"}
	}

	info, err := os.Stat(req.FilePath)
	if err != nil || info.IsDir() {
		return UploadedFile{}, &NotFoundError{Path: req.FilePath}
	}

	f, err := os.Open(req.FilePath)
	if err != nil {
		return UploadedFile{}, fmt.Errorf("open %s: %w", req.FilePath, err)
	}
	defer func() { _ = f.Close() }()

	dst := req.Destination(s.defaultMimeType)
	return s.storage.Upload(ctx, token, dst, f)
}

// CheckAuth validates the token with a page-size-1 listing call. It never
// mutates provider state.
func (s *Service) CheckAuth(ctx context.Context, token string) (*FileRef, error) {
	return s.storage.Probe(ctx, token)
}
