// Package drive implements driverelay.Storage against the Google Drive v3
// API, authenticating each call with a caller-supplied access token.
package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/sagarc03/driverelay"
)

// uploadFields is the exact field set requested from the create call; the
// relay's success body carries these and nothing else.
const uploadFields = "id, name, webViewLink, webContentLink, mimeType, size"

// probeFields limits the auth probe to identity fields only.
const probeFields = "files(id, name)"

// API abstracts the Drive calls the relay makes, so tests can substitute a
// fake without touching the network.
type API interface {
	CreateFile(ctx context.Context, meta *drive.File, content io.Reader) (*drive.File, error)
	ListFiles(ctx context.Context, pageSize int64) ([]*drive.File, error)
}

// googleAPI is the production implementation backed by a drive.Service.
type googleAPI struct {
	service *drive.Service
}

func (g *googleAPI) CreateFile(ctx context.Context, meta *drive.File, content io.Reader) (*drive.File, error) {
	return g.service.Files.Create(meta).
		Media(content).
		Fields(uploadFields).
		Context(ctx).
		Do()
}

func (g *googleAPI) ListFiles(ctx context.Context, pageSize int64) ([]*drive.File, error) {
	r, err := g.service.Files.List().
		PageSize(pageSize).
		Fields(probeFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return r.Files, nil
}

// newTokenAPI builds a Drive service from a single fixed access token. There
// is no refresh token and no refresh capability: when the token expires the
// provider rejects the call and the caller gets that rejection back.
func newTokenAPI(ctx context.Context, token string) (API, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &googleAPI{service: svc}, nil
}

// Client implements driverelay.Storage. It constructs a fresh Drive service
// per call because every request carries its own credential.
type Client struct {
	newAPI func(ctx context.Context, token string) (API, error)
}

// ClientOption is a functional option for configuring Client.
type ClientOption func(*Client)

// WithAPI sets a custom API factory (for testing).
func WithAPI(newAPI func(ctx context.Context, token string) (API, error)) ClientOption {
	return func(c *Client) {
		c.newAPI = newAPI
	}
}

// NewClient creates a Drive-backed storage client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{newAPI: newTokenAPI}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload streams content to Drive under the destination metadata. An empty
// dst.FolderID leaves Parents unset so the file lands in the Drive root.
func (c *Client) Upload(ctx context.Context, token string, dst driverelay.Destination, content io.Reader) (driverelay.UploadedFile, error) {
	api, err := c.newAPI(ctx, token)
	if err != nil {
		return driverelay.UploadedFile{}, err
	}

	meta := &drive.File{
		Name:     dst.Name,
		MimeType: dst.MimeType,
	}
	if dst.FolderID != "" {
		meta.Parents = []string{dst.FolderID}
	}

	f, err := api.CreateFile(ctx, meta, content)
	if err != nil {
		return driverelay.UploadedFile{}, mapError(err)
	}

	return driverelay.UploadedFile{
		ID:             f.Id,
		Name:           f.Name,
		WebViewLink:    f.WebViewLink,
		WebContentLink: f.WebContentLink,
		MimeType:       f.MimeType,
		Size:           f.Size,
	}, nil
}

// Probe lists a single file to validate the token. It never mutates Drive
// state.
func (c *Client) Probe(ctx context.Context, token string) (*driverelay.FileRef, error) {
	api, err := c.newAPI(ctx, token)
	if err != nil {
		return nil, err
	}

	files, err := api.ListFiles(ctx, 1)
	if err != nil {
		return nil, mapError(err)
	}

	if len(files) == 0 {
		return nil, nil
	}
	return &driverelay.FileRef{ID: files[0].Id, Name: files[0].Name}, nil
}

// mapError translates a Drive API failure into the relay's error taxonomy.
// A structured 401 becomes *driverelay.AuthError carrying the provider's own
// detail list when present; other structured rejections become
// *driverelay.ProviderError with the provider's status, message and details.
// Anything unstructured passes through for the 500 fallback.
func mapError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	details := make([]driverelay.ErrorDetail, 0, len(gerr.Errors))
	for _, item := range gerr.Errors {
		details = append(details, driverelay.ErrorDetail{
			Message: item.Message,
			Reason:  item.Reason,
		})
	}

	if gerr.Code == http.StatusUnauthorized {
		if len(details) == 0 {
			details = []driverelay.ErrorDetail{{
				Message: "Access token is expired or invalid",
				Reason:  "authError",
			}}
		}
		return &driverelay.AuthError{Details: details}
	}

	status := gerr.Code
	if status == 0 {
		status = http.StatusInternalServerError
	}
	message := gerr.Message
	if message == "" {
		message = "Upload to storage provider failed"
	}

	return &driverelay.ProviderError{
		Status:  status,
		Message: message,
		Details: details,
	}
}

// Ensure Client implements driverelay.Storage
var _ driverelay.Storage = (*Client)(nil)
