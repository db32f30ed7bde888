package driverelay

import "path/filepath"

const (
	// FolderRoot is the sentinel folder id meaning "no parent folder":
	// the upload lands in the Drive root instead of a named folder.
	FolderRoot = "root"

	// DefaultMimeType is used when an upload request does not name a
	// content type. The relay's primary workload is video uploads.
	DefaultMimeType = "video/mp4"
)

// UploadRequest is the JSON body of an upload call. FilePath is the only
// required field; it must reference a readable file on the relay host.
type UploadRequest struct {
	FilePath string `json:"filePath"`
	FileName string `json:"fileName,omitempty"`
	FolderID string `json:"folderId,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// Destination is the provider-side metadata for an upload. FolderID is empty
// when the file should land in the provider's default root.
type Destination struct {
	Name     string
	MimeType string
	FolderID string
}

// Destination resolves the request into provider metadata: the name defaults
// to the base name of FilePath, the content type to defaultMimeType, and the
// FolderRoot sentinel collapses to "no parent".
func (r UploadRequest) Destination(defaultMimeType string) Destination {
	name := r.FileName
	if name == "" {
		name = filepath.Base(r.FilePath)
	}

	mimeType := r.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	folderID := r.FolderID
	if folderID == FolderRoot {
		folderID = ""
	}

	return Destination{
		Name:     name,
		MimeType: mimeType,
		FolderID: folderID,
	}
}

// UploadedFile is the normalized result of a successful upload. The fields
// mirror exactly what is requested from the provider's create call.
type UploadedFile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	WebViewLink    string `json:"webViewLink"`
	WebContentLink string `json:"webContentLink"`
	MimeType       string `json:"mimeType"`
	Size           int64  `json:"size"`
}

// FileRef identifies a provider file returned by the read-only auth probe.
type FileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
