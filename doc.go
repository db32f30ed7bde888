// Package driverelay implements a stateless HTTP relay that forwards file
// uploads to Google Drive using a caller-supplied OAuth2 bearer token.
//
// The relay accepts an upload request naming a file on the local filesystem,
// authenticates against Drive with the token taken from the request headers,
// streams the file to the Drive create-file API and returns a normalized JSON
// response. No credentials are stored, no uploads are queued or retried, and
// no state survives the request that produced it.
//
// # Key Components
//
//   - Service: precondition checks plus orchestration of the provider call
//   - Storage: interface to the upload provider (Google Drive in drive/)
//   - ExtractToken: pure bearer-token extraction with a provider fallback header
//   - Error taxonomy: AuthError, ValidationError, NotFoundError, ProviderError
//
// # Example Usage
//
//	service := driverelay.NewService(drive.NewClient(), driverelay.DefaultMimeType)
//
//	file, err := service.Upload(ctx, token, driverelay.UploadRequest{
//	    FilePath: "/videos/recording.mp4",
//	    FolderID: "1AbCdEfG",
//	})
//
// See the http package for the REST surface and the drive package for the
// provider client.
package driverelay
