package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sagarc03/driverelay"
)

// Service is the relay's authenticated surface. The root package's Service
// implements it; tests substitute mocks.
type Service interface {
	Upload(ctx context.Context, token string, req driverelay.UploadRequest) (driverelay.UploadedFile, error)
	CheckAuth(ctx context.Context, token string) (*driverelay.FileRef, error)
}

type CORSConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	MaxAge         int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	// AltAuthHeader is checked for a raw token when no Authorization
	// bearer header is present.
	AltAuthHeader string
	// Version is reported by the health endpoint.
	Version string
	CORS    CORSConfig
}

// Handler provides the HTTP surface of the upload relay.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	h := &Handler{
		config:  *config,
		service: service,
	}
	if h.config.AltAuthHeader == "" {
		h.config.AltAuthHeader = driverelay.DefaultAltAuthHeader
	}
	return h
}

// Router returns an http.Handler with the relay's routes configured.
// OPTIONS to any path short-circuits with 200 and the permissive CORS
// headers; every other response carries them via the cors middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.config.CORS.AllowedOrigins,
			AllowedMethods: h.config.CORS.AllowedMethods,
			AllowedHeaders: h.config.CORS.AllowedHeaders,
			MaxAge:         h.config.CORS.MaxAge,
		}))
	}

	// Bare OPTIONS requests (no CORS negotiation headers) never reach the
	// cors middleware's preflight path, so answer them here before routing.
	r.Use(h.optionsShortCircuit)

	r.Post("/upload", h.handleUpload)
	r.Post("/test-auth", h.handleTestAuth)
	r.Get("/health", h.handleHealth)

	return r
}

// uploadResponse wraps the uploaded file metadata.
type uploadResponse struct {
	File driverelay.UploadedFile `json:"file"`
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	token, ok := driverelay.ExtractToken(r.Header, h.config.AltAuthHeader)
	if !ok {
		HandleError(w, missingTokenError(h.config.AltAuthHeader))
		return
	}

	var req driverelay.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Bad Request", []driverelay.ErrorDetail{
			{Message: "Request body must be valid JSON"},
		})
		return
	}

	slog.Debug("upload request",
		"file", req.FilePath,
		"folder", req.FolderID,
		"token", driverelay.TokenPrefix(token),
	)

	file, err := h.service.Upload(r.Context(), token, req)
	if err != nil {
		HandleError(w, err)
		return
	}

	slog.Info("upload complete", "id", file.ID, "name", file.Name, "size", file.Size)
	_ = WriteJSON(w, http.StatusOK, uploadResponse{File: file})
}

// testAuthResponse is the success body of the auth probe. TestFile is null
// when the token is valid but the account has no visible files.
type testAuthResponse struct {
	Status   string              `json:"status"`
	Message  string              `json:"message"`
	TestFile *driverelay.FileRef `json:"testFile"`
}

// authFailure is the probe's failure body; unlike the main envelope its
// details field is a single message string.
type authFailure struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (h *Handler) handleTestAuth(w http.ResponseWriter, r *http.Request) {
	token, ok := driverelay.ExtractToken(r.Header, h.config.AltAuthHeader)
	if !ok {
		HandleError(w, missingTokenError(h.config.AltAuthHeader))
		return
	}

	ref, err := h.service.CheckAuth(r.Context(), token)
	if err != nil {
		slog.Warn("auth probe failed", "token", driverelay.TokenPrefix(token), "error", err)
		_ = WriteJSON(w, http.StatusUnauthorized, authFailure{
			Error:   "Invalid token",
			Details: err.Error(),
		})
		return
	}

	_ = WriteJSON(w, http.StatusOK, testAuthResponse{
		Status:   "authenticated",
		Message:  "Access token is valid",
		TestFile: ref,
	})
}

// healthResponse reports liveness; it depends on nothing external.
type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = WriteJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.config.Version,
	})
}

// optionsShortCircuit answers any OPTIONS request with 200 and an empty
// body, regardless of path. Negotiated preflights are already handled by the
// cors middleware; this covers clients that probe with bare OPTIONS.
func (h *Handler) optionsShortCircuit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		origins := h.config.CORS.AllowedOrigins
		if len(origins) == 0 {
			origins = []string{"*"}
		}
		w.Header().Set("Access-Control-Allow-Origin", strings.Join(origins, ", "))
		if len(h.config.CORS.AllowedMethods) > 0 {
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(h.config.CORS.AllowedMethods, ", "))
		}
		if len(h.config.CORS.AllowedHeaders) > 0 {
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(h.config.CORS.AllowedHeaders, ", "))
		}
		w.WriteHeader(http.StatusOK)
	})
}

// missingTokenError builds the 401 envelope for a request with no credential
// in either header location.
func missingTokenError(altHeader string) error {
	return &driverelay.AuthError{
		Details: []driverelay.ErrorDetail{
			{
				Message:      "No access token provided",
				Reason:       "required",
				Location:     "Authorization, " + altHeader,
				LocationType: "header",
			},
		},
	}
}
