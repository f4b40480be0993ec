package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/dropbin/internal/analytics"
	"github.com/serroba/dropbin/internal/files"
	"github.com/serroba/dropbin/internal/identity"
	"github.com/serroba/dropbin/internal/messaging"
	"github.com/serroba/dropbin/internal/upload"
	"go.uber.org/zap"
)

// UploadHandler handles upload authorization and saved file listings.
type UploadHandler struct {
	authorizer              *upload.Authorizer
	fileStore               files.Store
	publishUploadAuthorized messaging.Publish[analytics.UploadAuthorizedEvent]
	logger                  *zap.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(
	authorizer *upload.Authorizer,
	fileStore files.Store,
	publishUploadAuthorized messaging.Publish[analytics.UploadAuthorizedEvent],
	logger *zap.Logger,
) *UploadHandler {
	return &UploadHandler{
		authorizer:              authorizer,
		fileStore:               fileStore,
		publishUploadAuthorized: publishUploadAuthorized,
		logger:                  logger,
	}
}

func (h *UploadHandler) AuthorizeUpload(
	ctx context.Context, req *AuthorizeUploadRequest,
) (*AuthorizeUploadResponse, error) {
	id := identity.FromContext(ctx)

	grant, err := h.authorizer.Authorize(ctx, upload.Request{
		Name:        req.Body.Name,
		ContentType: req.Body.Type,
		Size:        req.Body.Size,
		Save:        req.Body.Save,
		BotToken:    req.Body.TurnstileToken,
	}, id)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrAuthRequired):
			return nil, huma.Error401Unauthorized("saving a file requires an account")
		case errors.Is(err, upload.ErrBotCheckFailed):
			return nil, huma.Error403Forbidden("bot verification failed")
		case errors.Is(err, upload.ErrRateLimited):
			return nil, huma.Error429TooManyRequests("rate limit exceeded")
		case errors.Is(err, upload.ErrFileTooLarge):
			return nil, huma.NewError(
				http.StatusRequestEntityTooLarge, "file is over the size limit",
			)
		default:
			h.logger.Error("upload authorization failed", zap.Error(err))

			return nil, huma.Error500InternalServerError("failed to authorize upload")
		}
	}

	event := &analytics.UploadAuthorizedEvent{
		StorageKey:   grant.Key,
		ContentType:  req.Body.Type,
		Size:         req.Body.Size,
		Subject:      id.Subject,
		Saved:        req.Body.Save,
		AuthorizedAt: time.Now(),
	}

	if err := h.publishUploadAuthorized(event); err != nil {
		h.logger.Error("failed to publish upload authorized event",
			zap.String("storageKey", event.StorageKey),
			zap.Error(err),
		)
	}

	resp := &AuthorizeUploadResponse{}
	resp.Body.URL = grant.URL

	return resp, nil
}

func (h *UploadHandler) ListFiles(ctx context.Context, _ *struct{}) (*ListFilesResponse, error) {
	id := identity.FromContext(ctx)
	if id.Anonymous() {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	records, err := h.fileStore.ListByUser(ctx, id.Subject)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list files")
	}

	resp := &ListFilesResponse{}
	resp.Body.Files = make([]FileItem, 0, len(records))

	for _, record := range records {
		resp.Body.Files = append(resp.Body.Files, FileItem{
			URL:  record.URL,
			Type: record.ContentType,
			Size: record.Size,
		})
	}

	return resp, nil
}
