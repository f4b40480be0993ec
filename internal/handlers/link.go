package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/dropbin/internal/analytics"
	"github.com/serroba/dropbin/internal/botcheck"
	"github.com/serroba/dropbin/internal/messaging"
	"github.com/serroba/dropbin/internal/shortener"
	"go.uber.org/zap"
)

// LinkHandler handles short link operations.
type LinkHandler struct {
	allocator           *shortener.Allocator
	verifier            botcheck.Verifier
	baseURL             string
	publishLinkCreated  messaging.Publish[analytics.LinkCreatedEvent]
	publishLinkAccessed messaging.Publish[analytics.LinkAccessedEvent]
	logger              *zap.Logger
}

// NewLinkHandler creates a new short link handler.
func NewLinkHandler(
	allocator *shortener.Allocator,
	verifier botcheck.Verifier,
	baseURL string,
	publishLinkCreated messaging.Publish[analytics.LinkCreatedEvent],
	publishLinkAccessed messaging.Publish[analytics.LinkAccessedEvent],
	logger *zap.Logger,
) *LinkHandler {
	return &LinkHandler{
		allocator:           allocator,
		verifier:            verifier,
		baseURL:             baseURL,
		publishLinkCreated:  publishLinkCreated,
		publishLinkAccessed: publishLinkAccessed,
		logger:              logger,
	}
}

func (h *LinkHandler) CreateShortLink(
	ctx context.Context, req *CreateShortLinkRequest,
) (*CreateShortLinkResponse, error) {
	accepted, err := h.verifier.Verify(ctx, req.Body.TurnstileToken)
	if err != nil {
		h.logger.Error("bot verification unavailable", zap.Error(err))

		return nil, huma.Error500InternalServerError("bot verification unavailable")
	}

	if !accepted {
		return nil, huma.Error403Forbidden("bot verification failed")
	}

	link, err := h.allocator.Shorten(ctx, req.Body.URL)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidURL):
			return nil, huma.Error400BadRequest(err.Error())
		case errors.Is(err, shortener.ErrAllocationExhausted):
			h.logger.Error("short code allocation exhausted")

			return nil, huma.Error500InternalServerError("could not allocate a short code")
		default:
			return nil, huma.Error500InternalServerError("failed to save link")
		}
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkCreatedEvent{
		Code:      string(link.Code),
		Target:    link.Target,
		CreatedAt: link.CreatedAt,
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
	}

	if err := h.publishLinkCreated(event); err != nil {
		h.logger.Error("failed to publish link created event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	resp := &CreateShortLinkResponse{}
	resp.Body.URL = fmt.Sprintf("%s/%s", h.baseURL, link.Code)

	return resp, nil
}

func (h *LinkHandler) RedirectToTarget(
	ctx context.Context, req *RedirectRequest,
) (*RedirectResponse, error) {
	resp := &RedirectResponse{Status: http.StatusFound}

	link, err := h.allocator.Resolve(ctx, shortener.Code(req.Code))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			// Unknown codes land on the default page rather than a 404.
			resp.Headers.Location = "/"

			return resp, nil
		}

		return nil, huma.Error500InternalServerError("failed to resolve link")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkAccessedEvent{
		Code:       req.Code,
		AccessedAt: time.Now(),
		ClientIP:   meta.ClientIP,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
	}

	if err = h.publishLinkAccessed(event); err != nil {
		h.logger.Error("failed to publish link accessed event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	resp.Headers.Location = link.Target

	return resp, nil
}
