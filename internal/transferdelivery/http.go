// Package transferdelivery manages delivery layer of bulk transfers.
package transferdelivery

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/corebank/bulktransfer/internal/domain"
	"github.com/corebank/bulktransfer/pkg/jsonresponse"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Process(ctx context.Context, bulk *domain.BulkTransfer) error
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

// CreateBulk handles http request to process a bulk of credit transfers
// against one organization account.
//
// A malformed body short-circuits with a single base-level error before any
// field validation runs. Success returns 201 with an empty body; validation
// and processing failures return 422 with the error list.
func (h *Handler) CreateBulk(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var bulk domain.BulkTransfer
	if err := json.NewDecoder(gctx.Request.Body).Decode(&bulk); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusUnprocessableEntity, jsonresponse.Errors([]string{"Invalid JSON: " + err.Error()}))

		return
	}

	if errs := bulk.Validate(); len(errs) > 0 {
		gctx.JSON(http.StatusUnprocessableEntity, jsonresponse.Errors(domain.Messages(errs)))

		return
	}

	if err := h.service.Process(ctx, &bulk); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusUnprocessableEntity, jsonresponse.Error(err))

		return
	}

	gctx.Status(http.StatusCreated)
}
