package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/skillswap/backend/api/transport"
	"github.com/skillswap/backend/pkg/httpcontext"
	reviewUC "github.com/skillswap/backend/usecase/review"
)

type ReviewHandler struct {
	baseHandler
	uc *reviewUC.UseCase
}

func NewReviewHandler(uc *reviewUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Review the counterpart of a completed swap
// @Tags reviews
// @Router /api/v1/reviews [post]
func (h *ReviewHandler) Submit(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ReviewRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.SwapID == "" {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	review, err := h.uc.Submit(stdCtx, userID, req.SwapID, req.Rating, req.Feedback)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, review)
}
