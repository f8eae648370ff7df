package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/skillswap/backend/api/transport"
	"github.com/skillswap/backend/pkg/httpcontext"
	"github.com/skillswap/backend/repository"
	swapUC "github.com/skillswap/backend/usecase/swap"
)

type SwapHandler struct {
	baseHandler
	uc *swapUC.UseCase
}

func NewSwapHandler(uc *swapUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SwapHandler {
	return &SwapHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Propose a swap
// @Tags swaps
// @Router /api/v1/swaps [post]
func (h *SwapHandler) Propose(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.SwapProposalRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	request, err := h.uc.Propose(stdCtx, userID, req.ToUser, req.OfferedSkill, req.RequestedSkill, req.Message)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, request)
}

// @Summary List own swap requests by direction
// @Tags swaps
// @Router /api/v1/swaps [get]
func (h *SwapHandler) List(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	direction := repository.Direction(ctx.QueryArgs().Peek("direction"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	requests, err := h.uc.ListFor(stdCtx, userID, direction)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, requests)
}

// @Summary Count own swap requests by status
// @Tags swaps
// @Router /api/v1/swaps/summary [get]
func (h *SwapHandler) Summary(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.uc.SummaryFor(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, summary)
}

// @Summary Accept or reject a pending swap
// @Tags swaps
// @Router /api/v1/swaps/{id}/respond [post]
func (h *SwapHandler) Respond(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing swap id")
		return
	}

	var req transport.SwapDecisionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	request, err := h.uc.Respond(stdCtx, userID, id, swapUC.Decision(req.Decision))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, request)
}

// @Summary Mark an accepted swap as completed
// @Tags swaps
// @Router /api/v1/swaps/{id}/complete [post]
func (h *SwapHandler) Complete(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing swap id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	request, err := h.uc.Complete(stdCtx, userID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, request)
}

// @Summary Cancel an own pending swap
// @Tags swaps
// @Router /api/v1/swaps/{id} [delete]
func (h *SwapHandler) Cancel(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing swap id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Cancel(stdCtx, userID, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
