package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/skillswap/backend/pkg/httpcontext"
	directoryUC "github.com/skillswap/backend/usecase/directory"
)

type DirectoryHandler struct {
	baseHandler
	uc *directoryUC.UseCase
}

func NewDirectoryHandler(uc *directoryUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Browse the member directory
// @Tags directory
// @Router /api/v1/users [get]
func (h *DirectoryHandler) List(ctx *fasthttp.RequestCtx) {
	filter := directoryUC.Filter{
		Viewer:       string(ctx.Request.Header.Peek("X-User-ID")),
		Search:       string(ctx.QueryArgs().Peek("q")),
		Availability: string(ctx.QueryArgs().Peek("availability")),
		Page:         parseInt(string(ctx.QueryArgs().Peek("page")), 1),
		PerPage:      parseInt(string(ctx.QueryArgs().Peek("per_page")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	page, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, page)
}

// @Summary View a member profile
// @Tags directory
// @Router /api/v1/users/{id} [get]
func (h *DirectoryHandler) GetUser(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing user id")
		return
	}
	viewer := string(ctx.Request.Header.Peek("X-User-ID"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.GetUser(stdCtx, viewer, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, user)
}

// @Summary List reviews written about a member
// @Tags directory
// @Router /api/v1/users/{id}/reviews [get]
func (h *DirectoryHandler) GetUserReviews(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing user id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	reviews, err := h.uc.GetUserReviews(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, reviews)
}
