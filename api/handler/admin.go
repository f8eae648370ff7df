package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/skillswap/backend/pkg/httpcontext"
	adminUC "github.com/skillswap/backend/usecase/admin"
)

type AdminHandler struct {
	baseHandler
	uc *adminUC.UseCase
}

func NewAdminHandler(uc *adminUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Download the platform activity report
// @Tags admin
// @Router /api/v1/admin/report [get]
func (h *AdminHandler) Report(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	report, err := h.uc.GenerateReport(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	filename := fmt.Sprintf("skill-swap-report-%s.json", time.Now().UTC().Format("2006-01-02"))
	ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	h.respondSuccess(ctx, http.StatusOK, report)
}

// @Summary Hide a user from the directory
// @Tags admin
// @Router /api/v1/admin/users/{id}/ban [post]
func (h *AdminHandler) BanUser(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing user id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.Ban(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, user)
}

// @Summary Purge a user and everything referencing them
// @Tags admin
// @Router /api/v1/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing user id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
