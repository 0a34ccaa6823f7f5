package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/service"
	"github.com/chatscai10/employee-management-system-sub002/pkg/response"
)

// SettingsHandler 營運設定模組 HTTP 處理器
type SettingsHandler struct {
	settingsSvc service.SettingsService
}

// NewSettingsHandler 建立 SettingsHandler
func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// GetSettings 取得營運設定
// GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsSvc.Get(c.Request.Context())
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}

	response.OK(c, settings)
}

// UpdateSettings 更新營運設定（只更新有帶的欄位）
// PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	settings, err := h.settingsSvc.Update(c.Request.Context(), &req, OperatorID(c))
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}

	response.OK(c, settings)
}

// handleSettingsError 統一處理營運設定模組業務錯誤
func (h *SettingsHandler) handleSettingsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSettingsNotFound):
		response.NotFound(c, 18001, "營運設定不存在")
	default:
		response.InternalError(c)
	}
}
