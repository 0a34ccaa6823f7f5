package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/chatscai10/employee-management-system-sub002/internal/service"
	"github.com/chatscai10/employee-management-system-sub002/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 匯出模組 HTTP 處理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 建立 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportMonthlyRevenue 匯出分店營收月報
// GET /api/v1/export/revenue?store_id=xxx&month=YYYY-MM
func (h *ExportHandler) ExportMonthlyRevenue(c *gin.Context) {
	storeID := c.Query("store_id")
	month := c.Query("month")
	if storeID == "" || len(month) != 7 {
		response.BadRequest(c, 10001, "store_id 與 month (YYYY-MM) 不能為空")
		return
	}

	buf, filename, err := h.exportSvc.ExportMonthlyRevenue(c.Request.Context(), storeID, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// handleExportError 統一處理匯出模組業務錯誤
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStoreNotFound):
		response.NotFound(c, 11001, "分店不存在")
	case errors.Is(err, service.ErrExportNoRecords):
		response.NotFound(c, 17001, "該月份無營收紀錄")
	default:
		response.InternalError(c)
	}
}
