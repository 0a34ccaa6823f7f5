package handler

import (
	"github.com/gin-gonic/gin"
)

const operatorHeader = "X-Operator-ID"

// OperatorID 取出請求標頭中的操作者識別，供稽核欄位使用。
// 部署環境由前置閘道注入；未帶時記為 system。
func OperatorID(c *gin.Context) string {
	if id := c.GetHeader(operatorHeader); id != "" {
		return id
	}
	return "system"
}
