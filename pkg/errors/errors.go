package errors

import (
	"errors"
	"fmt"
)

// ErrOptimisticLock 樂觀鎖衝突：資料已被其他操作修改
var ErrOptimisticLock = errors.New("資料已被其他操作修改，請重新整理後再試")

// ValidationError 輸入結構錯誤（欄位缺漏、格式不合法）
// 與業務規則結果（違規/異常清單）不同：此類錯誤立即中止，不做部分計算
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("欄位 %s 驗證失敗: %s", e.Field, e.Message)
}

// NewValidation 建立 ValidationError
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation 判斷是否為輸入驗證錯誤
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
