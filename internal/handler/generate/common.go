package generate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/httputil"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline"
)

// ErrorResponse 错误响应类型别名（使用共用的 httputil.ErrorResponse）
type ErrorResponse = httputil.ErrorResponse

// respondError 统一的错误映射
// ValidationError（调用方可修复）→ 400，其余错误原样透出 → 500。不做重试
func respondError(c *gin.Context, err error) {
	if pipeline.IsValidation(err) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    50001,
		Message: err.Error(),
	})
}

// respondBindError 请求体解析失败
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    40001,
		Message: "Invalid request body",
		Detail:  err.Error(),
	})
}

// firstNonEmpty 返回第一个非空串
// 用于有回退链的可选字段（如 veo_api_key 回退到 image_api_key）
func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
