package generate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AC215-TarAIntino/Video-Generator/internal/model/trailer"
)

// CharacterReferenceRequest 生成角色参考图请求
type CharacterReferenceRequest struct {
	CharacterDesigns []trailer.CharacterDesign `json:"character_designs" binding:"required,dive"` // 角色设定列表（必填）
	ImageAPIKey      string                    `json:"image_api_key"`                             // 图片 API Key（可选，缺省读 secret 文件）
}

// CharacterReferenceResponse 生成角色参考图响应
type CharacterReferenceResponse struct {
	CharacterRefs trailer.CharacterRefMap `json:"character_refs"` // 角色名 -> 参考图路径
}

// CharacterReferences 生成角色参考图
// @Summary      生成角色参考图
// @Description  为每个角色设定生成参考图，参考图写入 output/refs/<character_name>.png
// @Tags         生成
// @Accept       json
// @Produce      json
// @Param        request  body      CharacterReferenceRequest  true  "生成角色参考图请求"
// @Success      200      {object}  CharacterReferenceResponse
// @Failure      400      {object}  ErrorResponse  "请求参数错误 / 缺少 API Key"
// @Failure      500      {object}  ErrorResponse  "服务器内部错误"
// @Router       /generate/character-references [post]
func (h *Handler) CharacterReferences(c *gin.Context) {
	var req CharacterReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	imageAPIKey, err := h.resolver.Resolve(req.ImageAPIKey, "image_api_key")
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	characterRefs, err := h.pipeline.GenerateCharacterReferences(ctx, imageAPIKey, req.CharacterDesigns)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CharacterReferenceResponse{
		CharacterRefs: characterRefs,
	})
}
