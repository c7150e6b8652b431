package generate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AC215-TarAIntino/Video-Generator/internal/model/trailer"
)

// TrailerGenerationRequest 生成预告片请求
type TrailerGenerationRequest struct {
	CharacterDesigns []trailer.CharacterDesign `json:"character_designs" binding:"required,dive"` // 角色设定列表（必填）
	Scenes           []trailer.Scene           `json:"scenes" binding:"required,dive"`            // 分镜列表（必填）
	ImageAPIKey      string                    `json:"image_api_key"`                             // 图片 API Key（可选）
	VeoAPIKey        string                    `json:"veo_api_key"`                               // 视频 API Key（可选）
	StitchTrailer    *bool                     `json:"stitch_trailer"`                            // 是否拼接成片（可选，默认 true）
}

// TrailerGenerationResponse 生成预告片响应
type TrailerGenerationResponse struct {
	CharacterRefs trailer.CharacterRefMap `json:"character_refs"` // 角色名 -> 参考图路径
	SceneVideos   []string                `json:"scene_videos"`   // 分镜视频路径，按输入顺序
	TrailerPath   *string                 `json:"trailer_path"`   // 成片路径；跳过拼接时为 null
}

// Trailer 生成完整预告片
// @Summary      生成完整预告片
// @Description  依次生成角色参考图、分镜视频，并按 stitch_trailer（默认 true）决定是否拼接成片。任一步失败即中止，不返回部分结果
// @Tags         生成
// @Accept       json
// @Produce      json
// @Param        request  body      TrailerGenerationRequest  true  "生成预告片请求"
// @Success      200      {object}  TrailerGenerationResponse
// @Failure      400      {object}  ErrorResponse  "请求参数错误 / 缺少 API Key"
// @Failure      500      {object}  ErrorResponse  "服务器内部错误"
// @Router       /generate/trailer [post]
func (h *Handler) Trailer(c *gin.Context) {
	var req TrailerGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	imageAPIKey, err := h.resolver.Resolve(req.ImageAPIKey, "image_api_key")
	if err != nil {
		respondError(c, err)
		return
	}

	veoAPIKey, err := h.resolver.Resolve(firstNonEmpty(req.VeoAPIKey, req.ImageAPIKey), "veo_api_key")
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

	// 分镜直接使用刚生成的参考图映射，不走自动加载
	sceneVideos, err := h.pipeline.GenerateSceneVideos(ctx, imageAPIKey, veoAPIKey, req.Scenes, characterRefs)
	if err != nil {
		respondError(c, err)
		return
	}
	if sceneVideos == nil {
		sceneVideos = []string{}
	}

	stitchTrailer := true
	if req.StitchTrailer != nil {
		stitchTrailer = *req.StitchTrailer
	}

	var trailerPath *string
	if stitchTrailer {
		stitched, err := h.pipeline.StitchVideos(ctx, sceneVideos)
		if err != nil {
			respondError(c, err)
			return
		}
		trailerPath = &stitched
	}

	c.JSON(http.StatusOK, TrailerGenerationResponse{
		CharacterRefs: characterRefs,
		SceneVideos:   sceneVideos,
		TrailerPath:   trailerPath,
	})
}
