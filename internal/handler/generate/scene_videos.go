package generate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AC215-TarAIntino/Video-Generator/internal/model/trailer"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/refs"
)

// SceneVideoRequest 生成分镜视频请求
type SceneVideoRequest struct {
	Scenes        []trailer.Scene         `json:"scenes" binding:"required,dive"` // 分镜列表（必填）
	ImageAPIKey   string                  `json:"image_api_key"`                  // 图片 API Key（可选）
	VeoAPIKey     string                  `json:"veo_api_key"`                    // 视频 API Key（可选，回退链见下）
	CharacterRefs trailer.CharacterRefMap `json:"character_refs"`                 // 角色参考图映射（可选，缺省从 output/refs 自动加载）
	AutoloadRefs  *bool                   `json:"autoload_refs"`                  // 自动加载开关（可选，默认 true）
}

// SceneVideoResponse 生成分镜视频响应
type SceneVideoResponse struct {
	VideoPaths []string `json:"video_paths"` // 分镜视频路径，按输入顺序
}

// SceneVideos 生成分镜视频
// @Summary      生成分镜视频
// @Description  为每个分镜生成视频，视频写入 output/scenes/。veo_api_key 的取值顺序：请求体 veo_api_key > 请求体 image_api_key > secret 文件默认 Key
// @Tags         生成
// @Accept       json
// @Produce      json
// @Param        request  body      SceneVideoRequest  true  "生成分镜视频请求"
// @Success      200      {object}  SceneVideoResponse
// @Failure      400      {object}  ErrorResponse  "请求参数错误 / 缺少 API Key / 参考图未解析"
// @Failure      500      {object}  ErrorResponse  "服务器内部错误"
// @Router       /generate/scene-videos [post]
func (h *Handler) SceneVideos(c *gin.Context) {
	var req SceneVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	imageAPIKey, err := h.resolver.Resolve(req.ImageAPIKey, "image_api_key")
	if err != nil {
		respondError(c, err)
		return
	}

	// veo key 回退链：请求 veo_api_key > 请求 image_api_key > secret 默认 Key
	veoAPIKey, err := h.resolver.Resolve(firstNonEmpty(req.VeoAPIKey, req.ImageAPIKey), "veo_api_key")
	if err != nil {
		respondError(c, err)
		return
	}

	autoloadRefs := true
	if req.AutoloadRefs != nil {
		autoloadRefs = *req.AutoloadRefs
	}

	characterRefs, err := refs.BuildCharacterRefMap(req.Scenes, req.CharacterRefs, autoloadRefs, h.layout.RefsDir())
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	videoPaths, err := h.pipeline.GenerateSceneVideos(ctx, imageAPIKey, veoAPIKey, req.Scenes, characterRefs)
	if err != nil {
		respondError(c, err)
		return
	}
	if videoPaths == nil {
		videoPaths = []string{}
	}

	c.JSON(http.StatusOK, SceneVideoResponse{
		VideoPaths: videoPaths,
	})
}
