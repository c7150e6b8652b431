// Package trailer 定义预告片生成流程的请求级实体
// 实体都是单次请求内的临时数据，不做持久化
package trailer

// CharacterDesign 角色设定
// CharacterName 同时作为 output/refs 下参考图的文件名
type CharacterDesign struct {
	CharacterName         string `json:"character_name" binding:"required"`
	ImageGenerationPrompt string `json:"image_generation_prompt" binding:"required"`
}

// Scene 分镜
// ReferenceImages 为条件生成用到的角色名列表，名称必须能在 CharacterRefMap 中解析
type Scene struct {
	SceneNumber      int      `json:"scene_number"`
	SceneType        string   `json:"scene_type" binding:"required"`
	DurationSeconds  int      `json:"duration_seconds" binding:"required,gt=0"`
	StartFramePrompt string   `json:"start_frame_prompt" binding:"required"`
	EndFramePrompt   string   `json:"end_frame_prompt" binding:"required"`
	VideoPrompt      string   `json:"video_prompt" binding:"required"`
	ReferenceImages  []string `json:"reference_images"`
}

// CharacterRefMap 角色名到参考图路径的映射
// 每次请求重新构建，分镜视频生成前必须覆盖所有被引用的角色
type CharacterRefMap = map[string]string
