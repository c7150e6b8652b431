package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/AC215-TarAIntino/Video-Generator/internal/model/trailer"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/output"
)

// Generator Pipeline 的生产实现
// 组合图片提供者、视频提供者和视频拼接器，产物写入固定输出目录
type Generator struct {
	images   ImageProvider
	videos   VideoProvider
	stitcher Stitcher
	layout   *output.Layout
}

// NewGenerator 创建生成器
func NewGenerator(images ImageProvider, videos VideoProvider, stitcher Stitcher, layout *output.Layout) *Generator {
	return &Generator{
		images:   images,
		videos:   videos,
		stitcher: stitcher,
		layout:   layout,
	}
}

// GenerateCharacterReferences 为每个角色设定生成参考图
// 参考图写入 <output>/refs/<character_name>.png
func (g *Generator) GenerateCharacterReferences(ctx context.Context, imageAPIKey string, designs []trailer.CharacterDesign) (trailer.CharacterRefMap, error) {
	for i, design := range designs {
		if design.CharacterName == "" {
			return nil, Invalidf("character_designs[%d]: character_name is required", i)
		}
		if design.ImageGenerationPrompt == "" {
			return nil, Invalidf("character_designs[%d]: image_generation_prompt is required", i)
		}
	}

	if err := g.layout.EnsureDirs(); err != nil {
		return nil, err
	}

	characterRefs := trailer.CharacterRefMap{}
	for _, design := range designs {
		imageData, err := g.images.GenerateImage(ctx, imageAPIKey, design.ImageGenerationPrompt, nil)
		if err != nil {
			return nil, fmt.Errorf("generate reference for '%s': %w", design.CharacterName, err)
		}

		refPath := g.layout.RefPath(design.CharacterName)
		if err := os.WriteFile(refPath, imageData, 0o644); err != nil {
			return nil, fmt.Errorf("write reference image %s: %w", refPath, err)
		}

		log.Info().
			Str("character", design.CharacterName).
			Str("path", refPath).
			Msg("角色参考图生成完成")

		characterRefs[design.CharacterName] = refPath
	}

	return characterRefs, nil
}

// GenerateSceneVideos 按输入顺序为每个分镜生成视频
// 流程：参考图 + start_frame_prompt 生成首帧图 → 首帧图 + video_prompt 生成视频，
// 视频写入 <output>/scenes/scene_<n>.mp4
func (g *Generator) GenerateSceneVideos(ctx context.Context, imageAPIKey, veoAPIKey string, scenes []trailer.Scene, characterRefs trailer.CharacterRefMap) ([]string, error) {
	if err := g.validateScenes(scenes, characterRefs); err != nil {
		return nil, err
	}

	if err := g.layout.EnsureDirs(); err != nil {
		return nil, err
	}

	var videoPaths []string
	for _, scene := range scenes {
		referenceImages, err := loadReferenceImages(scene.ReferenceImages, characterRefs)
		if err != nil {
			return nil, err
		}

		startImage, err := g.images.GenerateImage(ctx, imageAPIKey, scene.StartFramePrompt, referenceImages)
		if err != nil {
			return nil, fmt.Errorf("generate start frame for scene %d: %w", scene.SceneNumber, err)
		}

		videoData, err := g.videos.GenerateVideo(ctx, veoAPIKey, startImage, scene.VideoPrompt, scene.DurationSeconds)
		if err != nil {
			return nil, fmt.Errorf("generate video for scene %d: %w", scene.SceneNumber, err)
		}

		scenePath := g.layout.ScenePath(scene.SceneNumber)
		if err := os.WriteFile(scenePath, videoData, 0o644); err != nil {
			return nil, fmt.Errorf("write scene video %s: %w", scenePath, err)
		}

		log.Info().
			Int("scene_number", scene.SceneNumber).
			Int("duration", scene.DurationSeconds).
			Str("path", scenePath).
			Msg("分镜视频生成完成")

		videoPaths = append(videoPaths, scenePath)
	}

	return videoPaths, nil
}

// StitchVideos 按给定顺序拼接视频
// 成片写入 <output>/trailer_no_audio.mp4
func (g *Generator) StitchVideos(ctx context.Context, videoPaths []string) (string, error) {
	if len(videoPaths) == 0 {
		return "", Invalidf("no videos to stitch")
	}
	for _, videoPath := range videoPaths {
		if _, err := os.Stat(videoPath); err != nil {
			return "", Invalidf("video not readable: %s", videoPath)
		}
	}

	trailerPath := g.layout.TrailerPath()
	if err := g.stitcher.ConcatVideos(ctx, videoPaths, trailerPath); err != nil {
		return "", err
	}

	log.Info().
		Int("count", len(videoPaths)).
		Str("path", trailerPath).
		Msg("预告片拼接完成")

	return trailerPath, nil
}

// validateScenes 校验分镜字段和角色引用
// 所有被引用的角色必须已在映射中，违反按输入错误处理
func (g *Generator) validateScenes(scenes []trailer.Scene, characterRefs trailer.CharacterRefMap) error {
	for i, scene := range scenes {
		if scene.DurationSeconds <= 0 {
			return Invalidf("scenes[%d]: duration_seconds must be positive", i)
		}
		if scene.StartFramePrompt == "" {
			return Invalidf("scenes[%d]: start_frame_prompt is required", i)
		}
		if scene.VideoPrompt == "" {
			return Invalidf("scenes[%d]: video_prompt is required", i)
		}
		for _, character := range scene.ReferenceImages {
			if _, ok := characterRefs[character]; !ok {
				return Invalidf("scene %d references unmapped character '%s'", scene.SceneNumber, character)
			}
		}
	}
	return nil
}

// loadReferenceImages 按分镜引用顺序读取参考图数据
func loadReferenceImages(characters []string, characterRefs trailer.CharacterRefMap) ([][]byte, error) {
	var images [][]byte
	for _, character := range characters {
		refPath := characterRefs[character]
		data, err := os.ReadFile(refPath)
		if err != nil {
			return nil, fmt.Errorf("read reference image for '%s': %w", character, err)
		}
		images = append(images, data)
	}
	return images, nil
}
