// Package refs 计算分镜引用的角色并解析参考图映射
package refs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AC215-TarAIntino/Video-Generator/internal/model/trailer"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline"
)

// CollectReferencedCharacters 收集分镜引用的角色名
// 按首次出现顺序去重：分镜按输入顺序遍历，分镜内 reference_images 按输入顺序遍历
func CollectReferencedCharacters(scenes []trailer.Scene) []string {
	var referenced []string
	seen := make(map[string]struct{})
	for _, scene := range scenes {
		for _, character := range scene.ReferenceImages {
			if _, ok := seen[character]; !ok {
				seen[character] = struct{}{}
				referenced = append(referenced, character)
			}
		}
	}
	return referenced
}

// BuildCharacterRefMap 构建角色参考图映射
//
// 解析策略（按顺序）：
//  1. 调用方提供了映射：校验覆盖所有被引用的角色，缺失则一次性列出全部缺失项；
//     多余的未引用条目原样保留
//  2. 未提供映射且 autoload 关闭：存在引用即报错，无引用返回空映射
//  3. autoload 开启：按收集顺序在 refsDir 下探测 <角色名>.png，
//     首个缺失文件即失败（与原有行为一致，缺失项不聚合）
//
// 所有失败都是 ValidationError
func BuildCharacterRefMap(
	scenes []trailer.Scene,
	providedRefs trailer.CharacterRefMap,
	autoloadRefs bool,
	refsDir string,
) (trailer.CharacterRefMap, error) {
	if len(providedRefs) > 0 {
		var missing []string
		for _, character := range CollectReferencedCharacters(scenes) {
			if _, ok := providedRefs[character]; !ok {
				missing = append(missing, character)
			}
		}
		if len(missing) > 0 {
			return nil, pipeline.Invalidf(
				"Missing reference paths for: %s", strings.Join(missing, ", "))
		}
		return providedRefs, nil
	}

	if !autoloadRefs {
		if len(CollectReferencedCharacters(scenes)) > 0 {
			return nil, pipeline.Invalidf(
				"Reference images required but no character_refs provided.")
		}
		return trailer.CharacterRefMap{}, nil
	}

	characterRefs := trailer.CharacterRefMap{}
	for _, character := range CollectReferencedCharacters(scenes) {
		refPath := filepath.Join(refsDir, fmt.Sprintf("%s.png", character))
		if _, err := os.Stat(refPath); err != nil {
			return nil, pipeline.Invalidf(
				"Reference image not found for '%s' at %s", character, refPath)
		}
		characterRefs[character] = refPath
	}
	return characterRefs, nil
}
