// Package output 管理生成产物的固定目录布局
//
//	<dir>/refs/<character_name>.png   角色参考图
//	<dir>/scenes/scene_<n>.mp4        分镜视频
//	<dir>/trailer_no_audio.mp4        拼接后的预告片
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout 输出目录布局
type Layout struct {
	dir string
}

// NewLayout 创建输出目录布局
func NewLayout(dir string) *Layout {
	return &Layout{dir: dir}
}

// RefsDir 参考图目录
func (l *Layout) RefsDir() string {
	return filepath.Join(l.dir, "refs")
}

// ScenesDir 分镜视频目录
func (l *Layout) ScenesDir() string {
	return filepath.Join(l.dir, "scenes")
}

// RefPath 角色参考图路径
func (l *Layout) RefPath(characterName string) string {
	return filepath.Join(l.RefsDir(), fmt.Sprintf("%s.png", characterName))
}

// ScenePath 分镜视频路径
func (l *Layout) ScenePath(sceneNumber int) string {
	return filepath.Join(l.ScenesDir(), fmt.Sprintf("scene_%02d.mp4", sceneNumber))
}

// TrailerPath 预告片输出路径
func (l *Layout) TrailerPath() string {
	return filepath.Join(l.dir, "trailer_no_audio.mp4")
}

// EnsureDirs 创建输出目录（幂等）
func (l *Layout) EnsureDirs() error {
	for _, dir := range []string{l.RefsDir(), l.ScenesDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	return nil
}
