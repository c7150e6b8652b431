package config

import (
	"errors"
	"time"
)

// Config 应用配置根结构
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Secret    SecretConfig    `mapstructure:"secret"`
	Output    OutputConfig    `mapstructure:"output"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// SecretConfig 默认 API Key 文件配置
// 文件内容为 {"project_api_key": "..."}，每次请求重新读取，不做进程内缓存
type SecretConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig 生成产物输出目录配置
// 目录下固定包含 refs/（角色参考图）和 scenes/（分镜视频）两个子目录
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// ProvidersConfig 生成提供者配置
type ProvidersConfig struct {
	Image  string       `mapstructure:"image"` // 图片提供者：gemini, ark
	Video  string       `mapstructure:"video"` // 视频提供者：veo
	Gemini GeminiConfig `mapstructure:"gemini"`
	Ark    ArkConfig    `mapstructure:"ark"`
	Veo    VeoConfig    `mapstructure:"veo"`
}

// GeminiConfig Gemini 图片生成配置
// API Key 按请求解析，不在配置里
type GeminiConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// ArkConfig Ark（火山引擎）图片生成配置
type ArkConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// VeoConfig Veo 视频生成配置
type VeoConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Model        string        `mapstructure:"model"`
	PollInterval time.Duration `mapstructure:"poll_interval"` // 任务轮询间隔
	MaxWait      time.Duration `mapstructure:"max_wait"`      // 单个视频任务最大等待时长
}

// LogConfig 日志配置 (Zerolog)
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// Validate 验证配置有效性
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	validImage := map[string]bool{"gemini": true, "ark": true}
	if !validImage[c.Providers.Image] {
		return errors.New("invalid image provider, must be gemini/ark")
	}

	if c.Providers.Video != "veo" {
		return errors.New("invalid video provider, must be veo")
	}

	if c.Output.Dir == "" {
		return errors.New("output dir is required")
	}

	return nil
}
