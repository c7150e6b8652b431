package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/AC215-TarAIntino/Video-Generator/docs"
	"github.com/AC215-TarAIntino/Video-Generator/internal/config"
	"github.com/AC215-TarAIntino/Video-Generator/internal/handler"
	"github.com/AC215-TarAIntino/Video-Generator/internal/handler/generate"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/ffmpeg"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/output"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline/providers"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/secrets"
	"github.com/AC215-TarAIntino/Video-Generator/internal/server/middleware"
)

// Server HTTP 服务器
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
}

// New 创建服务器实例
func New(cfg *config.Config) (*Server, error) {
	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建 Gin 引擎
	engine := gin.New()

	// 组装生成流水线
	imageProvider, err := providers.NewImageProvider(&cfg.Providers)
	if err != nil {
		return nil, err
	}
	videoProvider, err := providers.NewVideoProvider(&cfg.Providers)
	if err != nil {
		return nil, err
	}

	layout := output.NewLayout(cfg.Output.Dir)
	generator := pipeline.NewGenerator(imageProvider, videoProvider, ffmpeg.NewClient(), layout)

	log.Info().
		Str("image_provider", cfg.Providers.Image).
		Str("video_provider", cfg.Providers.Video).
		Str("output_dir", cfg.Output.Dir).
		Msg("pipeline initialized")

	srv := &Server{
		cfg:    cfg,
		engine: engine,
	}

	// 设置路由
	srv.setupRoutes(generator, secrets.NewResolver(cfg.Secret.Path), layout)

	return srv, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(p pipeline.Pipeline, resolver *secrets.Resolver, layout *output.Layout) {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS())

	// 健康检查
	healthHandler := handler.NewHealthHandler()
	s.engine.GET("/health", healthHandler.Health)

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 生成接口
	generateHandler := generate.NewHandler(p, resolver, layout)
	generateGroup := s.engine.Group("/generate")
	{
		generateGroup.POST("/character-references", generateHandler.CharacterReferences)
		generateGroup.POST("/scene-videos", generateHandler.SceneVideos)
		generateGroup.POST("/trailer", generateHandler.Trailer)
	}
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
