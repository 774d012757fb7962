package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pathfinder/internal/config"
	"pathfinder/internal/controller"
	"pathfinder/internal/i18n"
	"pathfinder/internal/middleware"
	"pathfinder/internal/service"
	"pathfinder/pkg/configwatcher"
	"pathfinder/pkg/logger"
	"pathfinder/pkg/monitoring"
	"pathfinder/pkg/security"
	"pathfinder/pkg/tracing"
	"pathfinder/web"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Generator       service.PathGenerator
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)

	// 后台goroutine（限流清理、配置监听）随ctx退出
	ctx  context.Context
	stop context.CancelFunc
}

type controllers struct {
	learningPath *controller.LearningPathController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// initGenerator 启动时一次性选定生成策略，客户端显式注入
func (a *App) initGenerator(ctx context.Context, cfg *config.Config) (service.PathGenerator, error) {
	var client service.TextGenerator
	if cfg.AI.APIKey != "" {
		gc, err := service.NewGeminiClient(ctx, cfg.AI)
		if err != nil {
			return nil, err
		}
		client = gc
	}
	return service.NewPathGenerator(cfg.AI, client)
}

func (a *App) initControllers(cfg *config.Config) *controllers {
	return &controllers{
		learningPath: controller.NewLearningPathController(a.Generator, i18n.Match(i18n.English, cfg.Server.DefaultLocale)),
		health:       controller.NewHealthController(a.Generator.Name()),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	}

	ctx, stop := context.WithCancel(context.Background())
	app := &App{Config: cfg, ctx: ctx, stop: stop}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			stop()
			return nil, err
		}
		app.tracerProvider = tp
	}

	gen, err := app.initGenerator(ctx, cfg)
	if err != nil {
		app.Close(context.Background())
		return nil, err
	}
	app.Generator = gen
	logger.Log.Info("Learning path generator selected", zap.String("generator", gen.Name()))

	// 监控初始化
	monitoring.Init()

	tmpl, err := web.Templates(controller.TemplateFuncs())
	if err != nil {
		app.Close(context.Background())
		return nil, err
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(ctx, router, app.initControllers(cfg), cfg)

	app.RegisterConfigCallback(func(c *config.Config) {
		logger.SetMode(c.Server.Mode)
	})

	return app, nil
}

func (a *App) watchConfig(ctx context.Context) {
	if a.Config.ConfigFile == "" {
		return
	}
	go func() {
		err := configwatcher.WatchConfig(ctx, a.Config.ConfigFile, func(cfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(cfg)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

// Close 停止后台goroutine并刷新追踪数据，可重复调用
func (a *App) Close(ctx context.Context) {
	a.stop()
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
		a.tracerProvider = nil
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	a.watchConfig(a.ctx)

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	a.Close(shutdownCtx)

	logger.Log.Info("Server exiting")
}
