// @title Pathfinder API
// @version 1.0
// @description 学习路径生成服务：根据职业目标与经验等级生成课程与项目组成的学习路径。

// @host localhost:8080
// @BasePath /

package main

import (
	"flag"
	"log"
	"pathfinder/internal/app"
	"pathfinder/internal/config"
	"pathfinder/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	requireKey := flag.Bool("require-api-key", false, "未配置 API 密钥时拒绝启动，而不是使用模拟数据")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 显式要求密钥时，缺失密钥会在选择生成器时报错
	cfg.AI.RequireAPIKey = cfg.AI.RequireAPIKey || *requireKey

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer logger.Log.Sync()

	application.Run()
}
