package service

import (
	"context"
	"errors"
	"pathfinder/internal/config"
	"pathfinder/internal/i18n"
	"pathfinder/internal/model"
	"pathfinder/internal/util"
	"pathfinder/pkg/logger"
	"pathfinder/pkg/monitoring"
	"pathfinder/pkg/tracing"
	"time"

	"go.uber.org/zap"
)

const generationFailedMessage = "could not generate path, try again"

// GenerationError 对外只暴露通用提示，原因仅用于日志与 errors.Is
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return generationFailedMessage
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

// PathGenerator 根据目标与经验等级生成学习路径
type PathGenerator interface {
	Generate(ctx context.Context, goal string, level model.ExperienceLevel, locale i18n.Locale) (model.LearningPath, error)
	Name() string
}

// NewPathGenerator 启动时选定策略：有密钥用 Gemini，否则用模拟数据
func NewPathGenerator(cfg config.AIConfig, client TextGenerator) (PathGenerator, error) {
	var gen PathGenerator
	switch {
	case cfg.APIKey == "" && cfg.RequireAPIKey:
		return nil, util.ErrMissingAPIKey
	case cfg.APIKey != "" && client == nil:
		return nil, errors.New("AI API key configured but no client provided")
	case cfg.APIKey != "":
		gen = NewGeminiPathGenerator(client, cfg)
	default:
		logger.Log.Warn("AI API key not set, serving mock learning paths",
			zap.Duration("mock_delay", cfg.MockDelay))
		gen = NewMockPathGenerator(cfg.MockDelay)
	}
	return &observedGenerator{next: gen}, nil
}

// observedGenerator 为每次生成记录 trace 与指标
type observedGenerator struct {
	next PathGenerator
}

func (g *observedGenerator) Name() string {
	return g.next.Name()
}

func (g *observedGenerator) Generate(ctx context.Context, goal string, level model.ExperienceLevel, locale i18n.Locale) (model.LearningPath, error) {
	ctx, span := tracing.StartGeneration(ctx, g.next.Name(), string(level), string(locale))

	start := time.Now()
	path, err := g.next.Generate(ctx, goal, level, locale)
	monitoring.ObserveGeneration(g.next.Name(), err, time.Since(start))
	tracing.EndGeneration(span, len(path), err)

	if err != nil {
		return nil, err
	}
	return path, nil
}
