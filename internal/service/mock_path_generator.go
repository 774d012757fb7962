package service

import (
	"context"
	"pathfinder/internal/i18n"
	"pathfinder/internal/model"
	"pathfinder/internal/util"
	"pathfinder/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// MockPathGenerator 无密钥时使用：延迟后返回固定的 5 步路径，忽略目标与等级
type MockPathGenerator struct {
	delay time.Duration
}

func NewMockPathGenerator(delay time.Duration) *MockPathGenerator {
	return &MockPathGenerator{delay: delay}
}

func (g *MockPathGenerator) Name() string {
	return util.GeneratorMock
}

func (g *MockPathGenerator) Generate(ctx context.Context, goal string, level model.ExperienceLevel, locale i18n.Locale) (model.LearningPath, error) {
	logger.Log.Debug("Using mock learning path because no API key is configured",
		zap.String("goal", goal), zap.String("level", string(level)))

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, &GenerationError{Cause: ctx.Err()}
		}
	}

	return i18n.For(locale).MockPath(), nil
}
