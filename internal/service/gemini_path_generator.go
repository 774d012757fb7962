package service

import (
	"context"
	"encoding/json"
	"fmt"
	"pathfinder/internal/config"
	"pathfinder/internal/i18n"
	"pathfinder/internal/model"
	"pathfinder/internal/util"
	"pathfinder/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// GeminiPathGenerator 调用生成服务并以结构化 JSON 约束输出
type GeminiPathGenerator struct {
	client      TextGenerator
	model       string
	temperature float32
}

func NewGeminiPathGenerator(client TextGenerator, cfg config.AIConfig) *GeminiPathGenerator {
	g := &GeminiPathGenerator{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
	if g.model == "" {
		g.model = defaultModel
	}
	return g
}

func (g *GeminiPathGenerator) Name() string {
	return util.GeneratorGemini
}

func (g *GeminiPathGenerator) Generate(ctx context.Context, goal string, level model.ExperienceLevel, locale i18n.Locale) (model.LearningPath, error) {
	req := GenerationRequest{
		Model:       g.model,
		Prompt:      i18n.For(locale).Prompt(goal, level),
		Schema:      LearningPathSchema(),
		MIMEType:    util.MimeJSON,
		Temperature: g.temperature,
	}

	text, err := g.client.GenerateText(ctx, req)
	if err != nil {
		return nil, g.fail(goal, level, err)
	}

	path, err := ParseLearningPath(text)
	if err != nil {
		return nil, g.fail(goal, level, err)
	}
	return path, nil
}

func (g *GeminiPathGenerator) fail(goal string, level model.ExperienceLevel, cause error) error {
	logger.Log.Error("Failed to generate learning path",
		zap.String("model", g.model),
		zap.String("goal", goal),
		zap.String("level", string(level)),
		zap.Error(cause),
	)
	return &GenerationError{Cause: cause}
}

// LearningPathSchema 响应必须是步骤对象数组，五个字段都必填
func LearningPathSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"step": {
					Type:        genai.TypeInteger,
					Description: "Sequential step number, starting at 1.",
				},
				"title": {
					Type:        genai.TypeString,
					Description: "Concise name of the course or project.",
				},
				"type": {
					Type:        genai.TypeString,
					Description: `Kind of activity: "Course" or "Project".`,
				},
				"description": {
					Type:        genai.TypeString,
					Description: "One-sentence description of what will be learned or built.",
				},
				"duration": {
					Type:        genai.TypeString,
					Description: `Estimated time to complete the step, e.g. "2 weeks", "30 hours".`,
				},
			},
			Required:         []string{"step", "title", "type", "description", "duration"},
			PropertyOrdering: []string{"step", "title", "type", "description", "duration"},
		},
	}
}

// ParseLearningPath 解析模型输出：顶层为对象数组且 step 从 1 起，结果按 step 升序
func ParseLearningPath(text string) (model.LearningPath, error) {
	data := []byte(strings.TrimSpace(text))

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnexpectedShape, err)
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T", util.ErrUnexpectedShape, raw)
	}
	for i, item := range items {
		if _, ok := item.(map[string]interface{}); !ok {
			return nil, fmt.Errorf("%w: element %d is %T", util.ErrUnexpectedShape, i, item)
		}
	}

	var path model.LearningPath
	if err := json.Unmarshal(data, &path); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnexpectedShape, err)
	}

	for i := range path {
		if path[i].Step < 1 {
			return nil, fmt.Errorf("%w: element %d has step %d", util.ErrUnexpectedShape, i, path[i].Step)
		}
		path[i].Type = model.NormalizeStepType(string(path[i].Type))
	}
	path.SortByStep()
	return path, nil
}
