package service

import (
	"context"
	"fmt"
	"pathfinder/internal/config"
	"pathfinder/internal/util"
	"strings"

	"google.golang.org/genai"
)

// GenerationRequest 一次结构化输出调用的参数
type GenerationRequest struct {
	Model       string
	Prompt      string
	Schema      *genai.Schema
	MIMEType    string
	Temperature float32
}

// TextGenerator 外部生成服务，返回模型输出的原始文本
type TextGenerator interface {
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
}

// GeminiClient 基于 google genai SDK 的 TextGenerator
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, cfg config.AIConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, util.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

func (c *GeminiClient) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	temperature := req.Temperature
	resp, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: req.MIMEType,
		ResponseSchema:   req.Schema,
		Temperature:      &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", util.ErrEmptyResponse
	}
	return text, nil
}
