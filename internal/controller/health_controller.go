package controller

import (
	"pathfinder/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Generator string
}

func NewHealthController(generator string) *HealthController {
	return &HealthController{Generator: generator}
}

// @Summary 健康检查
// @Description 检查服务状态，并返回当前使用的生成器（mock 或 gemini）
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"generator": c.Generator,
		},
	})
}
