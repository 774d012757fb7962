package controller

import (
	"errors"
	"html/template"
	"net/http"
	"pathfinder/internal/i18n"
	"pathfinder/internal/model"
	"pathfinder/internal/service"
	"pathfinder/internal/util"
	"pathfinder/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageTemplate = "index.html"

type LearningPathController struct {
	Generator     service.PathGenerator
	DefaultLocale i18n.Locale
}

func NewLearningPathController(gen service.PathGenerator, defaultLocale i18n.Locale) *LearningPathController {
	return &LearningPathController{Generator: gen, DefaultLocale: defaultLocale}
}

// GenerateRequest 生成学习路径请求
type GenerateRequest struct {
	Goal  string `json:"goal" form:"goal" example:"Frontend Web Developer"`
	Level string `json:"level" form:"level" example:"Beginner"`
}

type LevelOption struct {
	Value    model.ExperienceLevel `json:"value"`
	Label    string                `json:"label"`
	Selected bool                  `json:"-"`
}

type pageView struct {
	Locale i18n.Locale
	T      *i18n.Catalog
	State  *model.PageState
	Levels []LevelOption
}

// TemplateFuncs 页面模板使用的函数
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"iconBook": func() template.HTML { return iconBook },
		"iconCode": func() template.HTML { return iconCode },
	}
}

func (c *LearningPathController) locale(ctx *gin.Context) i18n.Locale {
	return i18n.Match(c.DefaultLocale, ctx.Query("lang"), ctx.GetHeader("Accept-Language"))
}

func levelOptions(catalog *i18n.Catalog, selected model.ExperienceLevel) []LevelOption {
	levels := model.ExperienceLevels()
	opts := make([]LevelOption, 0, len(levels))
	for _, l := range levels {
		opts = append(opts, LevelOption{Value: l, Label: catalog.LevelLabel(l), Selected: l == selected})
	}
	return opts
}

func (c *LearningPathController) render(ctx *gin.Context, status int, locale i18n.Locale, state *model.PageState) {
	catalog := i18n.For(locale)
	ctx.HTML(status, pageTemplate, pageView{
		Locale: locale,
		T:      catalog,
		State:  state,
		Levels: levelOptions(catalog, state.Level),
	})
}

// @Summary 学习路径页面
// @Tags 页面
// @Produce html
// @Param lang query string false "语言 (en, es)"
// @Success 200 {string} string "HTML"
// @Router / [get]
func (c *LearningPathController) ShowPage(ctx *gin.Context) {
	locale := c.locale(ctx)
	c.render(ctx, http.StatusOK, locale, model.NewPageState(i18n.For(locale).DefaultGoal))
}

// @Summary 提交表单并渲染学习路径
// @Tags 页面
// @Accept x-www-form-urlencoded
// @Produce html
// @Param goal formData string true "职业目标"
// @Param level formData string false "经验等级" Enums(Beginner, Intermediate, Advanced)
// @Success 200 {string} string "HTML"
// @Router / [post]
func (c *LearningPathController) SubmitForm(ctx *gin.Context) {
	locale := c.locale(ctx)
	catalog := i18n.For(locale)

	state := model.NewPageState(catalog.DefaultGoal)

	var req GenerateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		logger.Log.Warn("Failed to bind learning path form",
			zap.Error(err), zap.String("request_id", ctx.GetString(util.ContextRequestID)))
		state.Fail(catalog.InvalidRequest)
		c.render(ctx, http.StatusBadRequest, locale, state)
		return
	}

	level := model.Beginner
	if strings.TrimSpace(req.Level) != "" {
		level, _ = model.ParseExperienceLevel(req.Level)
	}
	if err := state.Begin(req.Goal, level); err != nil {
		state.Fail(c.validationMessage(catalog, err))
		c.render(ctx, http.StatusOK, locale, state)
		return
	}

	path, err := c.Generator.Generate(ctx.Request.Context(), req.Goal, level, locale)
	if err != nil {
		state.Fail(c.failureMessage(ctx, catalog, err))
		c.render(ctx, http.StatusOK, locale, state)
		return
	}

	state.Succeed(path)
	c.render(ctx, http.StatusOK, locale, state)
}

// @Summary 生成学习路径
// @Description 根据职业目标与经验等级生成 5 到 8 步的学习路径；未配置 API 密钥时返回模拟数据
// @Tags 学习路径
// @Accept json
// @Produce json
// @Param lang query string false "语言 (en, es)"
// @Param body body GenerateRequest true "目标与等级"
// @Success 200 {object} util.Response{data=[]model.LearningStep}
// @Failure 400 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /api/learning-path [post]
func (c *LearningPathController) Generate(ctx *gin.Context) {
	locale := c.locale(ctx)
	catalog := i18n.For(locale)

	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := model.ValidateGoal(req.Goal); err != nil {
		util.BadRequest(ctx, catalog.EmptyGoal)
		return
	}

	level := model.Beginner
	if strings.TrimSpace(req.Level) != "" {
		parsed, err := model.ParseExperienceLevel(req.Level)
		if err != nil {
			util.BadRequest(ctx, catalog.InvalidLevel)
			return
		}
		level = parsed
	}

	path, err := c.Generator.Generate(ctx.Request.Context(), req.Goal, level, locale)
	if err != nil {
		if service.IsGenerationError(err) {
			util.BadGateway(ctx, catalog.GenerationFailed)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, path)
}

// @Summary 经验等级列表
// @Tags 学习路径
// @Produce json
// @Param lang query string false "语言 (en, es)"
// @Success 200 {object} util.Response{data=[]LevelOption}
// @Router /api/levels [get]
func (c *LearningPathController) ListLevels(ctx *gin.Context) {
	util.Success(ctx, levelOptions(i18n.For(c.locale(ctx)), ""))
}

func (c *LearningPathController) validationMessage(catalog *i18n.Catalog, err error) string {
	switch {
	case errors.Is(err, util.ErrEmptyGoal):
		return catalog.EmptyGoal
	case errors.Is(err, util.ErrInvalidLevel):
		return catalog.InvalidLevel
	}
	return catalog.Unexpected
}

func (c *LearningPathController) failureMessage(ctx *gin.Context, catalog *i18n.Catalog, err error) string {
	if service.IsGenerationError(err) {
		return catalog.GenerationFailed
	}
	logger.Log.Error("Unexpected error generating learning path",
		zap.Error(err), zap.String("request_id", ctx.GetString(util.ContextRequestID)))
	return catalog.Unexpected
}
