// Package i18n holds the localized strings, prompt template and mock path per
// supported locale.
package i18n

import (
	"fmt"
	"pathfinder/internal/model"

	"golang.org/x/text/language"
)

type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

var (
	supportedTags    = []language.Tag{language.English, language.Spanish}
	supportedLocales = []Locale{English, Spanish}
	matcher          = language.NewMatcher(supportedTags)
)

// Catalog 单一语言的界面文案、提示词与模拟数据
type Catalog struct {
	Locale Locale
	Tag    language.Tag

	Title           string
	Subtitle        string
	GoalLabel       string
	GoalPlaceholder string
	LevelFieldLabel string
	SubmitLabel     string
	SubmittingLabel string
	ResultHeading   string
	Footer          string
	DefaultGoal     string

	EmptyGoal        string
	InvalidLevel     string
	GenerationFailed string
	Unexpected       string
	InvalidRequest   string

	Levels    map[model.ExperienceLevel]string
	StepTypes map[model.StepType]string

	// promptTemplate 依次填入目标与等级名称
	promptTemplate string
	mock           model.LearningPath
}

var catalogs = map[Locale]*Catalog{
	English: english,
	Spanish: spanish,
}

// For 未知语言回退到英语
func For(l Locale) *Catalog {
	if c, ok := catalogs[l]; ok {
		return c
	}
	return english
}

func Supported() []Locale {
	return append([]Locale(nil), supportedLocales...)
}

// Parse 解析单个语言标识，不支持时返回 false
func Parse(s string) (Locale, bool) {
	for _, l := range supportedLocales {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Match 依次尝试每个偏好（如 ?lang= 与 Accept-Language），都不匹配时返回 fallback
func Match(fallback Locale, prefs ...string) Locale {
	for _, pref := range prefs {
		if pref == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := matcher.Match(tags...)
		if conf != language.No {
			return supportedLocales[idx]
		}
	}
	if _, ok := catalogs[fallback]; ok {
		return fallback
	}
	return English
}

func (c *Catalog) LevelLabel(l model.ExperienceLevel) string {
	if label, ok := c.Levels[l]; ok {
		return label
	}
	return string(l)
}

func (c *Catalog) StepTypeLabel(t model.StepType) string {
	if label, ok := c.StepTypes[t]; ok {
		return label
	}
	return string(t)
}

// Prompt 构造发送给生成服务的自然语言指令
func (c *Catalog) Prompt(goal string, level model.ExperienceLevel) string {
	return fmt.Sprintf(c.promptTemplate, goal, c.LevelLabel(level))
}

// MockPath 返回模拟路径的副本
func (c *Catalog) MockPath() model.LearningPath {
	return c.mock.Clone()
}
