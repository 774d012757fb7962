package model

import (
	"fmt"
	"pathfinder/internal/util"
	"sort"
	"strings"
)

// ExperienceLevel 经验等级，取值同时用作表单值
type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "Beginner"
	Intermediate ExperienceLevel = "Intermediate"
	Advanced     ExperienceLevel = "Advanced"
)

func ExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{Beginner, Intermediate, Advanced}
}

func (l ExperienceLevel) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// ParseExperienceLevel 不区分大小写
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	s = strings.TrimSpace(s)
	for _, l := range ExperienceLevels() {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", util.ErrInvalidLevel, s)
}

type StepType string

const (
	StepCourse  StepType = "Course"
	StepProject StepType = "Project"
)

var stepTypeAliases = map[string]StepType{
	"course":   StepCourse,
	"curso":    StepCourse,
	"project":  StepProject,
	"proyecto": StepProject,
}

// NormalizeStepType 把模型返回的类型（含西班牙语）映射为规范值，未知值原样保留
func NormalizeStepType(s string) StepType {
	if t, ok := stepTypeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}
	return StepType(s)
}

func (t StepType) IsCourse() bool {
	return t == StepCourse
}

// swagger:model LearningStep
type LearningStep struct {
	Step        int      `json:"step"`
	Title       string   `json:"title"`
	Type        StepType `json:"type"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
}

// LearningPath 按 Step 升序的步骤序列
type LearningPath []LearningStep

func (p LearningPath) Len() int {
	return len(p)
}

// SortByStep 稳定排序，生成服务不保证顺序
func (p LearningPath) SortByStep() {
	sort.SliceStable(p, func(i, j int) bool {
		return p[i].Step < p[j].Step
	})
}

func (p LearningPath) Clone() LearningPath {
	if p == nil {
		return nil
	}
	out := make(LearningPath, len(p))
	copy(out, p)
	return out
}

// ValidateGoal 目标不能为空或全是空白
func ValidateGoal(goal string) error {
	if strings.TrimSpace(goal) == "" {
		return util.ErrEmptyGoal
	}
	return nil
}
