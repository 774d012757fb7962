package model

import "pathfinder/internal/util"

// Phase 页面状态：Idle → Submitting → (Success | Failed)，每次提交重新进入 Submitting
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

type PageState struct {
	Phase Phase
	Goal  string
	Level ExperienceLevel
	Path  LearningPath
	Error string
}

func NewPageState(defaultGoal string) *PageState {
	return &PageState{
		Phase: PhaseIdle,
		Goal:  defaultGoal,
		Level: Beginner,
	}
}

// Begin 校验输入并进入 Submitting。校验失败时状态不变，由调用方调用 Fail 展示提示。
// 重复提交由页面在请求期间禁用按钮来避免，这里不做限制。
func (s *PageState) Begin(goal string, level ExperienceLevel) error {
	s.Goal = goal
	if level.Valid() {
		s.Level = level
	}

	if err := ValidateGoal(goal); err != nil {
		return err
	}
	if !level.Valid() {
		return util.ErrInvalidLevel
	}

	s.Error = ""
	s.Path = nil
	s.Phase = PhaseSubmitting
	return nil
}

func (s *PageState) Succeed(path LearningPath) {
	s.Path = path
	s.Error = ""
	s.Phase = PhaseSuccess
}

func (s *PageState) Fail(message string) {
	s.Path = nil
	s.Error = message
	s.Phase = PhaseFailed
}

func (s *PageState) CanSubmit() bool {
	return s.Phase != PhaseSubmitting
}

func (s *PageState) HasPath() bool {
	return s.Phase == PhaseSuccess && len(s.Path) > 0
}

// Connector 除最后一步外每步后面画连接线
func (s *PageState) Connector(i int) bool {
	return i >= 0 && i < len(s.Path)-1
}
