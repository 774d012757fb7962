package model

import (
	"testing"

	"pathfinder/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageState(t *testing.T) {
	s := NewPageState("Frontend Web Developer")
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Equal(t, "Frontend Web Developer", s.Goal)
	assert.Equal(t, Beginner, s.Level)
	assert.True(t, s.CanSubmit())
	assert.False(t, s.HasPath())
}

func TestPageState_RejectsBlankGoal(t *testing.T) {
	s := NewPageState("x")
	err := s.Begin("   ", Advanced)
	assert.ErrorIs(t, err, util.ErrEmptyGoal)
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Equal(t, Advanced, s.Level)

	s.Fail("please enter a learning goal")
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.True(t, s.CanSubmit())
}

func TestPageState_RejectsInvalidLevel(t *testing.T) {
	s := NewPageState("x")
	err := s.Begin("Data Analyst", ExperienceLevel("Guru"))
	assert.ErrorIs(t, err, util.ErrInvalidLevel)
	assert.Equal(t, Beginner, s.Level)
}

func TestPageState_SuccessFlow(t *testing.T) {
	s := NewPageState("x")
	s.Fail("old error")

	require.NoError(t, s.Begin("Data Analyst", Intermediate))
	assert.Equal(t, PhaseSubmitting, s.Phase)
	assert.Empty(t, s.Error)
	assert.False(t, s.CanSubmit())

	path := LearningPath{{Step: 1}, {Step: 2}, {Step: 3}}
	s.Succeed(path)
	assert.Equal(t, PhaseSuccess, s.Phase)
	assert.True(t, s.HasPath())
	assert.True(t, s.Connector(0))
	assert.True(t, s.Connector(1))
	assert.False(t, s.Connector(2))
	assert.False(t, s.Connector(-1))
}

func TestPageState_ResubmitClearsResult(t *testing.T) {
	s := NewPageState("x")
	require.NoError(t, s.Begin("a", Beginner))
	s.Succeed(LearningPath{{Step: 1}})

	require.NoError(t, s.Begin("b", Advanced))
	assert.Nil(t, s.Path)
	assert.Equal(t, PhaseSubmitting, s.Phase)

	s.Fail("could not generate the learning path, try again")
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.Nil(t, s.Path)
	assert.Equal(t, "b", s.Goal)
	assert.True(t, s.CanSubmit())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "submitting", PhaseSubmitting.String())
	assert.Equal(t, "success", PhaseSuccess.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestPageState_BeginWhileSubmittingRestarts(t *testing.T) {
	s := NewPageState("x")
	require.NoError(t, s.Begin("a", Beginner))
	require.NoError(t, s.Begin("b", Intermediate))
	assert.Equal(t, PhaseSubmitting, s.Phase)
	assert.Equal(t, "b", s.Goal)
	assert.Equal(t, Intermediate, s.Level)
}
