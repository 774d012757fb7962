package i18n

import (
	"testing"

	"pathfinder/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, Spanish, Match(English, "es"))
	assert.Equal(t, Spanish, Match(English, "", "es-MX,es;q=0.9,en;q=0.5"))
	assert.Equal(t, English, Match(Spanish, "en-GB"))
	assert.Equal(t, Spanish, Match(English, "fr", "es"))
	assert.Equal(t, English, Match(English, "de-DE"))
	assert.Equal(t, Spanish, Match(Spanish))
	assert.Equal(t, English, Match(Locale("xx")))
	assert.Equal(t, English, Match(English, ";;;"))
}

func TestFor_FallsBackToEnglish(t *testing.T) {
	assert.Same(t, english, For("xx"))
	assert.Same(t, spanish, For(Spanish))
}

func TestParse(t *testing.T) {
	l, ok := Parse("es")
	assert.True(t, ok)
	assert.Equal(t, Spanish, l)

	_, ok = Parse("fr")
	assert.False(t, ok)
}

func TestCatalogsAreComplete(t *testing.T) {
	for _, l := range Supported() {
		c := For(l)
		for _, level := range model.ExperienceLevels() {
			assert.NotEmpty(t, c.Levels[level], "%s level %s", l, level)
		}
		assert.NotEmpty(t, c.StepTypes[model.StepCourse])
		assert.NotEmpty(t, c.StepTypes[model.StepProject])
		assert.NotEmpty(t, c.LevelFieldLabel)
		assert.NotEmpty(t, c.InvalidRequest)
		assert.NotEmpty(t, c.EmptyGoal)
		assert.NotEmpty(t, c.GenerationFailed)
		assert.NotEmpty(t, c.DefaultGoal)
		assert.Len(t, c.MockPath(), 5)
	}
}

func TestPromptEmbedsGoalAndLevel(t *testing.T) {
	p := For(English).Prompt("Data Analyst", model.Intermediate)
	assert.Contains(t, p, `"Data Analyst"`)
	assert.Contains(t, p, `"Intermediate"`)
	assert.Contains(t, p, "between 5 and 8 steps")

	p = For(Spanish).Prompt("Analista de Datos", model.Advanced)
	assert.Contains(t, p, `"Avanzado"`)
	assert.Contains(t, p, "entre 5 y 8 pasos")
}

func TestEnglishMockTitles(t *testing.T) {
	titles := make([]string, 0, 5)
	for _, s := range For(English).MockPath() {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"HTML Fundamentals",
		"Styling with CSS",
		"Project: Personal Portfolio Page",
		"Basic JavaScript",
		"Project: Interactive Calculator",
	}, titles)
}

func TestMockPathIsCopy(t *testing.T) {
	p := For(English).MockPath()
	p[0].Title = "mutated"
	assert.Equal(t, "HTML Fundamentals", For(English).MockPath()[0].Title)
}

func TestLabelsFallBackToRaw(t *testing.T) {
	c := For(English)
	assert.Equal(t, "Workshop", c.StepTypeLabel(model.StepType("Workshop")))
	assert.Equal(t, "Guru", c.LevelLabel(model.ExperienceLevel("Guru")))
	assert.Equal(t, "Proyecto", For(Spanish).StepTypeLabel(model.StepProject))
	assert.Equal(t, "Intermedio", For(Spanish).LevelLabel(model.Intermediate))
	assert.Equal(t, "Your experience level", c.LevelFieldLabel)
}
