package i18n

import (
	"pathfinder/internal/model"

	"golang.org/x/text/language"
)

var english = &Catalog{
	Locale: English,
	Tag:    language.English,

	Title:           "Learning Path Generator",
	Subtitle:        "Tell us your career goal and get a step-by-step plan of courses and projects.",
	GoalLabel:       "Your career goal",
	GoalPlaceholder: "e.g. Machine Learning Engineer",
	LevelFieldLabel: "Your experience level",
	SubmitLabel:     "Generate my learning path",
	SubmittingLabel: "Generating...",
	ResultHeading:   "Your personalized learning path",
	Footer:          "Demo project. Paths are generated by AI and may need review.",
	DefaultGoal:     "Frontend Web Developer",

	EmptyGoal:        "please enter a learning goal",
	InvalidLevel:     "please choose a valid experience level",
	GenerationFailed: "could not generate the learning path, try again",
	Unexpected:       "an unexpected error occurred",
	InvalidRequest:   "could not read the submitted form, try again",

	Levels: map[model.ExperienceLevel]string{
		model.Beginner:     "Beginner",
		model.Intermediate: "Intermediate",
		model.Advanced:     "Advanced",
	},
	StepTypes: map[model.StepType]string{
		model.StepCourse:  "Course",
		model.StepProject: "Project",
	},

	promptTemplate: `Based on a user's career goal of "%s" and their experience level "%s",
generate a step-by-step learning path. The path must be clear, logical and progressive.
Include a mix of theory courses to learn concepts and hands-on projects to apply the knowledge.
Use "Course" or "Project" as the type of each step.
The whole path must have between 5 and 8 steps.`,

	mock: model.LearningPath{
		{Step: 1, Title: "HTML Fundamentals", Type: model.StepCourse, Description: "Learn the basic structure of web pages and semantic tags.", Duration: "1 Week"},
		{Step: 2, Title: "Styling with CSS", Type: model.StepCourse, Description: "Master selectors, the box model and flexbox to design attractive sites.", Duration: "2 Weeks"},
		{Step: 3, Title: "Project: Personal Portfolio Page", Type: model.StepProject, Description: "Build your first static web page to showcase your skills.", Duration: "1 Week"},
		{Step: 4, Title: "Basic JavaScript", Type: model.StepCourse, Description: "Introduce interactivity with variables, functions and DOM manipulation.", Duration: "3 Weeks"},
		{Step: 5, Title: "Project: Interactive Calculator", Type: model.StepProject, Description: "Apply your JavaScript knowledge to build a working calculator.", Duration: "1 Week"},
	},
}
