package i18n

import (
	"pathfinder/internal/model"

	"golang.org/x/text/language"
)

var spanish = &Catalog{
	Locale: Spanish,
	Tag:    language.Spanish,

	Title:           "Generador de Rutas de Aprendizaje",
	Subtitle:        "Indica tu objetivo profesional y recibe un plan paso a paso de cursos y proyectos.",
	GoalLabel:       "Tu Objetivo Profesional",
	GoalPlaceholder: "Ej: Ingeniero de Machine Learning",
	LevelFieldLabel: "Tu Nivel de Experiencia",
	SubmitLabel:     "Generar mi Ruta de Aprendizaje",
	SubmittingLabel: "Generando...",
	ResultHeading:   "Tu Ruta de Aprendizaje Personalizada",
	Footer:          "Proyecto de demostración. Las rutas las genera una IA y pueden requerir revisión.",
	DefaultGoal:     "Desarrollador Web Frontend",

	EmptyGoal:        "Por favor, ingresa un objetivo de aprendizaje.",
	InvalidLevel:     "Por favor, elige un nivel de experiencia válido.",
	GenerationFailed: "No se pudo generar la ruta de aprendizaje. Por favor, intenta de nuevo.",
	Unexpected:       "Ocurrió un error inesperado.",
	InvalidRequest:   "No se pudo leer el formulario enviado. Por favor, intenta de nuevo.",

	Levels: map[model.ExperienceLevel]string{
		model.Beginner:     "Principiante",
		model.Intermediate: "Intermedio",
		model.Advanced:     "Avanzado",
	},
	StepTypes: map[model.StepType]string{
		model.StepCourse:  "Curso",
		model.StepProject: "Proyecto",
	},

	promptTemplate: `Basado en el objetivo de carrera de un usuario de "%s" y su nivel de experiencia "%s",
genera una ruta de aprendizaje paso a paso. La ruta debe ser clara, lógica y progresiva.
Incluye una mezcla de cursos teóricos para aprender conceptos y proyectos prácticos para aplicar el conocimiento.
Usa "Curso" o "Proyecto" como tipo de cada paso.
La ruta completa debe tener entre 5 y 8 pasos.`,

	mock: model.LearningPath{
		{Step: 1, Title: "Fundamentos de HTML", Type: model.StepCourse, Description: "Aprende la estructura básica de las páginas web y las etiquetas semánticas.", Duration: "1 Semana"},
		{Step: 2, Title: "Estilismo con CSS", Type: model.StepCourse, Description: "Domina selectores, el modelo de caja y flexbox para diseñar sitios atractivos.", Duration: "2 Semanas"},
		{Step: 3, Title: "Proyecto: Página de Portafolio Personal", Type: model.StepProject, Description: "Crea tu primera página web estática para mostrar tus habilidades.", Duration: "1 Semana"},
		{Step: 4, Title: "JavaScript Básico", Type: model.StepCourse, Description: "Introduce la interactividad con variables, funciones y manipulación del DOM.", Duration: "3 Semanas"},
		{Step: 5, Title: "Proyecto: Calculadora Interactiva", Type: model.StepProject, Description: "Aplica tus conocimientos de JavaScript para construir una calculadora funcional.", Duration: "1 Semana"},
	},
}
