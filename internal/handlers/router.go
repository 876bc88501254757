package handlers

import "github.com/gin-gonic/gin"

type Router struct {
	Questions *QuestionHandler
	Quizzes   *QuizHandler
	WS        *WSHandler
	Health    *HealthHandler
}

// Register mounts the admin and user route groups. The prefixes only name
// the audience; nothing here enforces who may call them.
func (rt Router) Register(r gin.IRouter) {
	r.GET("/healthz", rt.Health.Health)
	r.GET("/ws/admin/:topic", rt.WS.HandleWebSocket)

	admin := r.Group("/admin")
	{
		question := admin.Group("/question")
		{
			question.GET("/allQuestions", rt.Questions.ListQuestions)
			question.GET("/categories", rt.Questions.ListCategories)
			question.GET("/categories/summary", rt.Questions.CategorySummary)
			question.GET("/category/:category", rt.Questions.ListByCategory)
			question.GET("/id/:id", rt.Questions.GetQuestion)
			question.POST("/addQuestions", rt.Questions.CreateQuestion)
			question.PUT("/update/:id", rt.Questions.UpdateQuestion)
			question.DELETE("/delete/:id", rt.Questions.DeleteQuestion)
			question.GET("/export", rt.Questions.ExportQuestions)
			question.POST("/import", rt.Questions.ImportQuestions)
		}

		quiz := admin.Group("/quiz")
		{
			quiz.POST("/create", rt.Quizzes.CreateQuiz)
			quiz.GET("/:id", rt.Quizzes.GetQuiz)
			quiz.DELETE("/delete/all", rt.Quizzes.DeleteAllQuizzes)
			quiz.DELETE("/delete/:id", rt.Quizzes.DeleteQuiz)
		}
	}

	user := r.Group("/user")
	{
		question := user.Group("/question")
		{
			question.GET("/allQuestions", rt.Questions.ListQuestions)
			question.GET("/category/:category", rt.Questions.ListByCategory)
			question.GET("/id/:id", rt.Questions.GetQuestion)
		}

		quiz := user.Group("/quiz")
		{
			quiz.GET("/all", rt.Quizzes.ListQuizzes)
			quiz.GET("/get/:id", rt.Quizzes.GetQuizQuestions)
			quiz.POST("/submit/:id", rt.Quizzes.SubmitQuiz)
		}
	}
}
