package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/bhp-api/internal/middleware"
	"github.com/yourusername/bhp-api/pkg/auth"
)

// Router собирает зависимости маршрутов API
type Router struct {
	Questions *QuestionHandler
	Answers   *AnswerHandler
	Health    *HealthHandler
	Auth      *middleware.AuthMiddleware
	// WriteLimit применяется к изменяющим запросам; nil - без ограничения
	WriteLimit gin.HandlerFunc
}

// Register настраивает маршруты на переданном движке
func (r *Router) Register(engine *gin.Engine) {
	engine.GET("/health", r.Health.Health)

	admin := []gin.HandlerFunc{r.Auth.RequireAuth(), r.Auth.RequireRoles(auth.RoleAdministrator)}
	adminOrCustomer := []gin.HandlerFunc{r.Auth.RequireAuth(), r.Auth.RequireRoles(auth.RoleAdministrator, auth.RoleCustomer)}

	api := engine.Group("/api")

	// Вопросы
	questions := api.Group("/question")
	{
		questions.GET("", r.Questions.List)
		questions.GET("/export", append(admin, r.Questions.Export)...)
		questions.POST("", r.write(admin, r.Questions.Create)...)

		questionWithID := questions.Group("/:id")
		questionWithID.Use(middleware.ExtractIntParam("id", IDContextKey))
		{
			questionWithID.GET("", r.Questions.Get)
			questionWithID.GET("/answers", r.Questions.ListAnswers)
			questionWithID.PUT("", r.write(admin, r.Questions.Update)...)
			questionWithID.DELETE("", r.write(admin, r.Questions.Delete)...)
		}
	}

	// Ответы
	answers := api.Group("/answer")
	{
		answers.GET("", r.Answers.List)
		answers.POST("", r.write(admin, r.Answers.Create)...)

		answerWithID := answers.Group("/:id")
		answerWithID.Use(middleware.ExtractIntParam("id", IDContextKey))
		{
			answerWithID.GET("", r.Answers.Get)
			answerWithID.PUT("", r.write(adminOrCustomer, r.Answers.Update)...)
			answerWithID.DELETE("", r.write(admin, r.Answers.Delete)...)
		}
	}
}

// write собирает цепочку: аутентификация/роли -> лимит (если включен) -> обработчик.
// Лимит считается по пользователю, поэтому идет после RequireAuth.
func (r *Router) write(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guards)+2)
	chain = append(chain, guards...)
	if r.WriteLimit != nil {
		chain = append(chain, r.WriteLimit)
	}
	return append(chain, h)
}
