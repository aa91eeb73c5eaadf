package handler

import (
	"log"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yourusername/bhp-api/internal/handler/helper"
)

var registerValidatorsOnce sync.Once

// registerValidators регистрирует собственные теги валидации в движке gin
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("[Validation] Движок валидации gin не является go-playground/validator, теги не зарегистрированы")
			return
		}
		// answerno: ровно одна буква (A, B, C, D...)
		if err := v.RegisterValidation("answerno", func(fl validator.FieldLevel) bool {
			_, ok := helper.NormalizeAnswerNo(fl.Field().String())
			return ok
		}); err != nil {
			log.Printf("[Validation] Не удалось зарегистрировать тег answerno: %v", err)
		}
	})
}
