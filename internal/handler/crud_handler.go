package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yourusername/bhp-api/internal/domain/repository"
	"github.com/yourusername/bhp-api/internal/middleware"
	apperrors "github.com/yourusername/bhp-api/internal/pkg/errors"
	"github.com/yourusername/bhp-api/internal/pkg/logger"
)

// Сообщения клиенту для ошибок хранилища, детали пишутся в лог
const (
	InvalidReferenceMessage = "Invalid reference"
	ConflictMessage         = "Record conflicts with existing data"
)

// IDContextKey - ключ, под которым middleware.ExtractIntParam кладет ID ресурса
const IDContextKey = "resourceID"

// Resource описывает ресурс для общего CRUD-обработчика.
// E - сущность, C/U - тела запросов создания/обновления, R - DTO ответа.
type Resource[E any, C any, U any, R any] struct {
	// Name - имя ресурса в URL и в логах ("question", "answer")
	Name string
	// Repo создает репозиторий (и unit of work) для одного запроса
	Repo         func(ctx context.Context) repository.Repository[E]
	CreateEntity func(req *C) *E
	UpdateEntity func(req *U) *E
	UpdateID     func(req *U) int
	EntityID     func(e *E) int
	Response     func(e *E) R
	ResponseList func(items []E) []R
	// CheckRefs проверяет ссылки сущности перед записью (опционально).
	// Ошибка apperrors.ErrValidation превращается в 400.
	CheckRefs func(ctx context.Context, e *E) error
}

// CRUDHandler обрабатывает list/get/create/update/delete для одного ресурса
type CRUDHandler[E any, C any, U any, R any] struct {
	res Resource[E, C, U, R]
	log logger.Logger
}

// NewCRUDHandler создает общий CRUD-обработчик
func NewCRUDHandler[E any, C any, U any, R any](res Resource[E, C, U, R], log logger.Logger) *CRUDHandler[E, C, U, R] {
	return &CRUDHandler[E, C, U, R]{res: res, log: log}
}

// List возвращает все записи ресурса (пустой список, если записей нет)
func (h *CRUDHandler[E, C, U, R]) List(c *gin.Context) {
	h.log.Info("Attempted Get All %ss.", h.res.Name)

	items, err := h.res.Repo(c.Request.Context()).FindAll()
	if err != nil {
		h.handleError(c, err, fmt.Sprintf("%s listing failed", h.res.Name))
		return
	}

	h.log.Info("Successfully got all %ss.", h.res.Name)
	c.JSON(http.StatusOK, h.res.ResponseList(items))
}

// Get возвращает запись по ID
func (h *CRUDHandler[E, C, U, R]) Get(c *gin.Context) {
	id := c.MustGet(IDContextKey).(int)
	h.log.Info("Attempted to get %s id %d", h.res.Name, id)

	item, err := h.res.Repo(c.Request.Context()).FindByID(id)
	if err != nil {
		h.handleError(c, err, fmt.Sprintf("%s with id %d was not loaded", h.res.Name, id))
		return
	}

	h.log.Info("Successfully got %s id %d.", h.res.Name, id)
	c.JSON(http.StatusOK, h.res.Response(item))
}

// Create создает новую запись
func (h *CRUDHandler[E, C, U, R]) Create(c *gin.Context) {
	h.log.Info("%s submission attempted", h.res.Name)

	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("%s data was empty or incomplete: %v", h.res.Name, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request data: %v", err)})
		return
	}

	ctx := c.Request.Context()
	item := h.res.CreateEntity(&req)
	if h.res.CheckRefs != nil {
		if err := h.res.CheckRefs(ctx, item); err != nil {
			h.handleError(c, err, fmt.Sprintf("%s reference check failed", h.res.Name))
			return
		}
	}

	if err := h.res.Repo(ctx).Create(item); err != nil {
		h.handleError(c, err, fmt.Sprintf("%s creation failed", h.res.Name))
		return
	}

	id := h.res.EntityID(item)
	h.log.Info("%s created with id %d", h.res.Name, id)
	c.Header("Location", fmt.Sprintf("/api/%s/%d", h.res.Name, id))
	c.JSON(http.StatusCreated, gin.H{h.res.Name: h.res.Response(item)})
}

// Update полностью заменяет запись.
// Порядок проверок: форма запроса (400) -> существование (404) -> валидация полей (400).
func (h *CRUDHandler[E, C, U, R]) Update(c *gin.Context) {
	id := c.MustGet(IDContextKey).(int)
	h.log.Info("%s update attempted - id %d", h.res.Name, id)

	if id < 1 {
		h.log.Warn("Wrong id %d", id)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid id %d", id)})
		return
	}

	body, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		h.log.Warn("Empty request was submitted")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is required"})
		return
	}

	var req U
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.Warn("Malformed %s update body: %v", h.res.Name, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request data: %v", err)})
		return
	}

	if bodyID := h.res.UpdateID(&req); bodyID != id {
		h.log.Warn("%s update id mismatch: path %d, body %d", h.res.Name, id, bodyID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path id does not match body id"})
		return
	}

	ctx := c.Request.Context()
	repo := h.res.Repo(ctx)

	exists, err := repo.Exists(id)
	if err != nil {
		h.handleError(c, err, fmt.Sprintf("%s existence check failed", h.res.Name))
		return
	}
	if !exists {
		h.log.Warn("%s with id %d not found", h.res.Name, id)
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", h.res.Name)})
		return
	}

	if err := binding.Validator.ValidateStruct(&req); err != nil {
		h.log.Warn("%s data was incomplete: %v", h.res.Name, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request data: %v", err)})
		return
	}

	item := h.res.UpdateEntity(&req)
	if h.res.CheckRefs != nil {
		if err := h.res.CheckRefs(ctx, item); err != nil {
			h.handleError(c, err, fmt.Sprintf("%s reference check failed", h.res.Name))
			return
		}
	}

	if err := repo.Update(item); err != nil {
		h.handleError(c, err, fmt.Sprintf("%s update failed", h.res.Name))
		return
	}

	h.log.Info("%s with id %d successfully updated", h.res.Name, id)
	c.Status(http.StatusNoContent)
}

// Delete удаляет запись. Некорректный ID отклоняется до проверки существования.
func (h *CRUDHandler[E, C, U, R]) Delete(c *gin.Context) {
	id := c.MustGet(IDContextKey).(int)
	h.log.Info("%s delete attempted - id %d", h.res.Name, id)

	if id < 1 {
		h.log.Warn("Wrong id %d", id)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid id %d", id)})
		return
	}

	repo := h.res.Repo(c.Request.Context())

	exists, err := repo.Exists(id)
	if err != nil {
		h.handleError(c, err, fmt.Sprintf("%s existence check failed", h.res.Name))
		return
	}
	if !exists {
		h.log.Warn("%s with id %d not found", h.res.Name, id)
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", h.res.Name)})
		return
	}

	item, err := repo.FindByID(id)
	if err != nil {
		h.handleError(c, err, fmt.Sprintf("%s with id %d was not loaded", h.res.Name, id))
		return
	}

	if err := repo.Delete(item); err != nil {
		h.handleError(c, err, fmt.Sprintf("%s with id %d was not deleted", h.res.Name, id))
		return
	}

	h.log.Info("%s with id %d successfully deleted", h.res.Name, id)
	c.Status(http.StatusNoContent)
}

// handleError переводит ошибки репозитория в HTTP-ответ.
// Детали внутренних ошибок только логируются, клиент получает общее сообщение.
func (h *CRUDHandler[E, C, U, R]) handleError(c *gin.Context, err error, failure string) {
	handleError(c, h.log, h.res.Name, err, failure)
}

func handleError(c *gin.Context, log logger.Logger, resource string, err error, failure string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn("%s: %v", failure, err)
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", resource)})
	case errors.Is(err, apperrors.ErrValidation):
		// Детали (в т.ч. pgErr.Detail) остаются только в логе
		log.Warn("%s: %v", failure, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": InvalidReferenceMessage})
	case errors.Is(err, apperrors.ErrConflict):
		log.Warn("%s: %v", failure, err)
		c.JSON(http.StatusConflict, gin.H{"error": ConflictMessage})
	case errors.Is(err, apperrors.ErrNoChange):
		internalError(c, log, failure)
	default:
		internalError(c, log, fmt.Sprintf("%s - %v", failure, err))
	}
}

func internalError(c *gin.Context, log logger.Logger, message string) {
	log.Error(message)
	c.JSON(http.StatusInternalServerError, gin.H{"error": middleware.InternalErrorMessage})
}
