package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
	"github.com/yourusername/studyquiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/studyquiz-api/internal/pkg/errors"
	"github.com/yourusername/studyquiz-api/internal/service"
)

// QuizHandler обрабатывает запросы генерации квизов, результатов и истории
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик квизов
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// GenerateQuizRequest представляет запрос на генерацию квиза
type GenerateQuizRequest struct {
	ChapterIDs []uint `json:"chapter_ids" binding:"required,min=1"`
}

// GenerateQuiz обрабатывает запрос на генерацию квиза по выбранным главам
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	courseID := c.MustGet("courseID").(uint)

	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.GenerateQuiz(userID, courseID, req.ChapterIDs)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGeneratedQuizResponse(quiz))
}

// SubmitAnswerRequest представляет один ответ в запросе на сдачу результата
type SubmitAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	ChapterID  uint   `json:"chapter_id" binding:"required"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
	IsReview   bool   `json:"is_review"`
}

// SubmitResultRequest представляет запрос на сдачу результата квиза.
// Пустой список ответов отклоняется сервисом (валидация), а не биндингом,
// поэтому ограничения min здесь нет.
type SubmitResultRequest struct {
	SessionID *uint                 `json:"session_id"`
	Answers   []SubmitAnswerRequest `json:"answers"`
}

// SubmitResult обрабатывает сдачу самооценённых ответов
func (h *QuizHandler) SubmitResult(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answers := make(entity.AnswerRecordArray, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, entity.AnswerRecord{
			QuestionID: a.QuestionID,
			ChapterID:  a.ChapterID,
			UserAnswer: a.UserAnswer,
			IsCorrect:  a.IsCorrect,
			IsReview:   a.IsReview,
		})
	}

	result, err := h.quizService.SubmitResult(userID, req.SessionID, answers)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result": dto.NewResultResponse(result),
		"score":  result.Score,
	})
}

// GetHistory возвращает историю результатов пользователя
func (h *QuizHandler) GetHistory(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	courseID := c.MustGet("courseID").(uint)

	results, err := h.quizService.GetHistory(userID, courseID)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponse(results))
}

// ExportHistory выгружает историю результатов в формате Excel
func (h *QuizHandler) ExportHistory(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	courseID := c.MustGet("courseID").(uint)

	results, err := h.quizService.GetHistory(userID, courseID)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	filename := fmt.Sprintf("history_course_%d_%s", courseID, time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "История"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	// Заголовки
	headers := []interface{}{"ID результата", "ID сессии", "Балл", "Ответов", "Правильных", "С повторением", "Дата"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuizHandler] Ошибка записи заголовков: %v", err)
	}

	// Данные
	for i, r := range results {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		sessionID := ""
		if r.SessionID != nil {
			sessionID = fmt.Sprintf("%d", *r.SessionID)
		}
		review := "Нет"
		if r.IncludesReview {
			review = "Да"
		}

		row := []interface{}{r.ID, sessionID, r.Score, len(r.Answers), r.Answers.CountCorrect(), review, r.CreatedAt.Format(time.RFC3339)}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuizHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuizHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuizHandler] Ошибка записи Excel в response: %v", err)
	}
}

// handleQuizError преобразует ошибки сервиса в HTTP-статусы
func (h *QuizHandler) handleQuizError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
