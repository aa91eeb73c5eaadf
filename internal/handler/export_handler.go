package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/bhp-api/internal/domain/entity"
	"github.com/yourusername/bhp-api/internal/handler/helper"
)

// exportHeaders - колонки выгрузки: одна строка на пару вопрос/ответ
var exportHeaders = []string{"ID вопроса", "Тип", "Вопрос", "URL", "ID ответа", "Вариант", "Ответ", "Правильный"}

// Export выгружает все вопросы с ответами в CSV или Excel
// GET /api/question/export?format=csv|xlsx
func (h *QuestionHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	h.log.Info("Question export attempted - format %s", format)

	if format != "csv" && format != "xlsx" {
		h.log.Warn("Question export rejected - unsupported format %q", format)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported export format, expected csv or xlsx"})
		return
	}

	questions, err := h.questions(c.Request.Context()).FindAllWithAnswers()
	if err != nil {
		handleError(c, h.log, "question", err, "question export failed")
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	case "csv":
		h.exportCSV(c, questions, filename)
	}
}

// exportRows разворачивает вопросы в строки выгрузки.
// Вопрос без ответов дает одну строку с пустыми колонками ответа.
func exportRows(questions []entity.Question) [][]string {
	rows := make([][]string, 0, len(questions))
	for _, q := range questions {
		base := []string{
			strconv.Itoa(q.ID),
			helper.SanitizeForExcel(q.Type),
			helper.SanitizeForExcel(q.Description),
			"",
		}
		if q.HasURL() {
			base[3] = helper.SanitizeForExcel(*q.URL)
		}

		if len(q.Answers) == 0 {
			rows = append(rows, append(base, "", "", "", ""))
			continue
		}
		for _, a := range q.Answers {
			row := make([]string, 0, len(exportHeaders))
			row = append(row, base...)
			row = append(row,
				strconv.Itoa(a.ID),
				a.AnswerNo,
				helper.SanitizeForExcel(a.Description),
				helper.YesNo(a.IsCorrect),
			)
			rows = append(rows, row)
		}
	}
	return rows
}

// exportCSV экспортирует вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		h.log.Error("CSV header write failed: %v", err)
		return
	}
	for _, row := range exportRows(questions) {
		if err := writer.Write(row); err != nil {
			h.log.Error("CSV row write failed: %v", err)
			return
		}
	}
}

// exportXLSX экспортирует вопросы в Excel с использованием StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Вопросы"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		internalError(c, h.log, fmt.Sprintf("excel sheet rename failed - %v", err))
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		internalError(c, h.log, fmt.Sprintf("excel stream writer creation failed - %v", err))
		return
	}

	if err := sw.SetRow("A1", toCells(exportHeaders)); err != nil {
		internalError(c, h.log, fmt.Sprintf("excel header write failed - %v", err))
		return
	}
	for i, row := range exportRows(questions) {
		cell := fmt.Sprintf("A%d", i+2) // 1 - заголовки
		if err := sw.SetRow(cell, toCells(row)); err != nil {
			internalError(c, h.log, fmt.Sprintf("excel row %d write failed - %v", i+2, err))
			return
		}
	}
	if err := sw.Flush(); err != nil {
		internalError(c, h.log, fmt.Sprintf("excel flush failed - %v", err))
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.log.Error("Excel response write failed: %v", err)
	}
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = strings.TrimRight(v, "\r\n")
	}
	return cells
}
