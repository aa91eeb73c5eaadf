package helper

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeAnswerNo приводит букву варианта ответа к верхнему регистру.
// Возвращает false, если строка не является ровно одной буквой.
func NormalizeAnswerNo(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return "", false
	}
	return string(unicode.ToUpper(r)), true
}

// SanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func SanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// YesNo переводит флаг в подпись для выгрузки
func YesNo(v bool) string {
	if v {
		return "Да"
	}
	return "Нет"
}
