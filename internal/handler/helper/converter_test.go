package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswerNo(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "A", want: "A", wantOK: true},
		{in: "b", want: "B", wantOK: true},
		{in: " c ", want: "C", wantOK: true},
		{in: "д", want: "Д", wantOK: true},
		{in: "", wantOK: false},
		{in: "AB", wantOK: false},
		{in: "1", wantOK: false},
		{in: "?", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeAnswerNo(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeForExcel(t *testing.T) {
	assert.Equal(t, "", SanitizeForExcel(""))
	assert.Equal(t, "2+2?", SanitizeForExcel("2+2?"))
	assert.Equal(t, "'=SUM(A1:A2)", SanitizeForExcel("=SUM(A1:A2)"))
	assert.Equal(t, "'+7", SanitizeForExcel("+7"))
	assert.Equal(t, "'-1", SanitizeForExcel("-1"))
	assert.Equal(t, "'@cmd", SanitizeForExcel("@cmd"))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Да", YesNo(true))
	assert.Equal(t, "Нет", YesNo(false))
}
