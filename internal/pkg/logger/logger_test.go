package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "QuestionHandler")

	l.Info("Attempted to get question id %d", 5)
	l.Warn("Question with id %d was not found", 5)
	l.Error("boom: %v", "db down")

	out := buf.String()
	assert.Contains(t, out, "[QuestionHandler] INFO: Attempted to get question id 5")
	assert.Contains(t, out, "[QuestionHandler] WARN: Question with id 5 was not found")
	assert.Contains(t, out, "[QuestionHandler] ERROR: boom: db down")
}

func TestStdLogger_WithKeepsWriter(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf, "api")

	base.With("AnswerHandler").Info("ok")

	assert.Contains(t, buf.String(), "[AnswerHandler] INFO: ok")
	assert.NotContains(t, buf.String(), "[api]")
}
