package utils

import (
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// TextProcessor normalizes and bounds snippet text before analysis.
// Gmail snippets arrive in mixed Unicode normalization forms, and Hebrew
// combining marks break naive substring matching, so all text is folded to
// NFC before the pattern rules see it.
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// Normalize folds text to NFC
func (tp *TextProcessor) Normalize(text string) string {
	if norm.NFC.IsNormalString(text) {
		return text
	}
	return norm.NFC.String(text)
}

// TruncateSnippet bounds a snippet to maxSize bytes without splitting a
// UTF-8 sequence. A maxSize of zero or less means unbounded.
func (tp *TextProcessor) TruncateSnippet(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	truncated := text[:maxSize]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}

	tp.logger.Debug("Snippet truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", maxSize))

	return truncated + "…"
}

// SanitizeUTF8 drops invalid UTF-8 sequences from text
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	result := make([]rune, 0, len(text))
	for i, r := range text {
		if r == utf8.RuneError {
			_, size := utf8.DecodeRuneInString(text[i:])
			if size == 1 {
				continue
			}
		}
		result = append(result, r)
	}

	return string(result)
}

// ProcessSnippet sanitizes, normalizes and truncates in one pass
func (tp *TextProcessor) ProcessSnippet(text string, maxSize int) string {
	return tp.TruncateSnippet(tp.Normalize(tp.SanitizeUTF8(text)), maxSize)
}
