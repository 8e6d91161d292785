// Package extract normalizes raw generative-model output into structured
// study data. Model output is not contractually formatted, so key-point
// extraction degrades gracefully through a line-based fallback, while quiz
// extraction requires a parseable JSON array and fails otherwise.
package extract

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/testnotes/testnotes-go/internal/model"
)

const (
	// MaxKeyPoints caps the number of key points returned per analysis.
	MaxKeyPoints = 7
	// MaxQuizQuestions caps the number of questions returned per quiz.
	MaxQuizQuestions = 5

	// minLineRunes filters blank lines and stray punctuation in the
	// line-based fallback. Measured on the trimmed line before any bullet
	// marker is stripped.
	minLineRunes = 10
)

var (
	ErrQuizFormat = errors.New("failed to parse quiz questions")
)

// KeyPoints extracts up to MaxKeyPoints study points from raw model output.
// It first attempts to parse the whole payload as a JSON array of strings;
// if that fails it falls back to line-based extraction. It never fails: a
// payload yielding nothing returns an empty, non-nil slice.
func KeyPoints(raw string) []string {
	points, ok := jsonStringArray(raw)
	if !ok {
		points = linePoints(raw)
	}
	if len(points) > MaxKeyPoints {
		points = points[:MaxKeyPoints]
	}
	return points
}

// Quiz extracts up to MaxQuizQuestions quiz questions from raw model output.
// The payload must contain a JSON array of question objects somewhere in the
// text; there is no free-text fallback because question records need
// structured fields. Returns ErrQuizFormat when no array can be recovered.
func Quiz(raw string) ([]model.QuizQuestion, error) {
	start := strings.IndexByte(raw, '[')
	end := strings.LastIndexByte(raw, ']')
	if start == -1 || end == -1 || end < start {
		return nil, ErrQuizFormat
	}

	var questions []model.QuizQuestion
	if err := json.Unmarshal([]byte(raw[start:end+1]), &questions); err != nil {
		return nil, ErrQuizFormat
	}

	if len(questions) > MaxQuizQuestions {
		questions = questions[:MaxQuizQuestions]
	}
	return questions, nil
}

// jsonStringArray attempts the strict first stage: the entire trimmed payload
// as a JSON array of strings. Entries are trimmed and empties dropped.
func jsonStringArray(raw string) ([]string, bool) {
	var parsed []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return nil, false
	}

	points := make([]string, 0, len(parsed))
	for _, p := range parsed {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		points = append(points, p)
	}
	return points, true
}

// linePoints is the fallback stage: one candidate point per line, short lines
// discarded, leading bullet or numbering markers stripped. A line reduced to
// nothing by the marker strip is dropped, like an empty JSON entry.
func linePoints(raw string) []string {
	lines := strings.Split(raw, "\n")
	points := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) <= minLineRunes {
			continue
		}
		if point := stripMarker(line); point != "" {
			points = append(points, point)
		}
	}
	return points
}

// stripMarker removes a single leading bullet ("-", "•", "*") or numbering
// ("12.") marker plus the whitespace that follows it.
func stripMarker(line string) string {
	switch {
	case strings.HasPrefix(line, "-"):
		line = line[1:]
	case strings.HasPrefix(line, "*"):
		line = line[1:]
	case strings.HasPrefix(line, "•"):
		line = strings.TrimPrefix(line, "•")
	default:
		i := 0
		for i < len(line) && line[i] >= '0' && line[i] <= '9' {
			i++
		}
		if i > 0 && i < len(line) && line[i] == '.' {
			line = line[i+1:]
		}
	}
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}
