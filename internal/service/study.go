package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/testnotes/testnotes-go/internal/extract"
	"github.com/testnotes/testnotes-go/internal/model"
)

var (
	ErrNotesTooShort = errors.New("notes must be at least 50 characters")
)

// minNotesRunes rejects trivially short inputs before any paid upstream call.
const minNotesRunes = 50

// Completer is the slice of the AI gateway the study service needs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// StudyService turns raw study notes into key points or a quiz by prompting
// the generative model and normalizing whatever text comes back.
type StudyService struct {
	ai Completer
}

// NewStudyService creates a new StudyService.
func NewStudyService(ai Completer) *StudyService {
	return &StudyService{ai: ai}
}

// AnalyzeNotes asks the model for the most important points in the notes.
// Extraction is best effort and never fails once the model has answered.
func (s *StudyService) AnalyzeNotes(ctx context.Context, notes string) ([]string, error) {
	if err := validateNotes(notes); err != nil {
		return nil, err
	}

	raw, err := s.ai.Complete(ctx, keyPointsPrompt(notes))
	if err != nil {
		return nil, err
	}

	return extract.KeyPoints(raw), nil
}

// GenerateQuiz asks the model for a multiple-choice quiz over the notes.
// Unlike AnalyzeNotes this can fail with extract.ErrQuizFormat when the
// model's reply carries no parseable question array.
func (s *StudyService) GenerateQuiz(ctx context.Context, notes string) ([]model.QuizQuestion, error) {
	if err := validateNotes(notes); err != nil {
		return nil, err
	}

	raw, err := s.ai.Complete(ctx, quizPrompt(notes))
	if err != nil {
		return nil, err
	}

	return extract.Quiz(raw)
}

func validateNotes(notes string) error {
	if utf8.RuneCountInString(notes) < minNotesRunes {
		return ErrNotesTooShort
	}
	return nil
}

func keyPointsPrompt(notes string) string {
	return fmt.Sprintf(`You are a study assistant. Read the following study notes and extract the %d most important key points. Respond with a JSON array of strings, one point per entry, and nothing else.

Notes:
%s`, extract.MaxKeyPoints, notes)
}

func quizPrompt(notes string) string {
	return fmt.Sprintf(`You are a study assistant. Create a multiple-choice quiz of %d questions from the following study notes. Respond with a JSON array and nothing else. Each element must be an object with the fields "question", "options" (exactly 4 strings), "answer" (one of the options) and "explanation".

Notes:
%s`, extract.MaxQuizQuestions, notes)
}
