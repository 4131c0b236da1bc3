package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lshigami/mockverse/internal/llm"
	"github.com/lshigami/mockverse/internal/metrics"
	"github.com/rs/zerolog/log"
)

// MaxQuestions caps the generated list.
const MaxQuestions = 10

const opGenerateQuestions = "generate_questions"

var (
	lineBreaks     = regexp.MustCompile(`\n+`)
	numberedPrefix = regexp.MustCompile(`^\d+\.\s*`)
)

type QuestionService interface {
	GenerateQuestions(ctx context.Context, topic, difficulty string) ([]string, error)
}

type questionService struct {
	generator llm.Generator
}

func NewQuestionService(generator llm.Generator) QuestionService {
	return &questionService{generator: generator}
}

// BuildQuestionPrompt is deterministic for a given topic and difficulty.
func BuildQuestionPrompt(topic, difficulty string) string {
	return fmt.Sprintf(`Generate %d mock interview questions for the topic: "%s".
Difficulty level: "%s" (easy, medium, hard).
Format the response as a numbered list (1 to %d), only questions, no answers.`,
		MaxQuestions, topic, difficulty, MaxQuestions)
}

// ParseQuestions keeps lines that start with "<n>." and strips the numbering.
// Text without such lines yields an empty, non-nil list.
func ParseQuestions(raw string) []string {
	questions := make([]string, 0, MaxQuestions)
	for _, line := range lineBreaks.Split(raw, -1) {
		loc := numberedPrefix.FindStringIndex(line)
		if loc == nil {
			continue
		}
		q := strings.TrimSpace(line[loc[1]:])
		if q == "" {
			continue
		}
		questions = append(questions, q)
		if len(questions) == MaxQuestions {
			break
		}
	}
	return questions
}

func (s *questionService) GenerateQuestions(ctx context.Context, topic, difficulty string) ([]string, error) {
	topic, difficulty = strings.TrimSpace(topic), strings.TrimSpace(difficulty)
	if topic == "" {
		return nil, missing("topic")
	}
	if difficulty == "" {
		return nil, missing("difficulty")
	}

	start := time.Now()
	raw, err := s.generator.Generate(ctx, BuildQuestionPrompt(topic, difficulty))
	metrics.ObserveGeneration(opGenerateQuestions, start, err)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Str("difficulty", difficulty).Msg("Failed to generate questions")
		return nil, &UpstreamError{Op: opGenerateQuestions, Err: err}
	}

	questions := ParseQuestions(raw)
	if len(questions) == 0 {
		// Not an error: the caller gets an empty list, as before.
		log.Warn().Str("topic", topic).Str("raw", raw).Msg("Generated text contained no numbered questions")
	}
	log.Info().Str("topic", topic).Str("difficulty", difficulty).Int("count", len(questions)).Msg("Generated questions")
	return questions, nil
}
