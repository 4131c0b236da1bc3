package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/mockverse/internal/llm"
	"github.com/lshigami/mockverse/internal/metrics"
	"github.com/rs/zerolog/log"
)

const opEvaluateAnswer = "evaluate_answer"

// Evaluation is the judge's feedback plus the correctness derived from it.
type Evaluation struct {
	Feedback  string
	IsCorrect bool
	Rule      string
}

type EvaluationService interface {
	Evaluate(ctx context.Context, question, answer string) (*Evaluation, error)
}

type evaluationService struct {
	generator llm.Generator
	judge     *Judge
}

func NewEvaluationService(generator llm.Generator, judge *Judge) EvaluationService {
	if judge == nil {
		judge = NewJudge()
	}
	return &evaluationService{generator: generator, judge: judge}
}

func BuildEvaluationPrompt(question, answer string) string {
	return fmt.Sprintf(`Question: %s
Answer: %s

Evaluate the answer strictly based on the question.
- Is the answer correct? (Yes/No)
- If incorrect or incomplete, explain what is missing or needs improvement in 1-2 lines.
- If correct, mention it briefly in 1 line.

Respond in a clear and concise manner.`, question, answer)
}

func (s *evaluationService) Evaluate(ctx context.Context, question, answer string) (*Evaluation, error) {
	if strings.TrimSpace(question) == "" {
		return nil, missing("question")
	}
	if strings.TrimSpace(answer) == "" {
		return nil, missing("answer")
	}

	start := time.Now()
	feedback, err := s.generator.Generate(ctx, BuildEvaluationPrompt(question, answer))
	metrics.ObserveGeneration(opEvaluateAnswer, start, err)
	if err != nil {
		log.Error().Err(err).Msg("Failed to evaluate answer")
		return nil, &UpstreamError{Op: opEvaluateAnswer, Err: err}
	}

	verdict := s.judge.Decide(feedback)
	metrics.ObserveJudgeRule(verdict.Rule)
	log.Info().Bool("is_correct", verdict.Correct).Str("rule", verdict.Rule).Msg("Answer evaluated")
	log.Debug().Str("question", question).Str("feedback", feedback).Msg("Evaluation detail")

	return &Evaluation{
		Feedback:  feedback,
		IsCorrect: verdict.Correct,
		Rule:      verdict.Rule,
	}, nil
}
