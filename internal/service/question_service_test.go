package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/mockverse/internal/llm"
	llmmocks "github.com/lshigami/mockverse/internal/llm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseQuestions(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "numbered list",
			raw:  "1. What is an array?\n2. How do you reverse one?\n\n3.   Explain slicing.  ",
			want: []string{"What is an array?", "How do you reverse one?", "Explain slicing."},
		},
		{
			name: "preamble and trailing text dropped",
			raw:  "Here are your questions:\n1. First?\nGood luck!",
			want: []string{"First?"},
		},
		{
			name: "no numbered lines",
			raw:  "Arrays are contiguous blocks of memory.",
			want: []string{},
		},
		{
			name: "empty items dropped",
			raw:  "1.\n2.   \n3. Real question?",
			want: []string{"Real question?"},
		},
		{
			name: "indented numbering is not a question line",
			raw:  "  1. Indented?\n2. Flush?",
			want: []string{"Flush?"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseQuestions(tc.raw)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseQuestions_Cap(t *testing.T) {
	raw := ""
	for i := 1; i <= 14; i++ {
		raw += "1. q\n"
	}
	assert.Len(t, ParseQuestions(raw), MaxQuestions)
}

func TestBuildQuestionPrompt(t *testing.T) {
	p := BuildQuestionPrompt("Arrays", "easy")
	assert.Contains(t, p, `topic: "Arrays"`)
	assert.Contains(t, p, `Difficulty level: "easy"`)
	assert.Contains(t, p, "numbered list (1 to 10)")
	assert.Equal(t, p, BuildQuestionPrompt("Arrays", "easy"))
}

func TestQuestionService_GenerateQuestions(t *testing.T) {
	testCases := []struct {
		name       string
		topic      string
		difficulty string
		mock       func(ctrl *gomock.Controller) llm.Generator
		want       []string
		wantErr    func(t *testing.T, err error)
	}{
		{
			name:       "numbered output",
			topic:      "Arrays",
			difficulty: "easy",
			mock: func(ctrl *gomock.Controller) llm.Generator {
				g := llmmocks.NewMockGenerator(ctrl)
				g.EXPECT().Generate(gomock.Any(), BuildQuestionPrompt("Arrays", "easy")).
					Return("1. What is an array?\n2. What is a slice?", nil)
				return g
			},
			want: []string{"What is an array?", "What is a slice?"},
		},
		{
			name:       "non-numbered output is an empty list",
			topic:      "Arrays",
			difficulty: "easy",
			mock: func(ctrl *gomock.Controller) llm.Generator {
				g := llmmocks.NewMockGenerator(ctrl)
				g.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return("Arrays store elements contiguously.", nil)
				return g
			},
			want: []string{},
		},
		{
			name:       "missing topic makes no call",
			topic:      "  ",
			difficulty: "easy",
			mock: func(ctrl *gomock.Controller) llm.Generator {
				return llmmocks.NewMockGenerator(ctrl)
			},
			wantErr: func(t *testing.T, err error) {
				var v *ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, "topic", v.Field)
			},
		},
		{
			name:  "missing difficulty makes no call",
			topic: "Arrays",
			mock: func(ctrl *gomock.Controller) llm.Generator {
				return llmmocks.NewMockGenerator(ctrl)
			},
			wantErr: func(t *testing.T, err error) {
				var v *ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, "difficulty", v.Field)
			},
		},
		{
			name:       "generator failure",
			topic:      "Arrays",
			difficulty: "hard",
			mock: func(ctrl *gomock.Controller) llm.Generator {
				g := llmmocks.NewMockGenerator(ctrl)
				g.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return("", &llm.ErrProviderUnavailable{Err: errors.New("503")})
				return g
			},
			wantErr: func(t *testing.T, err error) {
				var up *UpstreamError
				require.ErrorAs(t, err, &up)
				var unavailable *llm.ErrProviderUnavailable
				assert.ErrorAs(t, err, &unavailable)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewQuestionService(tc.mock(ctrl))
			got, err := svc.GenerateQuestions(context.Background(), tc.topic, tc.difficulty)
			if tc.wantErr != nil {
				tc.wantErr(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
