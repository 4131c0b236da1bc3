package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockverse/config"
	"github.com/lshigami/mockverse/internal/dto"
	llmmocks "github.com/lshigami/mockverse/internal/llm/mocks"
	"github.com/lshigami/mockverse/internal/model"
	"github.com/lshigami/mockverse/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// memoryStore implements the three repositories in memory.
type memoryStore struct {
	mu        sync.Mutex
	sessions  map[string]model.Session
	attempts  []model.Attempt
	responses []model.Response
	failWrite error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: map[string]model.Session{}}
}

type sessionRepo struct{ *memoryStore }
type attemptRepo struct{ *memoryStore }
type responseRepo struct{ *memoryStore }

func (s sessionRepo) Create(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrite != nil {
		return s.failWrite
	}
	s.sessions[session.ID] = *session
	return nil
}

func (s sessionRepo) FindByID(_ context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &session, nil
}

func (s attemptRepo) Create(_ context.Context, attempt *model.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrite != nil {
		return s.failWrite
	}
	attempt.ID = uint(len(s.attempts) + 1)
	s.attempts = append(s.attempts, *attempt)
	return nil
}

func (s attemptRepo) AggregateBySession(ctx context.Context, sessionID string) (model.Score, error) {
	attempts, _ := s.FindBySession(ctx, sessionID)
	var score model.Score
	for _, a := range attempts {
		score.Total++
		if a.IsCorrect {
			score.Correct++
		}
	}
	return score, nil
}

func (s attemptRepo) FindBySession(_ context.Context, sessionID string) ([]model.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Attempt
	for _, a := range s.attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s responseRepo) Create(_ context.Context, response *model.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrite != nil {
		return s.failWrite
	}
	s.responses = append(s.responses, *response)
	return nil
}

func setupRouter(t *testing.T, store *memoryStore, generator *llmmocks.MockGenerator, defaultUserID uint64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Interview.DefaultUserID = defaultUserID

	scores := service.NewScoreService(attemptRepo{store})
	ctrl := NewInterviewController(
		service.NewQuestionService(generator),
		service.NewEvaluationService(generator, nil),
		service.NewSessionService(sessionRepo{store}, cfg),
		service.NewAttemptService(attemptRepo{store}),
		scores,
		service.NewResponseService(responseRepo{store}),
		service.NewReviewService(sessionRepo{store}, attemptRepo{store}),
	)
	router := gin.New()
	ctrl.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &v))
	return v
}

func TestInterviewController_StartInterview(t *testing.T) {
	testCases := []struct {
		name     string
		body     any
		mock     func(g *llmmocks.MockGenerator)
		wantCode int
		wantBody string
	}{
		{
			name: "questions generated",
			body: map[string]string{"topic": "Arrays", "difficulty": "easy"},
			mock: func(g *llmmocks.MockGenerator) {
				g.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("1. What is an array?\n2. What is an index?", nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"questions":["What is an array?","What is an index?"]}`,
		},
		{
			name: "non-numbered output yields empty list",
			body: map[string]string{"topic": "Arrays", "difficulty": "easy"},
			mock: func(g *llmmocks.MockGenerator) {
				g.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("Arrays are great.", nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"questions":[]}`,
		},
		{
			name:     "missing difficulty",
			body:     map[string]string{"topic": "Arrays"},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Topic and difficulty required"}`,
		},
		{
			name:     "blank topic",
			body:     map[string]string{"topic": "   ", "difficulty": "easy"},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Topic and difficulty required"}`,
		},
		{
			name: "generator failure",
			body: map[string]string{"topic": "Arrays", "difficulty": "easy"},
			mock: func(g *llmmocks.MockGenerator) {
				g.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to generate questions"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			generator := llmmocks.NewMockGenerator(ctrl)
			if tc.mock != nil {
				tc.mock(generator)
			}
			router := setupRouter(t, newMemoryStore(), generator, 1)

			resp := doJSON(t, router, http.MethodPost, "/start-interview", tc.body)
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.JSONEq(t, tc.wantBody, resp.Body.String())
		})
	}
}

func TestInterviewController_CheckAnswer(t *testing.T) {
	testCases := []struct {
		name     string
		body     any
		feedback string
		wantCode int
		wantBody string
	}{
		{
			name:     "correct",
			body:     map[string]string{"question": "What is a stack?", "answer": "LIFO"},
			feedback: "Is the answer correct? Yes",
			wantCode: http.StatusOK,
			wantBody: `{"feedback":"Is the answer correct? Yes","is_correct":1}`,
		},
		{
			name:     "incorrect",
			body:     map[string]string{"question": "What is a stack?", "answer": "FIFO"},
			feedback: "- No\nA stack is LIFO.",
			wantCode: http.StatusOK,
			wantBody: `{"feedback":"- No\nA stack is LIFO.","is_correct":0}`,
		},
		{
			name:     "missing answer",
			body:     map[string]string{"question": "What is a stack?"},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Question and answer required"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			generator := llmmocks.NewMockGenerator(ctrl)
			if tc.feedback != "" {
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(tc.feedback, nil)
			}
			router := setupRouter(t, newMemoryStore(), generator, 1)

			resp := doJSON(t, router, http.MethodPost, "/check-answer", tc.body)
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.JSONEq(t, tc.wantBody, resp.Body.String())
		})
	}
}

func TestInterviewController_StartSession(t *testing.T) {
	t.Run("empty body uses default user", func(t *testing.T) {
		store := newMemoryStore()
		router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

		resp := doJSON(t, router, http.MethodPost, "/interview/start", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		got := decode[dto.StartSessionResponse](t, resp)
		require.NotEmpty(t, got.SessionID)
		assert.Equal(t, uint64(1), store.sessions[got.SessionID].UserID)
	})

	t.Run("explicit user", func(t *testing.T) {
		store := newMemoryStore()
		router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

		resp := doJSON(t, router, http.MethodPost, "/interview/start", map[string]uint64{"user_id": 9})
		require.Equal(t, http.StatusOK, resp.Code)
		got := decode[dto.StartSessionResponse](t, resp)
		assert.Equal(t, uint64(9), store.sessions[got.SessionID].UserID)
	})

	t.Run("string user id", func(t *testing.T) {
		store := newMemoryStore()
		router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

		resp := doJSON(t, router, http.MethodPost, "/interview/start", `{"user_id": "7"}`)
		require.Equal(t, http.StatusOK, resp.Code)
		got := decode[dto.StartSessionResponse](t, resp)
		assert.Equal(t, uint64(7), store.sessions[got.SessionID].UserID)
	})

	t.Run("no default user", func(t *testing.T) {
		router := setupRouter(t, newMemoryStore(), llmmocks.NewMockGenerator(gomock.NewController(t)), 0)

		resp := doJSON(t, router, http.MethodPost, "/interview/start", "{}")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.JSONEq(t, `{"error":"User ID required"}`, resp.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		store := newMemoryStore()
		store.failWrite = errors.New("disk full")
		router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

		resp := doJSON(t, router, http.MethodPost, "/interview/start", nil)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.JSONEq(t, `{"error":"Failed to create session"}`, resp.Body.String())
		assert.Empty(t, store.sessions)
	})
}

func TestInterviewController_SaveAnswer_Validation(t *testing.T) {
	valid := func() map[string]any {
		return map[string]any{
			"session_id":  "s-1",
			"user_id":     1,
			"question":    "Q",
			"user_answer": "A",
			"is_correct":  0,
		}
	}
	for _, field := range []string{"session_id", "user_id", "question", "user_answer", "is_correct"} {
		t.Run("missing "+field, func(t *testing.T) {
			store := newMemoryStore()
			router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

			body := valid()
			delete(body, field)
			resp := doJSON(t, router, http.MethodPost, "/interview/save-answer", body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.JSONEq(t, `{"error":"Missing required fields"}`, resp.Body.String())
			assert.Empty(t, store.attempts)
		})
	}

	t.Run("explicit false is stored", func(t *testing.T) {
		store := newMemoryStore()
		router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

		resp := doJSON(t, router, http.MethodPost, "/interview/save-answer", valid())
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"message":"Attempt saved"}`, resp.Body.String())
		require.Len(t, store.attempts, 1)
		assert.False(t, store.attempts[0].IsCorrect)
	})

	t.Run("string user id", func(t *testing.T) {
		store := newMemoryStore()
		router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

		body := valid()
		body["user_id"] = "5"
		resp := doJSON(t, router, http.MethodPost, "/interview/save-answer", body)
		assert.Equal(t, http.StatusOK, resp.Code)
		require.Len(t, store.attempts, 1)
		assert.Equal(t, uint64(5), store.attempts[0].UserID)
	})

	t.Run("empty string user id is missing", func(t *testing.T) {
		store := newMemoryStore()
		router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

		body := valid()
		body["user_id"] = ""
		resp := doJSON(t, router, http.MethodPost, "/interview/save-answer", body)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Empty(t, store.attempts)
	})

	t.Run("store failure", func(t *testing.T) {
		store := newMemoryStore()
		store.failWrite = errors.New("disk full")
		router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

		resp := doJSON(t, router, http.MethodPost, "/interview/save-answer", valid())
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.JSONEq(t, `{"error":"Database error"}`, resp.Body.String())
	})
}

func TestInterviewController_SessionFlow(t *testing.T) {
	store := newMemoryStore()
	router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

	resp := doJSON(t, router, http.MethodPost, "/interview/start", map[string]uint64{"user_id": 1})
	require.Equal(t, http.StatusOK, resp.Code)
	sessionID := decode[dto.StartSessionResponse](t, resp).SessionID

	for i, correct := range []any{1, true, 0} {
		resp = doJSON(t, router, http.MethodPost, "/interview/save-answer", map[string]any{
			"session_id":  sessionID,
			"user_id":     1,
			"question":    "Q",
			"user_answer": "A",
			"is_correct":  correct,
		})
		require.Equal(t, http.StatusOK, resp.Code, "attempt %d", i)
	}

	resp = doJSON(t, router, http.MethodGet, "/interview/score/"+sessionID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"correct":2,"total":3}`, resp.Body.String())

	resp = doJSON(t, router, http.MethodGet, "/interview/score/unknown", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"correct":0,"total":0}`, resp.Body.String())

	resp = doJSON(t, router, http.MethodGet, "/interview/sessions/"+sessionID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	review := decode[map[string]any](t, resp)
	assert.Equal(t, sessionID, review["session_id"])
	assert.Len(t, review["attempts"], 3)
	assert.Equal(t, map[string]any{"correct": float64(2), "total": float64(3)}, review["score"])

	resp = doJSON(t, router, http.MethodGet, "/interview/sessions/unknown", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error":"Session not found"}`, resp.Body.String())
}

func TestInterviewController_SaveResponse(t *testing.T) {
	store := newMemoryStore()
	router := setupRouter(t, store, llmmocks.NewMockGenerator(gomock.NewController(t)), 1)

	resp := doJSON(t, router, http.MethodPost, "/save-interview-response", map[string]any{
		"question":  "Q",
		"answer":    "A",
		"feedback":  "Correct: yes",
		"sessionId": "s-1",
		"userId":    3,
	})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Saved successfully"}`, resp.Body.String())
	require.Len(t, store.responses, 1)
	assert.Equal(t, model.Response{UserID: 3, SessionID: "s-1", Question: "Q", Answer: "A", Feedback: "Correct: yes"}, store.responses[0])

	store.failWrite = errors.New("disk full")
	resp = doJSON(t, router, http.MethodPost, "/save-interview-response", "{}")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Failed to save response"}`, resp.Body.String())
}

func TestInterviewController_Health(t *testing.T) {
	router := setupRouter(t, newMemoryStore(), llmmocks.NewMockGenerator(gomock.NewController(t)), 1)
	resp := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}
