package interview

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockverse/internal/dto"
	"github.com/lshigami/mockverse/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	questionService   service.QuestionService
	evaluationService service.EvaluationService
	sessionService    service.SessionService
	attemptService    service.AttemptService
	scoreService      service.ScoreService
	responseService   service.ResponseService
	reviewService     service.ReviewService
}

func NewInterviewController(
	qs service.QuestionService,
	es service.EvaluationService,
	ss service.SessionService,
	as service.AttemptService,
	scs service.ScoreService,
	rs service.ResponseService,
	rvs service.ReviewService,
) *InterviewController {
	return &InterviewController{
		questionService:   qs,
		evaluationService: es,
		sessionService:    ss,
		attemptService:    as,
		scoreService:      scs,
		responseService:   rs,
		reviewService:     rvs,
	}
}

// RegisterRoutes mounts the handlers at the root paths the web client calls.
func (c *InterviewController) RegisterRoutes(router gin.IRouter) {
	router.POST("/start-interview", c.StartInterview)
	router.POST("/check-answer", c.CheckAnswer)
	router.POST("/save-interview-response", c.SaveResponse)

	interview := router.Group("/interview")
	interview.POST("/start", c.StartSession)
	interview.POST("/save-answer", c.SaveAnswer)
	interview.GET("/score/:sessionId", c.GetScore)
	interview.GET("/sessions/:sessionId", c.GetSession)

	router.GET("/healthz", c.Health)
}

// StartInterview godoc
// @Summary Generate interview questions
// @Description Ask the language model for up to 10 questions on a topic at a difficulty level
// @Tags Interview
// @Accept json
// @Produce json
// @Param request body dto.StartInterviewRequest true "Topic and difficulty"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Topic and difficulty required"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate questions"
// @Router /start-interview [post]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	const invalid = "Topic and difficulty required"
	var req dto.StartInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StartInterviewRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: invalid})
		return
	}

	questions, err := c.questionService.GenerateQuestions(ctx.Request.Context(), req.Topic, req.Difficulty)
	if err != nil {
		respondError(ctx, err, invalid, "Failed to generate questions")
		return
	}
	ctx.JSON(http.StatusOK, dto.QuestionsResponse{Questions: questions})
}

// CheckAnswer godoc
// @Summary Evaluate an answer
// @Description Return the model's feedback and whether the answer was judged correct (1) or not (0)
// @Tags Interview
// @Accept json
// @Produce json
// @Param request body dto.CheckAnswerRequest true "Question and answer"
// @Success 200 {object} dto.CheckAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Question and answer required"
// @Failure 500 {object} dto.ErrorResponse "Failed to evaluate answer"
// @Router /check-answer [post]
func (c *InterviewController) CheckAnswer(ctx *gin.Context) {
	const invalid = "Question and answer required"
	var req dto.CheckAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CheckAnswerRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: invalid})
		return
	}

	evaluation, err := c.evaluationService.Evaluate(ctx.Request.Context(), req.Question, req.Answer)
	if err != nil {
		respondError(ctx, err, invalid, "Failed to evaluate answer")
		return
	}
	ctx.JSON(http.StatusOK, dto.CheckAnswerResponse{
		Feedback:  evaluation.Feedback,
		IsCorrect: dto.Flag(evaluation.IsCorrect),
	})
}

// StartSession godoc
// @Summary Start an interview session
// @Description Allocate a session id. Without user_id the configured default user is used.
// @Tags Interview
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest false "Optional user id"
// @Success 200 {object} dto.StartSessionResponse
// @Failure 400 {object} dto.ErrorResponse "User ID required"
// @Failure 500 {object} dto.ErrorResponse "Failed to create session"
// @Router /interview/start [post]
func (c *InterviewController) StartSession(ctx *gin.Context) {
	var req dto.StartSessionRequest
	// An empty body is allowed.
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Err(err).Msg("Failed to bind StartSessionRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	sessionID, err := c.sessionService.Create(ctx.Request.Context(), dto.UserIDValue(req.UserID))
	if err != nil {
		respondError(ctx, err, "User ID required", "Failed to create session")
		return
	}
	ctx.JSON(http.StatusOK, dto.StartSessionResponse{SessionID: sessionID})
}

// SaveAnswer godoc
// @Summary Record an attempt
// @Description Store one answered question of a session together with its correctness
// @Tags Interview
// @Accept json
// @Produce json
// @Param request body dto.SaveAttemptRequest true "Attempt"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /interview/save-answer [post]
func (c *InterviewController) SaveAnswer(ctx *gin.Context) {
	const invalid = "Missing required fields"
	var req dto.SaveAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SaveAttemptRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: invalid})
		return
	}

	err := c.attemptService.Record(ctx.Request.Context(), service.AttemptInput{
		SessionID:  req.SessionID,
		UserID:     uint64(req.UserID),
		Question:   req.Question,
		UserAnswer: req.UserAnswer,
		IsCorrect:  dto.FlagPtr(req.IsCorrect),
	})
	if err != nil {
		respondError(ctx, err, invalid, "Database error")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Attempt saved"})
}

// SaveResponse godoc
// @Summary Save a legacy interview response
// @Description Store question, answer and raw feedback. Fields are stored as given.
// @Tags Interview
// @Accept json
// @Produce json
// @Param request body dto.SaveResponseRequest true "Response"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Failed to save response"
// @Router /save-interview-response [post]
func (c *InterviewController) SaveResponse(ctx *gin.Context) {
	var req dto.SaveResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Err(err).Msg("Failed to bind SaveResponseRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := c.responseService.Save(ctx.Request.Context(), service.ResponseInput{
		UserID:    uint64(req.UserID),
		SessionID: req.SessionID,
		Question:  req.Question,
		Answer:    req.Answer,
		Feedback:  req.Feedback,
	})
	if err != nil {
		respondError(ctx, err, "Invalid request body", "Failed to save response")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Saved successfully"})
}

// GetScore godoc
// @Summary Get a session score
// @Description Count correct attempts and total attempts of a session. Unknown sessions score 0/0.
// @Tags Interview
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.ScoreResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch score"
// @Router /interview/score/{sessionId} [get]
func (c *InterviewController) GetScore(ctx *gin.Context) {
	score, err := c.scoreService.Score(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		respondError(ctx, err, "Invalid session id", "Failed to fetch score")
		return
	}
	ctx.JSON(http.StatusOK, dto.ScoreResponse{Correct: score.Correct, Total: score.Total})
}

// GetSession godoc
// @Summary Review a session
// @Description Session metadata, its attempts in submission order and the current score
// @Tags Interview
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.SessionReviewResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch session"
// @Router /interview/sessions/{sessionId} [get]
func (c *InterviewController) GetSession(ctx *gin.Context) {
	review, err := c.reviewService.GetSession(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		respondError(ctx, err, "Invalid session id", "Failed to fetch session")
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (c *InterviewController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// respondError maps service errors to a status and a generic message. The
// underlying error is logged, never returned to the client.
func respondError(ctx *gin.Context, err error, invalidMsg, failureMsg string) {
	switch {
	case service.IsValidation(err):
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Rejected request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: invalidMsg})
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Session not found"})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(failureMsg)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: failureMsg})
	}
}
