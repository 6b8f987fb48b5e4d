package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/mrled/suns/symaxis/internal/logger"
	"github.com/mrled/suns/symaxis/internal/model"
	"github.com/mrled/suns/symaxis/internal/repository"
	"github.com/mrled/suns/symaxis/internal/symmetry"
	"github.com/mrled/suns/symaxis/internal/usecase/check"
)

const checkPath = "/v1/check"

// Handler holds the dependencies for the httpapi Lambda handler
type Handler struct {
	checkService *check.Service
	log          *slog.Logger
}

// CheckRequest represents the expected JSON payload for a check
type CheckRequest struct {
	Label  string  `json:"label,omitempty"`
	Points [][]int `json:"points"`
}

// CheckResponse represents the JSON response for a check
type CheckResponse struct {
	ID          string   `json:"id"`
	Label       string   `json:"label,omitempty"`
	Points      [][2]int `json:"points"`
	Symmetrical bool     `json:"symmetrical"`
	Axis        *int     `json:"axis,omitempty"`
	Rev         int64    `json:"rev,omitempty"`
	Message     string   `json:"message"`
}

// NewHandler creates a new httpapi handler with initialized dependencies.
// Results are stored in DynamoDB when DYNAMODB_TABLE is set.
func NewHandler() (*Handler, error) {
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "httpapi")
	logger.SetDefault(log)

	cfg := repository.RepositoryConfig{
		DynamoTable:    os.Getenv("DYNAMODB_TABLE"),
		DynamoEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
	}

	var repo model.CheckRepository
	if cfg.Enabled() {
		// Without a custom endpoint the SDK needs a region to find DynamoDB
		if cfg.DynamoEndpoint == "" && os.Getenv("AWS_REGION") == "" {
			return nil, fmt.Errorf("AWS_REGION environment variable is required when DYNAMODB_ENDPOINT is not set")
		}

		var err error
		repo, err = repository.NewRepository(context.Background(), cfg, log)
		if err != nil {
			log.Error("Failed to initialize repository", slog.String("error", err.Error()))
			return nil, err
		}
	} else {
		log.Warn("DYNAMODB_TABLE not set, check results will not be stored")
	}

	return NewHandlerWithService(check.NewService(repo, log), log), nil
}

// NewHandlerWithService creates a handler around an existing check service
func NewHandlerWithService(svc *check.Service, log *slog.Logger) *Handler {
	return &Handler{
		checkService: svc,
		log:          log,
	}
}

// Handle processes API Gateway HTTP requests
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	requestLogger := logger.WithLambda(h.log,
		os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		request.RequestContext.RequestID)

	requestLogger.Info("Incoming request",
		slog.String("method", request.RequestContext.HTTP.Method),
		slog.String("path", request.RequestContext.HTTP.Path),
		slog.String("raw_path", request.RawPath))

	// API Gateway v2 puts the path in RequestContext.HTTP.Path
	path := request.RequestContext.HTTP.Path
	if path == "" {
		path = request.RawPath
	}
	path = strings.TrimSuffix(strings.TrimPrefix(path, "/api"), "/")

	switch {
	case path == checkPath:
		return h.handleCheck(ctx, requestLogger, request)
	case strings.HasPrefix(path, checkPath+"/"):
		return h.handleGet(ctx, requestLogger, request, strings.TrimPrefix(path, checkPath+"/"))
	default:
		requestLogger.Warn("Path not matched", slog.String("path", path))
		return errorResponseV2(http.StatusNotFound, fmt.Sprintf("Unknown endpoint: %s", path))
	}
}

func (h *Handler) handleCheck(ctx context.Context, log *slog.Logger, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	httpMethod := request.RequestContext.HTTP.Method
	if httpMethod != http.MethodPost {
		log.Warn("Method validation failed", slog.String("received_method", httpMethod))
		return errorResponseV2(http.StatusMethodNotAllowed, fmt.Sprintf("Method not allowed. Only POST is supported for this endpoint (received: %s)", httpMethod))
	}

	var checkReq CheckRequest
	if err := json.Unmarshal([]byte(request.Body), &checkReq); err != nil {
		return errorResponseV2(http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
	}

	points := make([]model.Point, len(checkReq.Points))
	for i, p := range checkReq.Points {
		if len(p) != 2 {
			return errorResponseV2(http.StatusBadRequest, fmt.Sprintf("point %d must have exactly two coordinates, got %d", i, len(p)))
		}
		points[i] = model.Point{X: p[0], Y: p[1]}
	}

	record, err := h.checkService.Check(ctx, checkReq.Label, points)
	if errors.Is(err, symmetry.ErrInvalidInput) {
		return errorResponseV2(http.StatusBadRequest, "at least one point is required")
	}
	if err != nil {
		log.Error("Check failed", slog.String("error", err.Error()))
		return errorResponseV2(http.StatusInternalServerError, fmt.Sprintf("check failed: %v", err))
	}

	return jsonResponseV2(log, http.StatusOK, toResponse(record))
}

func (h *Handler) handleGet(ctx context.Context, log *slog.Logger, request events.APIGatewayV2HTTPRequest, id string) (events.APIGatewayV2HTTPResponse, error) {
	httpMethod := request.RequestContext.HTTP.Method
	if httpMethod != http.MethodGet {
		return errorResponseV2(http.StatusMethodNotAllowed, fmt.Sprintf("Method not allowed. Only GET is supported for this endpoint (received: %s)", httpMethod))
	}

	record, err := h.checkService.Get(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return errorResponseV2(http.StatusNotFound, fmt.Sprintf("no check record with id %s", id))
	}
	if err != nil {
		log.Error("Lookup failed", slog.String("id", id), slog.String("error", err.Error()))
		return errorResponseV2(http.StatusInternalServerError, "lookup failed")
	}

	return jsonResponseV2(log, http.StatusOK, toResponse(record))
}

func toResponse(record *model.CheckRecord) CheckResponse {
	points := make([][2]int, len(record.Points))
	for i, p := range record.Points {
		points[i] = [2]int{p.X, p.Y}
	}

	message := "The points are NOT symmetric about any vertical line"
	if record.Symmetrical {
		message = fmt.Sprintf("The points are symmetric about x=%d", *record.Axis)
	}

	return CheckResponse{
		ID:          record.ID,
		Label:       record.Label,
		Points:      points,
		Symmetrical: record.Symmetrical,
		Axis:        record.Axis,
		Rev:         record.Rev,
		Message:     message,
	}
}

func jsonResponseV2(log *slog.Logger, statusCode int, body any) (events.APIGatewayV2HTTPResponse, error) {
	responseBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal response", slog.String("error", err.Error()))
		return errorResponseV2(http.StatusInternalServerError, "failed to generate response")
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Body:       string(responseBody),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

// errorResponseV2 creates a standardized error response for API Gateway v2
func errorResponseV2(statusCode int, message string) (events.APIGatewayV2HTTPResponse, error) {
	body, _ := json.Marshal(map[string]string{
		"error": message,
	})

	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}
