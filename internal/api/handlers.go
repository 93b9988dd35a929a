// Package api exposes HTTP handlers for the excuse service.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"example.com/excuse/internal/domain"
	"example.com/excuse/internal/observability"
)

// Error messages returned outside domain validation.
const (
	MsgInvalidJSON   = "Invalid JSON"
	MsgNotFound      = "Not found"
	MsgInternalError = "Internal server error"
)

var (
	// ErrInvalidJSON marks bodies that are not a UTF-8 encoded JSON object.
	ErrInvalidJSON = errors.New("invalid JSON body")
	// ErrInternal wraps faults raised after the request was accepted.
	ErrInternal = errors.New("internal fault")
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service      *domain.Service
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewHandler builds a Handler. maxBodyBytes <= 0 disables the body limit.
func NewHandler(service *domain.Service, logger *zap.Logger, maxBodyBytes int64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger, maxBodyBytes: maxBodyBytes}
}

// NewRouter builds the dispatch table. Middlewares wrap every request,
// including the not-found fallback.
func NewRouter(h *Handler, middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares...)
	h.RegisterRoutes(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// RegisterRoutes wires endpoints to the router. Unknown paths and unsupported
// methods both resolve to the JSON 404 body.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/generate-excuse", h.generateExcuse)
	r.Get("/healthz", healthz)
	r.NotFound(h.notFound)
	r.MethodNotAllowed(h.notFound)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.reject(w, http.StatusNotFound, observability.ReasonNotFound, MsgNotFound)
}

func (h *Handler) generateExcuse(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(w, r)
	if err != nil {
		h.logger.Debug("rejecting body", zap.Error(err))
		h.reject(w, http.StatusBadRequest, observability.ReasonInvalidJSON, MsgInvalidJSON)
		return
	}

	excuse, err := h.generate(req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.reject(w, http.StatusBadRequest, rejectionReason(verr), verr.Message)
			return
		}
		h.logger.Error("generate excuse failed", zap.Error(err))
		h.reject(w, http.StatusInternalServerError, observability.ReasonInternal, MsgInternalError)
		return
	}

	resp := toExcuseView(*excuse)
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("encode excuse response failed", zap.Error(err))
		h.reject(w, http.StatusInternalServerError, observability.ReasonInternal, MsgInternalError)
		return
	}
	observability.RecordExcuseGenerated(resp.WorkoutDetails.WorkoutType, resp.WorkoutDetails.Intensity)
}

// generate shields the request from panics in selection.
func (h *Handler) generate(req domain.ExcuseRequest) (excuse *domain.Excuse, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			excuse = nil
			err = fmt.Errorf("%w: %v", ErrInternal, rec)
		}
	}()
	return h.service.GenerateExcuse(req)
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (domain.ExcuseRequest, error) {
	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return domain.ExcuseRequest{}, fmt.Errorf("%w: read body: %v", ErrInvalidJSON, err)
	}
	return DecodeExcuseRequest(raw)
}

// DecodeExcuseRequest parses a generate-excuse body. Field types are checked
// later by validation, so a field with the wrong JSON type decodes as absent.
func DecodeExcuseRequest(raw []byte) (domain.ExcuseRequest, error) {
	if !utf8.Valid(raw) {
		return domain.ExcuseRequest{}, fmt.Errorf("%w: body is not UTF-8", ErrInvalidJSON)
	}
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.ExcuseRequest{}, fmt.Errorf("%w: top-level value is not an object", ErrInvalidJSON)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.ExcuseRequest{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return domain.ExcuseRequest{
		WorkoutType: stringField(fields["workout_type"]),
		Duration:    numberField(fields["duration"]),
		Intensity:   stringField(fields["intensity"]),
	}, nil
}

func stringField(raw json.RawMessage) *string {
	if len(raw) == 0 || raw[0] != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func numberField(raw json.RawMessage) *json.Number {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return nil
	}
	return &n
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidWorkoutType):
		return observability.ReasonInvalidWorkoutType
	case errors.Is(err, domain.ErrInvalidDuration):
		return observability.ReasonInvalidDuration
	case errors.Is(err, domain.ErrInvalidIntensity):
		return observability.ReasonInvalidIntensity
	default:
		return observability.ReasonInternal
	}
}

// WorkoutDetailsView echoes the accepted request.
type WorkoutDetailsView struct {
	WorkoutType     string      `json:"workout_type"`
	DurationMinutes json.Number `json:"duration_minutes"`
	Intensity       string      `json:"intensity"`
}

// ExcuseResponse is the body for a successful POST /generate-excuse.
type ExcuseResponse struct {
	Excuse            string             `json:"excuse"`
	CounterMotivation string             `json:"counter_motivation"`
	WorkoutDetails    WorkoutDetailsView `json:"workout_details"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toExcuseView(excuse domain.Excuse) ExcuseResponse {
	return ExcuseResponse{
		Excuse:            excuse.Excuse,
		CounterMotivation: excuse.CounterMotivation,
		WorkoutDetails: WorkoutDetailsView{
			WorkoutType:     string(excuse.Details.WorkoutType),
			DurationMinutes: excuse.Details.DurationMinutes,
			Intensity:       string(excuse.Details.Intensity),
		},
	}
}

func (h *Handler) reject(w http.ResponseWriter, status int, reason, message string) {
	observability.RecordRequestRejected(reason)
	if err := writeJSON(w, status, ErrorResponse{Error: message}); err != nil {
		h.logger.Error("write error response failed", zap.Error(err))
	}
}

// writeJSON encodes before touching the response, so a returned error means
// nothing was written yet.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
	return nil
}
