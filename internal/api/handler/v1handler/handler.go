// Package v1handler implements the v1 HTTP API on top of the ranking service.
package v1handler

import (
	"context"
	"errors"
	"meetbuddy/internal/ranking"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/logger"
	"meetbuddy/pkg/serrors"
	"net/http"

	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps POST bodies when Deps.MaxBodyBytes is not set.
const DefaultMaxBodyBytes = 1 << 20

// Deps holds the collaborators of Handler.
type Deps struct {
	Ranker ranking.Ranker
	PartyA domain.Party
	PartyB domain.Party
	// Title is the default invite summary.
	Title string
	// MaxBodyBytes limits the size of request bodies.
	MaxBodyBytes int64
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New creates a Handler.
func New(deps Deps) *Handler {
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux. Every route passes through auth.
func (h *Handler) Register(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	mux.Handle("GET /v1/suggestions", auth(http.HandlerFunc(h.GetSuggestions)))
	mux.Handle("POST /v1/suggestions", auth(http.HandlerFunc(h.PostSuggestions)))
	mux.Handle("GET /v1/suggestions/{rank}/invite.ics", auth(http.HandlerFunc(h.GetInvite)))
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string
	Message string
}

// StatusCodeError pairs an ErrorResponse with its HTTP status.
type StatusCodeError struct {
	StatusCode int
	Response   ErrorResponse
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrInternal:     "internal error",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrRateLimited:  "too many requests",
}

var statusCodes = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrInternal:     http.StatusInternalServerError,
	serrors.ErrTimeout:      http.StatusGatewayTimeout,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
	serrors.ErrRateLimited:  http.StatusTooManyRequests,
}

// NewError maps err to a status code and response body. Messages of internal
// errors are never exposed.
func (h *Handler) NewError(ctx context.Context, err error) *StatusCodeError {
	kind := serrors.KindOf(err)
	status, ok := statusCodes[kind]
	if !ok {
		kind, status = serrors.ErrInternal, http.StatusInternalServerError
	}

	msg := defaultMessages[kind]
	var se *serrors.Error
	semantic := errors.As(err, &se)
	switch {
	case kind == serrors.ErrInternal:
	case semantic && se.Message() != "":
		msg = se.Message()
	case kind == serrors.ErrBadRequest && !semantic && !errors.Is(kind, err):
		// validation errors without a semantic wrapper, e.g. malformed slots
		msg = err.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &StatusCodeError{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
}

// WriteError responds with the JSON rendering of err.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, encodeError(res.Response))
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
