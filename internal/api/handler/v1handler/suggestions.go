package v1handler

import (
	"errors"
	"io"
	"meetbuddy/internal/invite"
	"meetbuddy/internal/ranking"
	"meetbuddy/pkg/serrors"
	"net/http"
	"strconv"
)

// GetSuggestions ranks the slots of the configured sources.
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Ranker.Suggest(r.Context())
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, EncodeResult(res, h.deps.PartyA, h.deps.PartyB, explain(r)))
}

// PostSuggestions ranks the slots posted in the request body.
func (h *Handler) PostSuggestions(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.deps.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "request body exceeds %d bytes", tooLarge.Limit))

			return
		}
		h.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	req, err := DecodeSuggestRequest(body)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	res, err := h.deps.Ranker.Rank(r.Context(), ranking.Request{
		PartyA:   req.PartyA,
		PartyB:   req.PartyB,
		Fairness: req.Fairness,
	})
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, EncodeResult(res, h.deps.PartyA, h.deps.PartyB, explain(r)))
}

// GetInvite exports the suggestion with the given rank as an iCalendar file.
func (h *Handler) GetInvite(w http.ResponseWriter, r *http.Request) {
	rank, err := strconv.Atoi(r.PathValue("rank"))
	if err != nil || rank < 1 {
		h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "rank must be a positive integer"))

		return
	}

	res, err := h.deps.Ranker.Suggest(r.Context())
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	entry, ok := res.Entry(rank)
	if !ok {
		h.WriteError(w, r, serrors.With(serrors.ErrNotFound, "no suggestion with rank %d", rank))

		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		title = h.deps.Title
	}
	if title == "" {
		title = invite.DefaultTitle
	}

	w.Header().Set("Content-Type", invite.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+invite.Filename(rank)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, invite.ICS(entry.Interval.Start, entry.Interval.End, title))
}

func explain(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("explain"))

	return err == nil && v
}
