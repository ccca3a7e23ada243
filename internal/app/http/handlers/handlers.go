package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"obiene/quotation_backend/internal/domain/quotation"
	"obiene/quotation_backend/internal/domain/quotation/pdf"
	"obiene/quotation_backend/internal/infra/store"
)

type Handlers struct {
	Session  *quotation.Session
	Store    *store.Store
	PDF      pdf.Generator
	Log      *logrus.Logger
	validate *validator.Validate
}

func New(sess *quotation.Session, st *store.Store, gen pdf.Generator, log *logrus.Logger) *Handlers {
	return &Handlers{
		Session:  sess,
		Store:    st,
		PDF:      gen,
		Log:      log,
		validate: validator.New(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.WithError(err).Error("encode response")
	}
}

// respondError maps domain errors to statuses. Every failure leaves the
// session in its pre-failure state, so the client can simply retry.
func (h *Handlers) respondError(w http.ResponseWriter, err error) {
	var verr *quotation.ValidationError
	switch {
	case errors.As(err, &verr):
		h.respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error()})
	case errors.Is(err, quotation.ErrIndexOutOfRange), errors.Is(err, store.ErrNotFound):
		h.respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		h.Log.WithError(err).Error("request failed")
		h.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
