package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mjohndus/sepa-qr-data/internal/domain/epc"
	"github.com/mjohndus/sepa-qr-data/internal/domain/payment"
	"github.com/mjohndus/sepa-qr-data/internal/domain/repository"
	"github.com/mjohndus/sepa-qr-data/internal/infrastructure/qrgenerator"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/generateqr"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/issue"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/lookup"
)

const maxBodyBytes = 16 << 10

type Handler struct {
	issueUC      *issue.UseCase
	lookupUC     *lookup.UseCase
	generateQRUC *generateqr.UseCase
	logger       *slog.Logger
}

func NewHandler(
	issueUC *issue.UseCase,
	lookupUC *lookup.UseCase,
	generateQRUC *generateqr.UseCase,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		issueUC:      issueUC,
		lookupUC:     lookupUC,
		generateQRUC: generateQRUC,
		logger:       logger,
	}
}

type IssueResponse struct {
	ID       string `json:"id"`
	Payload  string `json:"payload"`
	Replayed bool   `json:"replayed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	idempotencyKey := r.Header.Get("X-Idempotency-Key")
	if idempotencyKey == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "X-Idempotency-Key header required"})
		return
	}

	details, ok := decodeDetails(w, r)
	if !ok {
		return
	}

	resp, err := h.issueUC.Execute(r.Context(), issue.Request{
		IdempotencyKey: idempotencyKey,
		Details:        details,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	status := http.StatusCreated
	if resp.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, IssueResponse{
		ID:       resp.ID.String(),
		Payload:  resp.Payload,
		Replayed: resp.Replayed,
	})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	issued, err := h.lookupUC.Execute(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(issued.Content()))
}

func (h *Handler) HandleStoredQR(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	png, err := h.generateQRUC.ExecuteStored(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writePNG(w, png)
}

func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	details, ok := decodeDetails(w, r)
	if !ok {
		return
	}

	png, err := h.generateQRUC.Execute(generateqr.Request{Details: details})
	if err != nil {
		h.writeError(w, err)
		return
	}

	writePNG(w, png)
}

func (h *Handler) HandleCurrencies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, epc.SupportedCurrencies())
}

func decodeDetails(w http.ResponseWriter, r *http.Request) (payment.Details, bool) {
	var details payment.Details
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&details); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return details, false
	}
	return details, true
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *epc.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: verr.Error(),
			Field: verr.Field,
			Kind:  verr.Kind.Error(),
		})
	case errors.Is(err, qrgenerator.ErrPayloadTooLarge),
		errors.Is(err, qrgenerator.ErrUnencodableCharacter),
		errors.Is(err, qrgenerator.ErrUnsupportedCharset):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "payload not found"})
	default:
		h.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(png)
}
