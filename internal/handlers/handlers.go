package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/akashipov/brcode/internal/charges"
	customerrors "github.com/akashipov/brcode/internal/errors"
	"github.com/akashipov/brcode/internal/pix"
	"github.com/akashipov/brcode/internal/pkg/middleware/compress"
	"github.com/akashipov/brcode/internal/pkg/middleware/logger"
	"github.com/akashipov/brcode/internal/storage/charge"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 16

type PayloadRequest struct {
	Payload string `json:"payload"`
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

type Handlers struct {
	Service *charges.Service
	Log     *zap.SugaredLogger
}

func ServerRouter(svc *charges.Service, log *zap.SugaredLogger) http.Handler {
	h := &Handlers{Service: svc, Log: log}
	r := chi.NewRouter()
	r.Post("/charges", logger.WithLogging(http.HandlerFunc(h.CreateCharge), log))
	r.Get("/charges/{id}", logger.WithLogging(http.HandlerFunc(h.GetCharge), log))
	r.Post("/payloads/validate", logger.WithLogging(http.HandlerFunc(h.ValidatePayload), log))
	r.Post("/payloads/parse", logger.WithLogging(http.HandlerFunc(h.ParsePayload), log))
	return compress.GzipHandle(r, log)
}

func (h *Handlers) CreateCharge(w http.ResponseWriter, request *http.Request) {
	var req charge.ChargeRequest
	if cErr := decode(request, &req); cErr != nil {
		cErr.ReportError(w)
		return
	}
	_, data, err := h.Service.Issue(request.Context(), req)
	if err != nil {
		h.report(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, data)
}

func (h *Handlers) GetCharge(w http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")
	data, err := h.Service.Get(request.Context(), id)
	if err != nil {
		h.report(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, data)
}

func (h *Handlers) ValidatePayload(w http.ResponseWriter, request *http.Request) {
	var req PayloadRequest
	if cErr := decode(request, &req); cErr != nil {
		cErr.ReportError(w)
		return
	}
	data, err := json.Marshal(ValidateResponse{Valid: pix.IsValid(req.Payload)})
	if err != nil {
		h.report(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, data)
}

func (h *Handlers) ParsePayload(w http.ResponseWriter, request *http.Request) {
	var req PayloadRequest
	if cErr := decode(request, &req); cErr != nil {
		cErr.ReportError(w)
		return
	}
	details, err := pix.Parse(req.Payload)
	if err != nil {
		h.report(w, err)
		return
	}
	data, err := json.Marshal(details)
	if err != nil {
		h.report(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, data)
}

func (h *Handlers) report(w http.ResponseWriter, err error) {
	cErr := customerrors.FromError(err)
	if cErr.Status >= http.StatusInternalServerError {
		h.Log.Errorf("Request failed: %s", err.Error())
	}
	cErr.ReportError(w)
}

func decode(request *http.Request, v interface{}) *customerrors.CustomError {
	body, err := io.ReadAll(io.LimitReader(request.Body, maxBodySize+1))
	if err != nil {
		return &customerrors.CustomError{Message: "Problem with reading body: " + err.Error(), Status: http.StatusBadRequest}
	}
	if len(body) > maxBodySize {
		return &customerrors.CustomError{Message: "Body is too large", Status: http.StatusRequestEntityTooLarge}
	}
	err = json.Unmarshal(body, v)
	if err != nil {
		var syntaxErr *json.SyntaxError
		msg := "Problem with json body: " + err.Error()
		if errors.As(err, &syntaxErr) {
			msg = "Body is not valid json"
		}
		return &customerrors.CustomError{Message: msg, Status: http.StatusBadRequest}
	}
	return nil
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.Log.Errorf("Problem with writing response: %s", err.Error())
	}
}
