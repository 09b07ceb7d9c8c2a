package customerrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/akashipov/brcode/internal/pix"
	"github.com/akashipov/brcode/internal/storage"
)

type CustomError struct {
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (e *CustomError) Error() string {
	return e.Message
}

func (e *CustomError) ReportError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	err := json.NewEncoder(w).Encode(e)
	if err != nil {
		fmt.Printf("Problem with writing to responser status is %d: %s\n", e.Status, err.Error())
	}
}

// FromError picks the HTTP status matching err.
func FromError(err error) *CustomError {
	var cErr *CustomError
	if errors.As(err, &cErr) {
		return cErr
	}
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, pix.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, pix.ErrInvalidChecksum),
		errors.Is(err, pix.ErrMalformedPayload),
		errors.Is(err, pix.ErrFieldNotFound):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		status = http.StatusConflict
	}
	return &CustomError{Message: err.Error(), Status: status}
}
