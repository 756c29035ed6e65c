package apiutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

const maxJSONBodyBytes = 1 << 16

type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type HandlerError struct {
	Status  int
	Message string
	Err     error
}

func (e HandlerError) Error() string {
	return e.Message
}

func (e HandlerError) Unwrap() error {
	return e.Err
}

// BadRequest wraps err as a 400 whose message is err's text.
func BadRequest(err error) HandlerError {
	return HandlerError{Status: http.StatusBadRequest, Message: err.Error(), Err: err}
}

func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("missing request body")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if err := encoder.Encode(payload); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteBody writes body with the given content type.
func WriteBody(w http.ResponseWriter, status int, contentType, body string) error {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, err := io.WriteString(w, body)
	return err
}

// WriteError maps err to a plain-text response. HandlerError and FieldError
// keep their status and message; anything else is logged and becomes a 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var handlerErr HandlerError
	if errors.As(err, &handlerErr) {
		if handlerErr.Status >= http.StatusInternalServerError {
			log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(handlerErr.Message)
		}
		http.Error(w, handlerErr.Message, handlerErr.Status)
		return
	}

	var fieldErr FieldError
	if errors.As(err, &fieldErr) {
		http.Error(w, fieldErr.Error(), http.StatusBadRequest)
		return
	}

	log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Unhandled request error")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
