package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"
)

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func (e *codedError) Unwrap() error {
	return e.err
}

func CodedError(code int, err error) error {
	return &codedError{err: err, code: code}
}

func CodedErrorf(code int, format string, args ...any) error {
	return &codedError{err: fmt.Errorf(format, args...), code: code}
}

func ParseRequest[T any](r *http.Request) (T, error) {
	var data T
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		slog.Error("error parsing request body", "error", err)
		return data, CodedErrorf(http.StatusBadRequest, "unable to parse request body")
	}
	return data, nil
}

func ParseRequestQueryParams[T any](r *http.Request) (T, error) {
	var data T
	if err := r.ParseForm(); err != nil {
		slog.Error("error parsing form", "error", err)
		return data, CodedErrorf(http.StatusBadRequest, "unable to parse request query params")
	}

	if err := schema.NewDecoder().Decode(&data, r.Form); err != nil {
		slog.Error("error decoding query params", "error", err)
		return data, CodedErrorf(http.StatusBadRequest, "unable to parse request query params")
	}

	return data, nil
}

// WriteError writes a JSON error body with the given status.
func WriteError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); encodeErr != nil {
		slog.Error("error serializing error body", "error", encodeErr)
	}
}

func handleEndpointError(w http.ResponseWriter, err error) {
	var cerr *codedError
	if errors.As(err, &cerr) {
		WriteError(w, cerr.code, err)
		if cerr.code == http.StatusInternalServerError {
			slog.Error("internal server error received in endpoint", "error", err)
		}
		return
	}
	slog.Error("received non coded error from endpoint", "error", err)
	WriteError(w, http.StatusInternalServerError, err)
}

func RestHandler(handler func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := handler(r)
		if err != nil {
			handleEndpointError(w, err)
			return
		}

		if res == nil {
			res = struct{}{}
		}

		WriteJsonResponse(w, res)
	}
}

// TextStream lazily yields generated text fragments in emission order. A
// non-nil error ends the stream; fragments already yielded have been
// written to the client.
type TextStream func(yield func(string, error) bool)

// ChatStreamHandler serves endpoints that answer with either a JSON body or
// a chunked text stream. A nil stream means body is the complete response.
// The status line is held back until the first fragment arrives, so a
// provider failing up front still yields a structured error; once streaming
// has begun a failure simply truncates the body.
func ChatStreamHandler(handler func(r *http.Request) (any, TextStream, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, stream, err := handler(r)
		if err != nil {
			handleEndpointError(w, err)
			return
		}

		if stream == nil {
			WriteJsonResponse(w, body)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			slog.Error("response writer does not support flushing")
			WriteError(w, http.StatusInternalServerError, errors.New("streaming not supported"))
			return
		}

		started := false
		for fragment, err := range stream {
			if err != nil {
				if !started {
					handleEndpointError(w, err)
					return
				}
				slog.Error("chat stream aborted", "error", err)
				return
			}
			if !started {
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				started = true
			}
			if _, writeErr := io.WriteString(w, fragment); writeErr != nil {
				slog.Error("error writing stream fragment", "error", writeErr)
				return
			}
			flusher.Flush()
		}
		if !started {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
		}
	}
}

func WriteJsonResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("error serializing response body", "error", err)
	}
}
