package common

import (
	"encoding/json"
	"net/http"

	"github.com/VinothKuppanna/gastimator/pkg/data/model"
)

const contentTypeJSON = "application/json; charset=utf-8"

func RespondJSON(resp http.ResponseWriter, statusCode int, body interface{}) error {
	resp.Header().Set("Content-Type", contentTypeJSON)
	resp.WriteHeader(statusCode)
	return json.NewEncoder(resp).Encode(body)
}

// RespondWithError writes a BaseResponse carrying message and reports whether
// err was non-nil.
func RespondWithError(err error, resp http.ResponseWriter, statusCode int, message string) bool {
	if err == nil {
		return false
	}
	if len(message) == 0 {
		message = err.Error()
	}
	_ = RespondJSON(resp, statusCode, &model.BaseResponse{
		Status:  http.StatusText(statusCode),
		Message: message,
	})
	return true
}

type responseWriter struct {
	http.ResponseWriter
	status        int
	error         []byte
	headerWritten bool
}

func WrapResponse(response http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: response}
}

func (rw *responseWriter) Status() int {
	if rw.status == 0 {
		return http.StatusOK
	}
	return rw.status
}

func (rw *responseWriter) Error() []byte {
	return rw.error
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.headerWritten {
		return
	}
	rw.status = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
	rw.headerWritten = true
}

func (rw *responseWriter) Write(p []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	if rw.status >= http.StatusBadRequest {
		rw.error = append(rw.error, p...)
	}
	return rw.ResponseWriter.Write(p)
}

// MethodNotAllowed is installed as the router's MethodNotAllowedHandler.
func MethodNotAllowed(resp http.ResponseWriter, _ *http.Request) {
	_ = RespondJSON(resp, http.StatusMethodNotAllowed, &model.BaseResponse{
		Status:  http.StatusText(http.StatusMethodNotAllowed),
		Message: "Method not allowed",
	})
}
