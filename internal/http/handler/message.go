package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const unexpectedErr = "unexpected error occurred"

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`   // error detail (if any)
}

func respond(logs *zap.SugaredLogger, w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	// the status line is already sent, so an encoding failure can only be logged
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
