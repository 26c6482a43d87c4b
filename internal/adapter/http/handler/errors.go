package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

func errorResponse(w http.ResponseWriter, status int, message any) {
	env := envelope{"error": message}

	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(500)
	}
}

// failedValidationResponse returns 422 UnprocessableEntity with the field errors.
func failedValidationResponse(w http.ResponseWriter, errors map[string]string) {
	errorResponse(w, http.StatusUnprocessableEntity, errors)
}

// badRequestResponse returns 400 BadRequest status
func badRequestResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusBadRequest, message)
}

func internalErrorResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusInternalServerError, message)
}

// serviceErrorResponse answers with the status GetCode picks for err. Server errors are logged
// and hidden from the client.
func serviceErrorResponse(ctx context.Context, w http.ResponseWriter, l logger.Logger, msg string, err error) {
	code := GetCode(err)
	if code >= http.StatusInternalServerError && code != http.StatusBadGateway {
		l.Error(wrap.ErrorCtx(ctx, err), msg, err)
		internalErrorResponse(w, "the server encountered a problem and could not process your request")
		return
	}
	if code == http.StatusBadGateway {
		l.Warn(wrap.ErrorCtx(ctx, err), msg, "error", err.Error())
	}
	errorResponse(w, code, err.Error())
}
