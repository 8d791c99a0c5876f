package api

import (
	"errors"
	"net/http"

	respond "github.com/solacehq/solace-server/internal/api/respond"
	"github.com/solacehq/solace-server/internal/llm"
	"github.com/solacehq/solace-server/internal/model"
)

// upstreamMessage is the only detail clients see when the text-generation
// provider fails; provider specifics stay in the logs.
const upstreamMessage = "Guide generation is temporarily unavailable. Please try again in a few moments."

// writeServiceError maps service-layer errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case model.IsValidationError(err):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	case errors.Is(err, llm.ErrUnavailable), errors.Is(err, model.ErrUpstream):
		respond.WriteBadGateway(w, upstreamMessage)
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
