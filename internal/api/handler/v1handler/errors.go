package v1handler

import (
	"context"
	"errors"
	"net/http"
	"phishguard/internal/api/specs/v1specs"
	"phishguard/internal/assessor"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/validate"
	"go.uber.org/zap"
)

func newErrorStatusCode(status int, title, message string) *v1specs.ErrorStatusCode {
	res := &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response:   v1specs.Error{Error: title},
	}
	if message != "" {
		res.Response.Message = v1specs.NewOptString(message)
	}

	return res
}

// NewError maps err to a status code and a user facing body.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	var secErr *ogenerrors.SecurityError
	if errors.As(err, &secErr) {
		err = secErr.Err
		if serrors.KindOf(err) == nil {
			err = serrors.Wrap(serrors.ErrUnauthorized, err, "missing bearer token")
		}
	}

	status := serrors.HTTPStatus(err)

	var se *serrors.Error
	hasSemantic := errors.As(err, &se)
	message := func(fallback string) string {
		if hasSemantic && se.Message() != "" {
			return se.Message()
		}

		return fallback
	}

	switch serrors.KindOf(err) {
	case serrors.ErrBadRequest:
		if hasSemantic && se.Message() == assessor.MsgNoURL {
			return newErrorStatusCode(status, assessor.MsgNoURL, "Please provide a URL")
		}

		return newErrorStatusCode(status, "Invalid request", message(err.Error()))
	case serrors.ErrUnauthorized:
		return newErrorStatusCode(status, "Unauthorized", message("missing or invalid bearer token"))
	case serrors.ErrUnavailable:
		return newErrorStatusCode(status, assessor.MsgModelUnavailable, "Models not loaded")
	case serrors.ErrTimeout:
		return newErrorStatusCode(status, "Request timed out", message("the assessment did not finish in time"))
	}

	logger.Error(ctx, "assessment failed", zap.Error(err))

	detail := err.Error()
	if hasSemantic && se.Cause() != nil {
		detail = se.Cause().Error()
	}

	return newErrorStatusCode(status, assessor.MsgPredictionFailed, detail)
}

// HandleError writes errors raised by the generated server before a handler
// runs, e.g. bodies that are not a JSON object.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var decodeErr *ogenerrors.DecodeRequestError
	switch {
	case errors.Is(err, validate.ErrBodyRequired):
		// an empty body carries no URL
		err = serrors.With(serrors.ErrBadRequest, assessor.MsgNoURL)
	case errors.As(err, &decodeErr):
		err = serrors.Wrap(serrors.ErrBadRequest, decodeErr.Err, "request body must be a JSON object")
	}

	writeError(w, h.NewError(ctx, err))
}

// NotFound replies to unknown endpoints.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, newErrorStatusCode(http.StatusNotFound, "Endpoint not found", ""))
}

func writeError(w http.ResponseWriter, res *v1specs.ErrorStatusCode) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}
