package errors

import "net/http"

// HTTPStatus maps the taxonomy onto response codes for the delivery layer.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Payload returns the AppError body for a response, normalizing non-taxonomy
// errors to an internal error so driver details never leak to clients.
func Payload(err error) *AppError {
	e := err
	for e != nil {
		if app, ok := e.(*AppError); ok {
			return app
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return &AppError{Code: CodeInternal, Message: "internal server error"}
}
