package result

import (
	"fmt"
	"net/http"
)

type State string

const (
	StateOK    State = "OK"
	StateError State = "ERROR"
)

// Status classifies an error result. Controllers map these to HTTP codes;
// everything below the controller layer only ever sees the classifier.
type Status string

const (
	StatusNotFound     Status = "NOT_FOUND"
	StatusBadRequest   Status = "BAD_REQUEST"
	StatusUnauthorized Status = "UNAUTHORIZED"
	StatusInternal     Status = "INTERNAL"
)

type Failure struct {
	Message string `json:"message"`
	Status  Status `json:"status"`
}

// Result is the envelope every service operation returns instead of
// propagating errors across layers. Exactly one of Data/Error is meaningful,
// selected by State.
type Result struct {
	State State    `json:"state"`
	Data  any      `json:"data,omitempty"`
	Error *Failure `json:"error,omitempty"`
}

func Ok(data any) Result {
	return Result{State: StateOK, Data: data}
}

func Errorf(status Status, format string, args ...any) Result {
	return Result{
		State: StateError,
		Error: &Failure{Message: fmt.Sprintf(format, args...), Status: status},
	}
}

// Internal wraps a storage failure. Services use it so no raw error ever
// crosses the service boundary.
func Internal(err error) Result {
	return Errorf(StatusInternal, "%v", err)
}

func (r Result) IsError() bool {
	return r.State == StateError
}

// HTTPStatus translates a classifier into a protocol status code. Only the
// controllers call this.
func HTTPStatus(s Status) int {
	switch s {
	case StatusNotFound:
		return http.StatusNotFound
	case StatusBadRequest:
		return http.StatusBadRequest
	case StatusUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
