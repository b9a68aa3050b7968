package result

import (
	"net/http"
	"testing"
)

func TestOkAndError(t *testing.T) {
	ok := Ok("payload")
	if ok.IsError() {
		t.Error("Ok result reports IsError")
	}
	if ok.Data != "payload" {
		t.Errorf("Data = %v, want payload", ok.Data)
	}
	if ok.Error != nil {
		t.Errorf("Error = %v, want nil", ok.Error)
	}

	e := Errorf(StatusNotFound, "task with id %s not found", "42")
	if !e.IsError() {
		t.Error("Errorf result does not report IsError")
	}
	if e.Error.Status != StatusNotFound {
		t.Errorf("Status = %s, want NOT_FOUND", e.Error.Status)
	}
	if e.Error.Message != "task with id 42 not found" {
		t.Errorf("Message = %q", e.Error.Message)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		status Status
		want   int
	}{
		{StatusNotFound, http.StatusNotFound},
		{StatusBadRequest, http.StatusBadRequest},
		{StatusUnauthorized, http.StatusUnauthorized},
		{StatusInternal, http.StatusInternalServerError},
		{Status("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.status); got != tc.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tc.status, got, tc.want)
		}
	}
}
