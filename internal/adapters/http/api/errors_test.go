package api

import (
	"errors"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKindError(t *testing.T) {
	Convey("Given kind errors", t, func() {
		cause := errors.New("unexpected EOF")

		Convey("When wrapping a cause", func() {
			err := WrapKind("api.create_user", ErrBadRequest, cause)

			Convey("Then both kind and cause should be reachable", func() {
				So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
				So(errors.Is(err, cause), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "api.create_user: bad request: unexpected EOF")
			})
		})

		Convey("When creating a kind without cause", func() {
			err := NewKind("api.create_user", ErrValidation)

			Convey("Then the message should omit it", func() {
				So(errors.Is(err, ErrValidation), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "api.create_user: validation failed")
			})
		})

		Convey("When mapping kinds to responses", func() {
			status, msg := statusAndMessage(NewKind("op", ErrValidation))
			So(status, ShouldEqual, http.StatusBadRequest)
			So(msg, ShouldEqual, "Name and email are required")

			status, msg = statusAndMessage(NewKind("op", ErrNotFound))
			So(status, ShouldEqual, http.StatusNotFound)
			So(msg, ShouldEqual, "User not found")

			status, _ = statusAndMessage(cause)
			So(status, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestGetErrorType(t *testing.T) {
	Convey("Given HTTP status codes", t, func() {
		So(getErrorType(http.StatusInternalServerError), ShouldEqual, "server_error")
		So(getErrorType(http.StatusNotFound), ShouldEqual, "not_found")
		So(getErrorType(http.StatusBadRequest), ShouldEqual, "client_error")
		So(getErrorType(http.StatusOK), ShouldEqual, "unknown")
	})
}
