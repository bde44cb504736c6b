package swagger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/smartystreets/goconvey/convey"
)

func TestDocument(t *testing.T) {
	convey.Convey("Given the embedded OpenAPI document", t, func() {
		convey.Convey("When rendering it for a version", func() {
			out, err := Document("2.5.0")

			convey.Convey("Then info.version should carry it", func() {
				convey.So(err, convey.ShouldBeNil)
				doc, err := yaml.Parser().Unmarshal(out)
				convey.So(err, convey.ShouldBeNil)
				info, ok := doc["info"].(map[string]interface{})
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(info["version"], convey.ShouldEqual, "2.5.0")
				convey.So(info["title"], convey.ShouldEqual, "Sample DevOps App")
			})

			convey.Convey("And every route should be documented", func() {
				doc, _ := yaml.Parser().Unmarshal(out)
				paths, ok := doc["paths"].(map[string]interface{})
				convey.So(ok, convey.ShouldBeTrue)
				for _, p := range []string{"/", "/health", "/api/users", "/api/users/{id}"} {
					convey.So(paths, convey.ShouldContainKey, p)
				}
			})
		})
	})
}

func TestSwaggerHandler(t *testing.T) {
	convey.Convey("Given a swagger handler", t, func() {
		ctx := context.Background()
		r := chi.NewRouter()

		convey.Convey("When registering the swagger handler", func() {
			err := Register(ctx, r, "1.0.0")
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then it should handle /openapi.yaml route", func() {
				req := httptest.NewRequest("GET", "/openapi.yaml", http.NoBody)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "application/yaml; charset=utf-8")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "version: 1.0.0")
			})

			convey.Convey("And it should handle /api-docs route", func() {
				req := httptest.NewRequest("GET", "/api-docs", http.NoBody)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "text/html; charset=utf-8")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "redoc-container")
			})
		})
	})
}

func TestSwaggerErrors(t *testing.T) {
	convey.Convey("Given swagger error constants", t, func() {
		convey.Convey("Then ErrRender should be defined", func() {
			convey.So(ErrRender, convey.ShouldNotBeNil)
			convey.So(errors.Is(ErrRender, ErrRender), convey.ShouldBeTrue)
		})
	})
}

func TestSwaggerHandlerWithNilRouter(t *testing.T) {
	convey.Convey("Given a nil router", t, func() {
		ctx := context.Background()

		convey.Convey("When registering the swagger handler", func() {
			convey.Convey("Then it should panic", func() {
				convey.So(func() {
					_ = Register(ctx, nil, "1.0.0")
				}, convey.ShouldPanic)
			})
		})
	})
}
