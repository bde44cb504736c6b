package service_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/okian/sampleapp/internal/adapters/repository"
	service "github.com/okian/sampleapp/internal/app"
	"github.com/okian/sampleapp/internal/domain/model"
	"github.com/okian/sampleapp/internal/domain/types"
	"github.com/okian/sampleapp/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

// failingStore returns err from every call.
type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, int64) (model.User, error) { return model.User{}, f.err }
func (f failingStore) List(context.Context) ([]model.User, error)     { return nil, f.err }
func (f failingStore) Create(context.Context, model.NewUser) (model.User, error) {
	return model.User{}, f.err
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should report the default build identity", func() {
			So(svc, ShouldNotBeNil)
			So(svc.Info(), ShouldResemble, types.AppInfo{Version: "1.0.0", Environment: "development"})
		})

		Convey("And it should serve the sample users", func() {
			users, err := svc.ListUsers(context.Background())
			So(err, ShouldBeNil)
			So(users, ShouldHaveLength, 2)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithInfo(types.AppInfo{Version: "2.0.0", Environment: "test"}),
			service.WithLogger(logger.Named("test")),
			service.WithStore(repository.NewFixedStore(repository.WithUsers())),
		)

		Convey("Then the options should be applied", func() {
			So(svc.Info().Version, ShouldEqual, "2.0.0")
			So(svc.Info().Environment, ShouldEqual, "test")
			users, err := svc.ListUsers(context.Background())
			So(err, ShouldBeNil)
			So(users, ShouldBeEmpty)
		})
	})

	Convey("Given nil options", t, func() {
		svc := service.New(service.WithStore(nil), service.WithLogger(nil))

		Convey("Then defaults should be kept", func() {
			_, err := svc.GetUser(context.Background(), 1)
			So(err, ShouldBeNil)
		})
	})
}

func TestService_Users(t *testing.T) {
	Convey("Given a service over the sample store", t, func() {
		ctx := context.Background()
		svc := service.New()

		Convey("When getting user 1", func() {
			u, err := svc.GetUser(ctx, 1)

			Convey("Then it should be John", func() {
				So(err, ShouldBeNil)
				So(u.ID, ShouldEqual, 1)
				So(u.Name, ShouldEqual, "John Doe")
			})
		})

		Convey("When getting user 999", func() {
			_, err := svc.GetUser(ctx, 999)

			Convey("Then it should be not found", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When creating a user", func() {
			u, err := svc.CreateUser(ctx, model.NewUser{Name: "Test User", Email: "test@example.com"})

			Convey("Then it should echo the input with id 3", func() {
				So(err, ShouldBeNil)
				So(u, ShouldResemble, model.User{ID: 3, Name: "Test User", Email: "test@example.com"})
			})

			Convey("And the list should be unchanged", func() {
				users, _ := svc.ListUsers(ctx)
				So(users, ShouldResemble, repository.SampleUsers())
			})
		})
	})
}

func TestService_StoreErrors(t *testing.T) {
	Convey("Given a service over a failing store", t, func() {
		ctx := context.Background()
		boom := errors.New("boom")
		svc := service.New(service.WithStore(failingStore{err: boom}))

		Convey("Then every operation should surface the error", func() {
			_, err := svc.ListUsers(ctx)
			So(errors.Is(err, boom), ShouldBeTrue)

			_, err = svc.GetUser(ctx, 1)
			So(errors.Is(err, boom), ShouldBeTrue)

			_, err = svc.CreateUser(ctx, model.NewUser{Name: "n", Email: "e"})
			So(errors.Is(err, boom), ShouldBeTrue)
		})
	})
}
