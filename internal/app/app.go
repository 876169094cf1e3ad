package app

import (
	"fmt"
	"net/http"
	"time"
	"userhub/internal/app/deps"
	"userhub/internal/app/services"
	confirmpasswordreset "userhub/internal/http/handlers/users/confirm_password_reset"
	createuser "userhub/internal/http/handlers/users/create_user"
	deleteuser "userhub/internal/http/handlers/users/delete_user"
	getaddress "userhub/internal/http/handlers/users/get_address"
	getuser "userhub/internal/http/handlers/users/get_user"
	getuseraddresses "userhub/internal/http/handlers/users/get_user_addresses"
	listusers "userhub/internal/http/handlers/users/list_users"
	requestpasswordreset "userhub/internal/http/handlers/users/request_password_reset"
	updateuser "userhub/internal/http/handlers/users/update_user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterOptions struct {
	IsTestMode            bool
	AllowedOrigins        []string
	UsersPageDefaultLimit uint
	UsersPageMaxLimit     uint
}

func NewRouter(s *services.Services, opts RouterOptions) http.Handler {
	usersRouter := chi.NewRouter()
	usersRouter.Method(http.MethodPost, "/", createuser.New(s.CreateUser))
	usersRouter.Method(
		http.MethodGet,
		"/",
		listusers.New(s.ListUsers, s.GetUserByEmail, opts.UsersPageDefaultLimit, opts.UsersPageMaxLimit),
	)
	usersRouter.Method(
		http.MethodPost,
		"/password-reset-request",
		requestpasswordreset.New(s.RequestPasswordReset, opts.IsTestMode),
	)
	usersRouter.Method(http.MethodPost, "/password-reset", confirmpasswordreset.New(s.ConfirmPasswordReset))
	usersRouter.Method(http.MethodGet, "/{userID}", getuser.New(s.GetUserByPublicID))
	usersRouter.Method(http.MethodPut, "/{userID}", updateuser.New(s.UpdateUser))
	usersRouter.Method(http.MethodDelete, "/{userID}", deleteuser.New(s.DeleteUser))
	usersRouter.Method(http.MethodGet, "/{userID}/addresses", getuseraddresses.New(s.GetUserAddresses))
	usersRouter.Method(http.MethodGet, "/{userID}/addresses/{addressID}", getaddress.New(s.GetAddress))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/users", usersRouter)

	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(s, RouterOptions{
		IsTestMode:            deps.Config.IsTestMode,
		AllowedOrigins:        deps.Config.AllowedOrigins,
		UsersPageDefaultLimit: deps.Config.UsersPageDefaultLimit,
		UsersPageMaxLimit:     deps.Config.UsersPageMaxLimit,
	})

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           router,
		Addr:              address,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
