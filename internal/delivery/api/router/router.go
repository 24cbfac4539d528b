// Package router wires handlers and the session gates onto echo routes.
package router

import (
	"tunes/internal/delivery/api/middleware"
	"tunes/internal/delivery/api/router/handler"
	"tunes/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AdminHandler   *handler.AdminHandler
	ArtistHandler  *handler.ArtistHandler
	MusicHandler   *handler.MusicHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	adminHandler   *handler.AdminHandler
	artistHandler  *handler.ArtistHandler
	musicHandler   *handler.MusicHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		adminHandler:   params.AdminHandler,
		artistHandler:  params.ArtistHandler,
		musicHandler:   params.MusicHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
	anyRole := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleUser)

	api := e.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/login", r.userHandler.Login)
		users.POST("/logout", r.userHandler.Logout, authenticate)
		users.POST("/create", r.userHandler.SignUp)

		account := users.Group("/account", authenticate, anyRole)
		account.GET("", r.userHandler.Account)
		account.GET("/musics", r.userHandler.AccountMusics)
		account.PUT("/musics/add", r.userHandler.AddAccountMusic)
		account.DELETE("/musics/delete", r.userHandler.RemoveAccountMusic)
	}

	admin := api.Group("/admin", authenticate, adminOnly)
	{
		admin.GET("", r.adminHandler.ListUsers)
		admin.POST("/create", r.adminHandler.CreateUser)
		admin.GET("/:id", r.adminHandler.GetUser)
		admin.PUT("/:id/update", r.adminHandler.UpdateUser)
		admin.PUT("/:id/update/role", r.adminHandler.UpdateRole)
		admin.PUT("/:id/update/password", r.adminHandler.UpdatePassword)
		admin.DELETE("/:id/delete", r.adminHandler.DeleteUser)
		admin.GET("/:id/musics", r.adminHandler.ListUserMusics)
		admin.PUT("/:id/musics/add", r.adminHandler.AddUserMusic)
		admin.DELETE("/:id/musics/delete", r.adminHandler.RemoveUserMusic)
	}

	// Reads are public, writes need an admin session.
	artists := api.Group("/artist")
	{
		artists.GET("", r.artistHandler.List)
		artists.GET("/:id", r.artistHandler.Get)
		artists.GET("/:id/musics", r.artistHandler.ListMusics)
		artists.POST("", r.artistHandler.Create, authenticate, adminOnly)
		artists.PUT("/:id", r.artistHandler.Update, authenticate, adminOnly)
		artists.DELETE("/:id", r.artistHandler.Delete, authenticate, adminOnly)
	}

	musics := api.Group("/music")
	{
		musics.GET("", r.musicHandler.List)
		musics.GET("/:id", r.musicHandler.Get)
		musics.GET("/:id/users", r.musicHandler.ListListeners, authenticate, adminOnly)
		musics.POST("/create", r.musicHandler.Create, authenticate, adminOnly)
		musics.PUT("/update/:id", r.musicHandler.Update, authenticate, adminOnly)
		musics.DELETE("/delete/:id", r.musicHandler.Delete, authenticate, adminOnly)
	}
}
