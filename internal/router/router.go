package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"brnaccounts/internal/config"
	"brnaccounts/internal/handler"
)

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, accountHandler *handler.AccountHandler) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// the original frontend is served elsewhere; allow everything
	e.Use(middleware.CORS())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// uploaded profile pictures are fetched back by their stored path
	e.Static("/uploads", cfg.UploadDir)

	e.POST("/signup", accountHandler.Signup)
	e.POST("/login", accountHandler.Login)
	e.PUT("/updateProfile", accountHandler.UpdateProfile)
	e.DELETE("/deleteProfile", accountHandler.DeleteProfile)
}
