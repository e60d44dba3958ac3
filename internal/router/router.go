package router

import (
	"net/http"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gocart/internal/auth"
	"gocart/internal/graph"
)

// Register wires routes and middleware.
func Register(e *echo.Echo, schema *graphqlgo.Schema, jwtService *auth.JWTService) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.POST("/graphql", graph.Handler(schema, jwtService))
}
