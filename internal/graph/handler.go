package graph

import (
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"gocart/internal/auth"
)

// NewSchema parses the schema against the root resolver. Panics on a
// schema/resolver mismatch, which is a programming error caught at startup.
func NewSchema(resolver *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, resolver)
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves GraphQL over HTTP. Before executing a query it builds
// the per-request context: extract a token from the Authorization
// header or the token cookie, resolve it into an identity when it
// verifies, and attach the response writer for cookie-setting
// resolvers. A missing or invalid token leaves the request anonymous;
// each resolver decides whether that is acceptable.
func Handler(schema *graphql.Schema, jwtService *auth.JWTService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req request
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}

		r := c.Request()
		ctx := r.Context()

		if token := auth.ExtractToken(r); token != "" {
			ctx = auth.WithToken(ctx, token)
			if claims, err := jwtService.ValidateToken(token); err == nil {
				ctx = auth.WithIdentity(ctx, auth.IdentityFromClaims(claims))
			}
		}

		ctx = auth.WithResponseWriter(ctx, c.Response())

		resp := schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
		return c.JSON(http.StatusOK, resp)
	}
}
