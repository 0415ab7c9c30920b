// Package handlers contains the gin handlers for the contacts API.
//
// Handlers translate HTTP payloads into validated contact models, invoke
// the service, and render its result envelope. Validation failures are
// caught here at the boundary; they never reach the repository.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendalabs/contacts-api/internal/contact"
	"github.com/agendalabs/contacts-api/internal/store"
)

// Server bundles the handler dependencies.
type Server struct {
	svc *contact.Service
	db  *store.DB
}

// NewServer returns a Server backed by svc. db is only used by the
// readiness probe.
func NewServer(svc *contact.Service, db *store.DB) *Server {
	return &Server{svc: svc, db: db}
}

// status is the status object of the response envelope.
type status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// envelope is the response body shape shared by every endpoint:
// {"status": {"success", "message"}, "data": ...}.
type envelope struct {
	Status status `json:"status"`
	Data   any    `json:"data"`
}

// respond renders a service result as the response envelope. Failure
// results always carry null data.
func respond(c *gin.Context, res contact.Result) {
	body := envelope{Status: status{Success: res.Success, Message: res.Message}}
	if res.Success {
		body.Data = res.Data
	}
	c.JSON(res.Code, body)
}

// respondError renders a failure envelope without a service result.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, envelope{Status: status{Success: false, Message: message}})
}
