package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agendalabs/contacts-api/internal/contact"
)

// RouteNotFound is mounted as the gin NoRoute handler.
func RouteNotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "The requested route does not exist.")
}

// ListContacts handles GET /contacts.
func (s *Server) ListContacts(c *gin.Context) {
	respond(c, s.svc.List(c.Request.Context()))
}

// GetContact handles GET /contacts/:id.
func (s *Server) GetContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}
	respond(c, s.svc.GetByID(c.Request.Context(), id))
}

// CreateContact handles POST /contacts. The payload is validated in
// insert mode: every required field must be present and well formed.
func (s *Server) CreateContact(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	m, err := contact.New(payload, contact.ModeInsert)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respond(c, s.svc.Create(c.Request.Context(), m))
}

// UpdateContact handles PUT /contacts/:id. Any subset of fields is
// accepted; supplied values must individually pass validation, and the
// service rejects a payload that supplies nothing at all.
func (s *Server) UpdateContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	m, err := contact.New(payload, contact.ModeUpdate)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respond(c, s.svc.Update(c.Request.Context(), id, m))
}

// DeleteContact handles DELETE /contacts/:id.
func (s *Server) DeleteContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}
	respond(c, s.svc.Delete(c.Request.Context(), id))
}

// contactID parses the :id path parameter. A non-numeric id is rejected
// up front instead of being handed to the store.
func contactID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "The contact ID must be a number.")
		return 0, false
	}
	return id, true
}

// bindPayload decodes the request body into a raw field map; the contact
// model performs the field-level validation.
func bindPayload(c *gin.Context) (map[string]any, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "The request body must be valid JSON.")
		return nil, false
	}
	return payload, true
}
