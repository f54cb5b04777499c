package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finrecords/financial-records-api/internal/audit"
	"github.com/finrecords/financial-records-api/internal/db"
	"github.com/finrecords/financial-records-api/internal/domain/client"
	"github.com/finrecords/financial-records-api/internal/httperr"
	"github.com/finrecords/financial-records-api/internal/httpresp"
	"github.com/finrecords/financial-records-api/internal/middleware"
	"github.com/finrecords/financial-records-api/internal/models"
)

type ClientHandler struct {
	repo  client.Repository
	audit *audit.Dispatcher
}

func NewClientHandler(repo client.Repository, dispatcher *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{repo: repo, audit: dispatcher}
}

// GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to list clients", err)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	httpresp.List(c, clients, len(clients))
}

// GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseClientID(c)
	if !ok {
		return
	}

	found, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Failed to get client", err)
		return
	}
	if found == nil {
		httperr.NotFound(c, "Client not found")
		return
	}

	httpresp.OK(c, found)
}

// POST /api/clients
//
// Write flow: bind the whitelisted fields, sanitize, validate, pre-check
// code uniqueness, insert, then return the canonical row. The unique
// index backstops the pre-check: a racing insert loses with a duplicate
// error that also maps to 409.
func (h *ClientHandler) Create(c *gin.Context) {
	var req client.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	in := client.SanitizeAndNormalize(req)
	if errs := client.Validate(in); errs != nil {
		httperr.Validation(c, errs)
		return
	}

	existing, err := h.repo.GetByCode(c.Request.Context(), *in.ClientCode)
	if err != nil {
		httperr.Internal(c, "Failed to check client code", err)
		return
	}
	if existing != nil {
		httperr.Conflict(c, "client_code already exists")
		return
	}

	record := client.Materialize(in)
	if err := h.repo.Create(c.Request.Context(), &record); err != nil {
		if dbErr := db.Classify(err); dbErr.Duplicate {
			httperr.Conflict(c, "client_code already exists")
			return
		}
		httperr.Internal(c, "Failed to create client", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:    "client.create",
		Entity:    "client",
		EntityID:  record.ClientID,
		RequestID: c.GetString(middleware.ContextRequestID),
		Metadata:  gin.H{"client_code": record.ClientCode},
	})

	created, err := h.repo.GetByID(c.Request.Context(), record.ClientID)
	if err != nil || created == nil {
		httperr.Internal(c, "Failed to load created client", err)
		return
	}

	location := fmt.Sprintf("/api/clients/%d", record.ClientID)
	httpresp.Created(c, location, "Client created", created)
}

// PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseClientID(c)
	if !ok {
		return
	}

	var req client.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	in := client.SanitizeAndNormalize(req)
	if errs := client.Validate(in); errs != nil {
		httperr.Validation(c, errs)
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Failed to get client", err)
		return
	}
	if existing == nil {
		httperr.NotFound(c, "Client not found")
		return
	}

	// Code may collide only with the row being updated itself.
	byCode, err := h.repo.GetByCode(c.Request.Context(), *in.ClientCode)
	if err != nil {
		httperr.Internal(c, "Failed to check client code", err)
		return
	}
	if byCode != nil && byCode.ClientID != id {
		httperr.Conflict(c, "client_code already exists")
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), id, client.Materialize(in))
	if err != nil {
		if dbErr := db.Classify(err); dbErr.Duplicate {
			httperr.Conflict(c, "client_code already exists")
			return
		}
		httperr.Internal(c, "Failed to update client", err)
		return
	}
	if !updated {
		httperr.NotFound(c, "Client not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:    "client.update",
		Entity:    "client",
		EntityID:  id,
		RequestID: c.GetString(middleware.ContextRequestID),
		Metadata:  gin.H{"client_code": *in.ClientCode},
	})

	row, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil || row == nil {
		httperr.Internal(c, "Failed to load updated client", err)
		return
	}

	httpresp.OKWithMessage(c, "Client updated", row)
}

// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseClientID(c)
	if !ok {
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Failed to get client", err)
		return
	}
	if existing == nil {
		httperr.NotFound(c, "Client not found")
		return
	}

	deleted, err := h.repo.SoftDelete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Failed to delete client", err)
		return
	}
	if !deleted {
		httperr.NotFound(c, "Client not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:    "client.delete",
		Entity:    "client",
		EntityID:  id,
		RequestID: c.GetString(middleware.ContextRequestID),
	})

	httpresp.OKMessage(c, "Client deleted (soft delete)")
}

func parseClientID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "Invalid client id")
		return 0, false
	}
	return uint(id), true
}
