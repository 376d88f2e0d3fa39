package handlers

import (
	"net/http"

	"careerhub/internal/app"
	"careerhub/internal/domain/audit"
	"careerhub/internal/http/middleware"
	"careerhub/internal/http/response"
)

type AuditHandler struct {
	audits *app.AuditService
}

func NewAuditHandler(audits *app.AuditService) *AuditHandler {
	return &AuditHandler{audits: audits}
}

type auditEntryRequest struct {
	DeletedBy      string `json:"deleted_by"`
	PostedBy       string `json:"posted_by"`
	DeletedDate    string `json:"deleted_date"`
	EntityType     string `json:"entity_type"`
	DeletedContent string `json:"deleted_content"`
	Reason         string `json:"reason"`
}

// RecordBatch accepts the historical array payload shape.
func (h *AuditHandler) RecordBatch(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req []auditEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	entries := make([]audit.Entry, 0, len(req))
	for _, item := range req {
		entries = append(entries, audit.Entry{
			DeletedBy:      item.DeletedBy,
			PostedBy:       item.PostedBy,
			DeletedDate:    item.DeletedDate,
			EntityType:     item.EntityType,
			DeletedContent: item.DeletedContent,
			Reason:         item.Reason,
		})
	}
	if err := h.audits.RecordBatch(r.Context(), actor, entries); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, map[string]int{"recorded": len(entries)})
}

func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	query := r.URL.Query()
	items, err := h.audits.List(r.Context(), actor, query.Get("type"), intQuery(query.Get("limit"), 0), intQuery(query.Get("offset"), 0))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
