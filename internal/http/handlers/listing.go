package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"careerhub/internal/app"
	"careerhub/internal/common"
	"careerhub/internal/domain/listing"
	"careerhub/internal/http/middleware"
	"careerhub/internal/http/response"
)

type ListingHandler struct {
	listings *app.ListingService
	limiter  middleware.Limiter
}

func NewListingHandler(listings *app.ListingService, limiter middleware.Limiter) *ListingHandler {
	return &ListingHandler{listings: listings, limiter: limiter}
}

type listingRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Prerequisites    []string `json:"prerequisites"`
	Skills           []string `json:"skills"`
	Responsibilities []string `json:"responsibilities"`
	ContactEmail     string   `json:"contact_email"`
	Status           string   `json:"status"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	kind, err := kindFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req listingRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.listings.Create(r.Context(), actor, listing.Listing{
		Kind:             kind,
		Title:            req.Title,
		Description:      req.Description,
		Prerequisites:    req.Prerequisites,
		Skills:           req.Skills,
		Responsibilities: req.Responsibilities,
		ContactEmail:     req.ContactEmail,
		Status:           listing.Status(req.Status),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req listingRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.listings.Update(r.Context(), actor, listing.Listing{
		ID:               id,
		Title:            req.Title,
		Description:      req.Description,
		Prerequisites:    req.Prerequisites,
		Skills:           req.Skills,
		Responsibilities: req.Responsibilities,
		ContactEmail:     req.ContactEmail,
		Status:           listing.Status(req.Status),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ListingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		response.Error(w, common.NewError(common.CodeValidation, "status is required", nil))
		return
	}
	updated, err := h.listings.UpdateStatus(r.Context(), actor, id, listing.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil && !h.limiter.Allow("delete:"+actor.Email, 10, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "delete rate limit exceeded", nil))
		return
	}
	var req reasonRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.listings.DeleteWithReason(r.Context(), actor, id, req.Reason); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, err := kindFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	query := r.URL.Query()
	filter := listing.Filter{
		Kind:     kind,
		PostedBy: strings.TrimSpace(query.Get("postedBy")),
		Status:   listing.Status(strings.TrimSpace(query.Get("status"))),
		Limit:    intQuery(query.Get("limit"), 0),
		Offset:   intQuery(query.Get("offset"), 0),
	}
	items, err := h.listings.List(r.Context(), filter, query.Get("q"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.listings.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *ListingHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	email := pathSegment(r, 4)
	if err := h.listings.AddParticipant(r.Context(), actor, id, email); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "added"})
}

func (h *ListingHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	email := pathSegment(r, 4)
	if err := h.listings.RemoveParticipant(r.Context(), actor, id, email); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *ListingHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.listings.ListParticipants(r.Context(), actor, id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func intQuery(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
