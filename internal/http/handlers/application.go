package handlers

import (
	"net/http"
	"strings"
	"time"

	"careerhub/internal/app"
	"careerhub/internal/common"
	"careerhub/internal/domain/application"
	"careerhub/internal/http/middleware"
	"careerhub/internal/http/response"
)

type ApplicationHandler struct {
	moderation *app.ModerationService
	limiter    middleware.Limiter
	pageSize   int
}

func NewApplicationHandler(moderation *app.ModerationService, limiter middleware.Limiter, pageSize int) *ApplicationHandler {
	if pageSize < 1 {
		pageSize = 10
	}
	return &ApplicationHandler{moderation: moderation, limiter: limiter, pageSize: pageSize}
}

type applyRequest struct {
	ApplicantName string `json:"applicant_name"`
	ImageURL      string `json:"image_url"`
	Description   string `json:"description"`
	ResumeLink    string `json:"resume_link"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	listingID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := "apply:" + listingID.String() + ":" + actor.Email
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.moderation.Apply(r.Context(), actor, listingID, application.Application{
		ApplicantName: req.ApplicantName,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
		ResumeLink:    req.ResumeLink,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) ListByListing(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	listingID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	query := r.URL.Query()
	statuses := []application.Status{}
	for _, value := range query["status"] {
		if strings.TrimSpace(value) != "" {
			statuses = append(statuses, application.Status(value))
		}
	}
	page := intQuery(query.Get("page"), 1)
	pageSize := intQuery(query.Get("pageSize"), h.pageSize)
	result, err := h.moderation.ListPage(r.Context(), actor, listingID, statuses, page, pageSize)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.moderation.ListByApplicant(r.Context(), actor)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.Status == "" {
		response.Error(w, common.NewError(common.CodeValidation, "status is required", nil))
		return
	}
	updated, err := h.moderation.UpdateStatus(r.Context(), actor, id, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 1)
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
	if err := h.moderation.DeleteWithReason(r.Context(), actor, id, req.Reason); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
