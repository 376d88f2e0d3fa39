package handlers

import (
	"net/http"

	"careerhub/internal/app"
	"careerhub/internal/domain/review"
	"careerhub/internal/http/middleware"
	"careerhub/internal/http/response"
)

type ReviewHandler struct {
	reviews *app.ReviewService
}

func NewReviewHandler(reviews *app.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
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
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.reviews.Create(r.Context(), actor, listingID, review.Review{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ReviewHandler) ListByListing(w http.ResponseWriter, r *http.Request) {
	listingID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.reviews.ListByListing(r.Context(), listingID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	var req reasonRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.reviews.DeleteWithReason(r.Context(), actor, id, req.Reason); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
