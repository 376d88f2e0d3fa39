package handlers

import (
	"net/http"

	"careerhub/internal/app"
	"careerhub/internal/http/response"
)

type UserHandler struct {
	users *app.UserService
}

func NewUserHandler(users *app.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, err := h.users.GetByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, account)
}

func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.users.RoleByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"role": string(role)})
}
