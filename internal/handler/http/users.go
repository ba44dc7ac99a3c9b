package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/internal/utils"
	"github.com/ymatsuda/go-api-sample/internal/validators"
	"github.com/ymatsuda/go-api-sample/models"
)

const bearerTokenType = "bearer"

// CreateUser handles POST /api/users/.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in models.UserCreate
	if !h.decodeAndValidate(w, r, &in) {
		return
	}

	created, err := h.services.User.CreateUser(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewUserResponse(created), http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing user response")
	}
}

// GetUser handles GET /api/users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromPath(w, r)
	if !ok {
		return
	}

	user, err := h.services.User.GetUser(r.Context(), userID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing user response")
	}
}

// GetAllUsers handles GET /api/users/.
func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.User.GetAllUsers(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, models.NewUserResponse(user))
	}

	if _, err = utils.WriteJSON(w, responses, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing users response")
	}
}

// UpdateUser handles PUT /api/users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromPath(w, r)
	if !ok {
		return
	}

	var in models.UserUpdate
	if !h.decodeAndValidate(w, r, &in) {
		return
	}

	updated, err := h.services.User.UpdateUser(r.Context(), userID, in)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewUserResponse(updated), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing user response")
	}
}

// DeleteUser handles DELETE /api/users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.User.DeleteUser(r.Context(), userID); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Login handles POST /api/users/login and issues a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginRequest
	if !h.decodeAndValidate(w, r, &in) {
		return
	}

	user, err := h.services.User.Authenticate(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	token, err := h.services.User.CreateToken(r.Context(), user)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	response := models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   bearerTokenType,
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing token response")
	}
}

// decodeAndValidate parses the JSON body into dst and applies its
// `validate` tags. On failure it writes the 422 response and returns false.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeValidationErrors(w, r, []models.FieldError{{
			Type: validators.KindJSONInvalid,
			Loc:  []string{"body"},
			Msg:  "JSON decode error",
		}})
		return false
	}

	if fieldErrors := h.validator.ValidateStruct(dst); len(fieldErrors) > 0 {
		h.writeValidationErrors(w, r, fieldErrors)
		return false
	}

	return true
}

// userIDFromPath parses the {id} path parameter. A non-integer value is a
// validation failure on the path, reported in the same shape as body errors.
func (h *Handler) userIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeValidationErrors(w, r, []models.FieldError{{
			Type: "int_parsing",
			Loc:  []string{"path", "id"},
			Msg:  "Input should be a valid integer, unable to parse string as an integer",
		}})
		return 0, false
	}

	return userID, true
}
