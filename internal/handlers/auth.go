package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"STYLEMATE_BACK-END/internal/config"
	"STYLEMATE_BACK-END/internal/dto"
	"STYLEMATE_BACK-END/internal/middleware"
	"STYLEMATE_BACK-END/internal/store"
	"STYLEMATE_BACK-END/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	store store.UserStore
	cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(userStore store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: userStore, cfg: cfg}
}

// Register handles user signup
// @Summary Register a new user
// @Description Create a new user account with username and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	// Validate required fields
	if req.Username == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Username and password required.")
		return
	}

	userID, err := h.store.CreateUser(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Username already taken", "Please choose another username.")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user", "Please try again later.")
		return
	}

	response := dto.AuthResponse{
		User: dto.UserResponse{
			ID:       userID,
			Username: req.Username,
		},
	}

	utils.WriteJSONResponse(w, http.StatusCreated, response)
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with username and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	// Validate required fields
	if req.Username == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Username and password required.")
		return
	}

	userID, err := h.store.VerifyCredentials(r.Context(), req.Username, req.Password)
	if err != nil {
		// Same message for unknown username and wrong password.
		if errors.Is(err, store.ErrInvalidCredentials) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Invalid username or password.")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed", "Please try again later.")
		return
	}

	token, err := middleware.GenerateToken(userID, req.Username, &h.cfg.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", "Please try again later.")
		return
	}

	middleware.SetSessionCookie(w, token, &h.cfg.JWT)

	response := dto.AuthResponse{
		User: dto.UserResponse{
			ID:       userID,
			Username: req.Username,
		},
		Token: token,
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// Logout clears the session unconditionally
// @Summary Logout user
// @Description Clear the session cookie
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.MessageResponse "Logged out"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	middleware.ClearSessionCookie(w)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logged out."})
}

// GetProfile returns the current user's profile
// @Summary Get user profile
// @Description Get the current authenticated user's stored username
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "User profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Get user ID from context (set by AuthMiddleware)
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Please login.")
		return
	}

	username, err := h.store.GetUsername(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "Please login again.")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load profile", "Please try again later.")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UserResponse{
		ID:       userID,
		Username: username,
	})
}
