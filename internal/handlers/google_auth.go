package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"STYLEMATE_BACK-END/internal/config"
	"STYLEMATE_BACK-END/internal/dto"
	"STYLEMATE_BACK-END/internal/middleware"
	"STYLEMATE_BACK-END/internal/store"
	"STYLEMATE_BACK-END/internal/utils"
)

// GoogleAuthHandler handles Google OAuth authentication. Google accounts
// map onto regular users keyed by email-as-username; the issued session
// is identical to a password login.
type GoogleAuthHandler struct {
	store        store.UserStore
	oauth2Config *oauth2.Config
	cfg          *config.Config
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(userStore store.UserStore, cfg *config.Config) *GoogleAuthHandler {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &GoogleAuthHandler{
		store:        userStore,
		oauth2Config: oauth2Config,
		cfg:          cfg,
	}
}

// GoogleLogin initiates Google OAuth login
// @Summary Google OAuth login
// @Description Initiate Google OAuth login flow
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse "Google OAuth URL"
// @Failure 503 {object} dto.ErrorResponse "Google OAuth not configured"
// @Router /api/auth/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !h.cfg.IsGoogleOAuthConfigured() {
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Google login unavailable", "Google OAuth is not configured.")
		return
	}

	// Generate state parameter for CSRF protection
	state := uuid.New().String()

	authURL := h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	utils.WriteJSONResponse(w, http.StatusOK, dto.GoogleLoginResponse{
		AuthURL: authURL,
		State:   state,
	})
}

// GoogleCallback handles Google OAuth callback
// @Summary Google OAuth callback
// @Description Handle Google OAuth callback with authorization code
// @Tags authentication
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Param state query string false "State parameter for CSRF protection"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing authorization code", "Authorization code is required")
		return
	}

	// Exchange authorization code for token
	token, err := h.oauth2Config.Exchange(r.Context(), code)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization code", "Please restart the login flow.")
		return
	}

	userInfo, err := h.getGoogleUserInfo(r.Context(), token)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get user info", "Please try again later.")
		return
	}

	if userInfo.Email == "" {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid Google account", "Google did not return an email address.")
		return
	}

	userID, err := h.store.FindOrCreateExternal(r.Context(), userInfo.Email)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user", "Please try again later.")
		return
	}

	jwtToken, err := middleware.GenerateToken(userID, userInfo.Email, &h.cfg.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", "Please try again later.")
		return
	}

	middleware.SetSessionCookie(w, jwtToken, &h.cfg.JWT)

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		User: dto.UserResponse{
			ID:       userID,
			Username: userInfo.Email,
		},
		Token: jwtToken,
	})
}

// getGoogleUserInfo fetches the user's Google profile with the
// exchanged token.
func (h *GoogleAuthHandler) getGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*dto.GoogleUserInfo, error) {
	svc, err := googleOAuth2.NewService(ctx,
		option.WithTokenSource(h.oauth2Config.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	verified := info.VerifiedEmail != nil && *info.VerifiedEmail

	return &dto.GoogleUserInfo{
		ID:       info.Id,
		Email:    info.Email,
		Name:     info.Name,
		Verified: verified,
	}, nil
}
