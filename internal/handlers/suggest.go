package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"STYLEMATE_BACK-END/internal/dto"
	"STYLEMATE_BACK-END/internal/suggest"
	"STYLEMATE_BACK-END/internal/utils"
)

// aiUnavailableNotice is shown when AI was requested but the gateway
// could not produce a suggestion. Never an error page.
const aiUnavailableNotice = "AI unavailable — using rule-based suggestions."

// SuggestHandler handles outfit suggestion requests
type SuggestHandler struct {
	gateway suggest.Gateway
}

// NewSuggestHandler creates a new SuggestHandler instance
func NewSuggestHandler(gateway suggest.Gateway) *SuggestHandler {
	return &SuggestHandler{gateway: gateway}
}

// Suggest produces an outfit suggestion for an event
// @Summary Suggest an outfit
// @Description Suggest an outfit for an event from a comma-separated garment list, optionally via AI
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body dto.SuggestRequest true "Event and clothes"
// @Success 200 {object} dto.SuggestResponse "Outfit suggestion"
// @Failure 400 {object} dto.ErrorResponse "Missing event or clothes"
// @Router /api/suggest [post]
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	// Validate required fields
	if req.Event == "" || req.Clothes == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Please enter event and clothes.")
		return
	}

	var response dto.SuggestResponse

	if req.UseAI {
		text, err := h.gateway.Generate(r.Context(), req.Event, req.Clothes)
		if err == nil {
			response = dto.SuggestResponse{
				Text:   text,
				Source: "ai",
			}
			utils.WriteJSONResponse(w, http.StatusOK, response)
			return
		}
		// Swallowed: any gateway failure falls back to the rule engine.
		log.Printf("suggestion gateway error: %v", err)
		response.Notice = aiUnavailableNotice
	}

	s := suggest.RuleBased(req.Event, req.Clothes)
	response.Suggestion = &s
	response.Text = s.Compose()
	response.Source = "rules"

	utils.WriteJSONResponse(w, http.StatusOK, response)
}
