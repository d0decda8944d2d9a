package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fundrik/internal/core/domain"
	"fundrik/internal/core/input"
	"fundrik/internal/core/port"
	"fundrik/internal/core/validation"
)

// campaignResponse is the JSON representation of a campaign.
type campaignResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	IsEnabled    bool   `json:"is_enabled"`
	IsOpen       bool   `json:"is_open"`
	HasTarget    bool   `json:"has_target"`
	TargetAmount int64  `json:"target_amount"`
}

// saveCampaignRequest is the JSON body accepted by the save endpoint.
type saveCampaignRequest struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	IsEnabled    bool   `json:"is_enabled"`
	IsOpen       bool   `json:"is_open"`
	HasTarget    bool   `json:"has_target"`
	TargetAmount int64  `json:"target_amount"`
}

// handleListCampaigns returns every stored campaign as a JSON array.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.GetAllCampaigns(r.Context())
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		resp, err := toResponse(c)
		if err != nil {
			h.logger.Error("campaign has non-integer identity", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out = append(out, resp)
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

// handleGetCampaign returns a single campaign by id. Unknown ids
// produce HTTP 404; a malformed id produces HTTP 400.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	campaign, err := h.svc.GetCampaignByID(r.Context(), id)
	if err != nil {
		h.logger.Error("get campaign error", slog.Int64("id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if campaign == nil {
		http.NotFound(w, r)
		return
	}
	resp, err := toResponse(campaign)
	if err != nil {
		h.logger.Error("campaign has non-integer identity", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// handleSaveCampaign validates and persists a campaign. Validation
// failures produce HTTP 422 with a field→messages map; a slug conflict
// produces HTTP 409.
func (h *Handler) handleSaveCampaign(w http.ResponseWriter, r *http.Request) {
	var req saveCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	in := input.Campaign{
		ID:           req.ID,
		Title:        req.Title,
		Slug:         req.Slug,
		IsEnabled:    req.IsEnabled,
		IsOpen:       req.IsOpen,
		HasTarget:    req.HasTarget,
		TargetAmount: req.TargetAmount,
	}
	err := h.svc.SaveCampaign(r.Context(), in)
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, h.logger, http.StatusUnprocessableEntity, map[string]any{
			"errors": vErr.Violations.ByField(),
		})
	case errors.Is(err, port.ErrSlugTaken):
		writeJSON(w, h.logger, http.StatusConflict, map[string]any{
			"error": err.Error(),
		})
	case err != nil:
		h.logger.Error("save campaign error", slog.Int64("id", req.ID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleDeleteCampaign removes a campaign by id.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteCampaign(r.Context(), id); err != nil {
		h.logger.Error("delete campaign error", slog.Int64("id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toResponse(c *domain.Campaign) (campaignResponse, error) {
	id, err := c.ID()
	if err != nil {
		return campaignResponse{}, err
	}
	return campaignResponse{
		ID:           id,
		Title:        c.Title(),
		Slug:         c.Slug().String(),
		IsEnabled:    c.IsEnabled(),
		IsOpen:       c.IsOpen(),
		HasTarget:    c.HasTarget(),
		TargetAmount: c.TargetAmount(),
	}, nil
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// encoding should rarely fail; log and move on
		logger.Error("encode response error", slog.Any("error", err))
	}
}
