package rules

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/rulesservice"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	GetRules(ctx context.Context) (*dto.BusinessRulesDTO, error)
	UpdateRules(ctx context.Context, updates dto.UpdateRulesRequestDTO) ([]string, error)
	AvailableRules() []dto.RuleDescriptorDTO
}

type RulesHandler struct {
	rulesService Service
}

func New(rulesService Service) *RulesHandler {
	return &RulesHandler{rulesService: rulesService}
}

// Get godoc
//
//	@Summary	Current business rule values
//	@Tags		Business rules
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.BusinessRulesDTO	"Rules with defaults applied"
//	@Router		/api/config/business-rules [get]
func (h *RulesHandler) Get(w http.ResponseWriter, r *http.Request) {
	rules, err := h.rulesService.GetRules(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rules)
}

// Update godoc
//
//	@Summary		Update business rules
//	@Description	Upserts each submitted key. Unknown keys reject the whole request.
//	@Tags			Business rules
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateRulesRequestDTO	true	"Key/value updates"
//	@Success		200		{object}	dto.UpdateRulesResponseDTO	"Updated keys"
//	@Failure		400		{object}	utils.Response				"Unknown rule key"
//	@Router			/api/config/business-rules [put]
func (h *RulesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRulesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.rulesService.UpdateRules(r.Context(), req)
	if err != nil {
		if errors.Is(err, rulesservice.ErrUnknownRule) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateRulesResponseDTO{UpdatedRules: updated})
}

// Available godoc
//
//	@Summary	Catalog of configurable rules
//	@Tags		Business rules
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.RuleDescriptorDTO	"Rule descriptors"
//	@Router		/api/config/business-rules/available [get]
func (h *RulesHandler) Available(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.rulesService.AvailableRules())
}
