package dto

type BusinessRulesDTO struct {
	MinMonthlyBuy                  int     `json:"minMonthlyBuy"`
	ReferralCommissionPercentage   float64 `json:"referralCommissionPercentage"`
	DirectSaleCommissionPercentage float64 `json:"directSaleCommissionPercentage"`
	ShippingCost                   float64 `json:"shippingCost"`
	MaxReferralsDefault            int     `json:"maxReferralsDefault"`
}

type UpdateRulesRequestDTO map[string]interface{}

type UpdateRulesResponseDTO struct {
	UpdatedRules []string `json:"updatedRules"`
}

type RuleDescriptorDTO struct {
	Key          string      `json:"key"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Type         string      `json:"type"`
	DefaultValue interface{} `json:"defaultValue"`
}
