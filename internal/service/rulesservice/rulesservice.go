package rulesservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
)

// Rule keys stored in business_rules.
const (
	KeyMinMonthlyBuy       = "minMonthlyBuy"
	KeyReferralPercentage  = "referralCommissionPercentage"
	KeyDirectPercentage    = "directSaleCommissionPercentage"
	KeyShippingCost        = "shippingCost"
	KeyMaxReferralsDefault = "maxReferralsDefault"
)

// Defaults used when a key is missing or unparseable.
const (
	DefaultMinMonthlyBuy      = 1
	DefaultReferralPercentage = 10
	DefaultDirectPercentage   = 20
	DefaultShippingCost       = 15
	DefaultMaxReferrals       = 10
)

var ErrUnknownRule = errors.New("unknown business rule")

type Repo interface {
	Get(ctx context.Context, key string) (*domain.BusinessRule, error)
	GetByKeys(ctx context.Context, keys []string) ([]domain.BusinessRule, error)
	List(ctx context.Context) ([]domain.BusinessRule, error)
	Upsert(ctx context.Context, key, value, ruleType string) (*domain.BusinessRule, error)
}

type Service struct {
	rulesRepo Repo
}

func New(repo Repo) *Service {
	return &Service{rulesRepo: repo}
}

// GetRules returns the typed snapshot of the configurable business rules,
// falling back to defaults for missing keys.
func (s *Service) GetRules(ctx context.Context) (*dto.BusinessRulesDTO, error) {
	rules, err := s.rulesRepo.GetByKeys(ctx, []string{
		KeyMinMonthlyBuy, KeyReferralPercentage, KeyDirectPercentage,
		KeyShippingCost, KeyMaxReferralsDefault,
	})
	if err != nil {
		zap.L().Error("can't load business rules", zap.Error(err))
		return nil, err
	}

	snapshot := &dto.BusinessRulesDTO{
		MinMonthlyBuy:                  DefaultMinMonthlyBuy,
		ReferralCommissionPercentage:   DefaultReferralPercentage,
		DirectSaleCommissionPercentage: DefaultDirectPercentage,
		ShippingCost:                   DefaultShippingCost,
		MaxReferralsDefault:            DefaultMaxReferrals,
	}
	for _, rule := range rules {
		n, err := parseNumber(rule)
		if err != nil {
			zap.L().Warn("skip unparseable business rule",
				zap.String("key", rule.Key), zap.Error(err))
			continue
		}
		switch rule.Key {
		case KeyMinMonthlyBuy:
			snapshot.MinMonthlyBuy = int(n)
		case KeyReferralPercentage:
			snapshot.ReferralCommissionPercentage = n
		case KeyDirectPercentage:
			snapshot.DirectSaleCommissionPercentage = n
		case KeyShippingCost:
			snapshot.ShippingCost = n
		case KeyMaxReferralsDefault:
			snapshot.MaxReferralsDefault = int(n)
		}
	}
	return snapshot, nil
}

// Number reads a single numeric rule, returning fallback when the key is
// absent.
func (s *Service) Number(ctx context.Context, key string, fallback float64) (float64, error) {
	rule, err := s.rulesRepo.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if rule == nil {
		return fallback, nil
	}
	n, err := parseNumber(*rule)
	if err != nil {
		zap.L().Warn("business rule is not numeric, using fallback",
			zap.String("key", key), zap.Error(err))
		return fallback, nil
	}
	return n, nil
}

// UpdateRules upserts each submitted key with a type inferred from the value.
// Unknown keys are rejected before anything is written.
func (s *Service) UpdateRules(ctx context.Context, updates dto.UpdateRulesRequestDTO) ([]string, error) {
	known := map[string]bool{
		KeyMinMonthlyBuy: true, KeyReferralPercentage: true, KeyDirectPercentage: true,
		KeyShippingCost: true, KeyMaxReferralsDefault: true,
	}
	for key := range updates {
		if !known[key] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, key)
		}
	}

	var updated []string
	for key, value := range updates {
		stored, ruleType, err := encodeValue(value)
		if err != nil {
			zap.L().Error("can't encode business rule value", zap.String("key", key), zap.Error(err))
			return nil, err
		}
		if _, err := s.rulesRepo.Upsert(ctx, key, stored, ruleType); err != nil {
			return nil, err
		}
		updated = append(updated, key)
	}
	zap.L().Info("business rules updated", zap.Strings("keys", updated))
	return updated, nil
}

// AvailableRules describes the configurable keys for the admin panel.
func (s *Service) AvailableRules() []dto.RuleDescriptorDTO {
	return []dto.RuleDescriptorDTO{
		{Key: KeyMinMonthlyBuy, Name: "Minimum monthly purchase", Type: domain.RuleTypeNumber,
			Description: "Units an affiliate must buy per month to stay active", DefaultValue: DefaultMinMonthlyBuy},
		{Key: KeyReferralPercentage, Name: "Referral commission %", Type: domain.RuleTypeNumber,
			Description: "Percentage paid to the sponsor on a referral's purchases", DefaultValue: DefaultReferralPercentage},
		{Key: KeyDirectPercentage, Name: "Direct sale commission %", Type: domain.RuleTypeNumber,
			Description: "Percentage paid to an affiliate on their own purchases", DefaultValue: DefaultDirectPercentage},
		{Key: KeyShippingCost, Name: "Shipping cost", Type: domain.RuleTypeNumber,
			Description: "Flat shipping cost added at checkout", DefaultValue: DefaultShippingCost},
		{Key: KeyMaxReferralsDefault, Name: "Default referral cap", Type: domain.RuleTypeNumber,
			Description: "Direct referrals a new affiliate may register", DefaultValue: DefaultMaxReferrals},
	}
}

func (s *Service) ListRaw(ctx context.Context) ([]domain.BusinessRule, error) {
	return s.rulesRepo.List(ctx)
}

// parseNumber converts a stored rule back by its declared type.
func parseNumber(rule domain.BusinessRule) (float64, error) {
	switch rule.Type {
	case domain.RuleTypeNumber:
		return strconv.ParseFloat(rule.Value, 64)
	case domain.RuleTypeJSON:
		var n float64
		if err := json.Unmarshal([]byte(rule.Value), &n); err != nil {
			return 0, err
		}
		return n, nil
	default:
		return 0, fmt.Errorf("rule %s has type %s, want number", rule.Key, rule.Type)
	}
}

func encodeValue(value interface{}) (string, string, error) {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), domain.RuleTypeNumber, nil
	case int:
		return strconv.Itoa(v), domain.RuleTypeNumber, nil
	case string:
		return v, domain.RuleTypeString, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", "", err
		}
		return string(raw), domain.RuleTypeJSON, nil
	}
}
