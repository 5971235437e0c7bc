package service

import (
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"
)

// DisplaySettingService resolves which product card fields the
// storefront shows, combining global flags with per-product overrides.
type DisplaySettingService struct {
	repo repository.DisplaySettingRepository
}

// NewDisplaySettingService creates a display setting service.
func NewDisplaySettingService(repo repository.DisplaySettingRepository) *DisplaySettingService {
	return &DisplaySettingService{repo: repo}
}

// DisplaySettingUpdate is one key/value pair of a global update.
type DisplaySettingUpdate struct {
	Key   string `json:"setting_key"`
	Value bool   `json:"setting_value"`
}

// GlobalMap returns the global flags as a flat key→bool map.
func (s *DisplaySettingService) GlobalMap() (map[string]bool, error) {
	settings, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	result := make(map[string]bool, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}

// ListGrouped returns the full setting rows plus the keys grouped for
// the back-office form.
func (s *DisplaySettingService) ListGrouped() ([]models.DisplaySetting, map[string][]string, error) {
	settings, err := s.repo.List()
	if err != nil {
		return nil, nil, err
	}
	groups := map[string][]string{}
	for _, setting := range settings {
		groups[setting.Group] = append(groups[setting.Group], setting.Key)
	}
	return settings, groups, nil
}

// UpdateGlobal applies a per-key replace over the given pairs. Keys
// that do not exist are ignored rather than created.
func (s *DisplaySettingService) UpdateGlobal(updates []DisplaySettingUpdate) error {
	for _, update := range updates {
		setting, err := s.repo.GetByKey(update.Key)
		if err != nil {
			return err
		}
		if setting == nil {
			continue
		}
		if err := s.repo.UpdateValue(update.Key, update.Value); err != nil {
			return err
		}
	}
	return nil
}

// ResolveEffective computes the flags a product is rendered with:
// each key takes the override when the product carries one, the
// global value otherwise. A nil override map means the product fully
// follows the global settings.
func ResolveEffective(global map[string]bool, overrides models.BoolMap) map[string]bool {
	effective := make(map[string]bool, len(global))
	for key, value := range global {
		if overrides != nil {
			if override, ok := overrides[key]; ok {
				effective[key] = override
				continue
			}
		}
		effective[key] = value
	}
	return effective
}

// EffectiveFor resolves a product's effective flags against the
// current global settings.
func (s *DisplaySettingService) EffectiveFor(product *models.Product) (map[string]bool, error) {
	global, err := s.GlobalMap()
	if err != nil {
		return nil, err
	}
	return ResolveEffective(global, product.DisplayOverrides), nil
}
