// Package salon сервис конфигурации салона: состав мастеров и сетка слотов.
// Данные статичны на время жизни процесса и приходят из config.toml
// (аналог config.json исходного приложения, отдаваемого через /api/config).
package salon

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Service отдает конфигурацию салона остальным слоям
type Service struct {
	stylists []string
	policy   domain.SchedulePolicy
}

// NewService создает сервис из секции [salon] конфига с валидацией сетки
func NewService(cfg config.SalonConfig) (*Service, error) {
	policy, err := domain.NewSchedulePolicy(cfg.OpenTime, cfg.CloseTime, cfg.SlotIntervalMinutes)
	if err != nil {
		return nil, fmt.Errorf("salon config: %w", err)
	}

	if len(cfg.Stylists) == 0 {
		return nil, fmt.Errorf("salon config: stylists roster is empty")
	}

	stylists := make([]string, len(cfg.Stylists))
	copy(stylists, cfg.Stylists)

	return &Service{
		stylists: stylists,
		policy:   policy,
	}, nil
}

// Stylists возвращает состав мастеров в порядке конфигурации
func (s *Service) Stylists() []string {
	out := make([]string, len(s.stylists))
	copy(out, s.stylists)
	return out
}

// HasStylist проверяет, что мастер есть в составе
func (s *Service) HasStylist(name string) bool {
	for _, st := range s.stylists {
		if st == name {
			return true
		}
	}
	return false
}

// DefaultStylist возвращает первого мастера состава.
// Исходный бэкенд подставлял его в записи без указанного мастера.
func (s *Service) DefaultStylist() string {
	return s.stylists[0]
}

// Policy возвращает сетку слотов
func (s *Service) Policy() domain.SchedulePolicy {
	return s.policy
}
