package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// SchedulePolicy правила сетки слотов: рабочее окно дня и шаг.
// Чистое значение без состояния; все выборки слотов детерминированы.
type SchedulePolicy struct {
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	IntervalMinutes int
}

// NewSchedulePolicy создает политику с валидацией границ
func NewSchedulePolicy(openTime, closeTime string, intervalMinutes int) (SchedulePolicy, error) {
	open, err := types.NewTimeStringFromString(openTime)
	if err != nil {
		return SchedulePolicy{}, fmt.Errorf("invalid open time: %w", err)
	}

	closing, err := types.NewTimeStringFromString(closeTime)
	if err != nil {
		return SchedulePolicy{}, fmt.Errorf("invalid close time: %w", err)
	}

	if !open.IsBefore(closing) {
		return SchedulePolicy{}, fmt.Errorf("open time %s must be before close time %s", open, closing)
	}

	if intervalMinutes < MinSlotIntervalMinutes || intervalMinutes > MaxSlotIntervalMinutes {
		return SchedulePolicy{}, fmt.Errorf("slot interval must be between %d and %d minutes",
			MinSlotIntervalMinutes, MaxSlotIntervalMinutes)
	}

	return SchedulePolicy{
		OpenTime:        open,
		CloseTime:       closing,
		IntervalMinutes: intervalMinutes,
	}, nil
}

// DefaultSchedulePolicy политика по умолчанию: 10:00-21:00, шаг 20 минут
func DefaultSchedulePolicy() SchedulePolicy {
	policy, err := NewSchedulePolicy(DefaultOpenTime, DefaultCloseTime, DefaultSlotIntervalMinutes)
	if err != nil {
		// Константы по умолчанию валидны, сюда попадать не должны
		panic(err)
	}
	return policy
}

// IsWorkingDay returns true for Monday through Friday.
// Салон не работает по субботам и воскресеньям.
func IsWorkingDay(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// GenerateSlots returns every slot label for the given date in ascending
// order, from open to close stepping IntervalMinutes. For non-working days
// the result is empty.
//
// Граница закрытия ВКЛЮЧИТЕЛЬНАЯ: для сетки 10:00-21:00/20мин последний
// слот - ровно 21:00 (34 слота). Так вело себя исходное приложение,
// поведение сохранено намеренно.
func (p SchedulePolicy) GenerateSlots(date time.Time) []types.TimeString {
	if !IsWorkingDay(date) {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0)
	current := p.OpenTime

	for !current.IsAfter(p.CloseTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(p.IntervalMinutes)
		if err != nil {
			// Следующий шаг пересёк полночь - сетка кончилась
			break
		}
		current = next
	}

	return slots
}

// SlotCount returns the number of slots the policy yields for the date
func (p SchedulePolicy) SlotCount(date time.Time) int {
	return len(p.GenerateSlots(date))
}

// ContainsSlot returns true if the given label is exactly one of the
// generated slots for the date (правильная сетка и рабочий день)
func (p SchedulePolicy) ContainsSlot(date time.Time, slot types.TimeString) bool {
	for _, s := range p.GenerateSlots(date) {
		if s == slot {
			return true
		}
	}
	return false
}
