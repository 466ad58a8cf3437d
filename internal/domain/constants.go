package domain

// Default schedule values (зеркалируют config.json исходного приложения)
const (
	DefaultOpenTime            = "10:00"
	DefaultCloseTime           = "21:00"
	DefaultSlotIntervalMinutes = 20
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 240
	MaxClientNameLength    = 200
	MinPhoneDigits         = 3
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CountryPhonePrefix телефонный код страны, добавляется при нормализации
// номеров без кода (салон работает с испанскими номерами)
const CountryPhonePrefix = "34"
