package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeFormat формат времени HH:MM (24 часа)
const timeFormat = "15:04"

// TimeString время в формате "HH:MM" без даты и часового пояса.
// Используется для времени начала слотов и записей.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return NewTimeString(t), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(ts)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// minutes возвращает количество минут с начала суток
func (ts TimeString) minutes() (int, error) {
	t, err := time.Parse(timeFormat, string(ts))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперёд.
// Переход через полночь считается ошибкой: слоты не пересекают границу суток.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := ts.minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s%+d minutes is out of day range", ts, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если ts строго раньше other.
// Некорректные значения считаются не-раньше (сравнение лексикографическое
// корректно для валидного формата "HH:MM").
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Postgres может вернуть time-колонку как время, строку или байты.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case string:
		parsed, err := parseDBTime(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		parsed, err := parseDBTime(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

// parseDBTime парсит время из БД: "HH:MM" или "HH:MM:SS"
func parseDBTime(s string) (TimeString, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return NewTimeString(t), nil
	}
	return NewTimeStringFromString(s)
}
