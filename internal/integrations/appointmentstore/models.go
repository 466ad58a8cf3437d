package appointmentstore

// Appointment запись клиента из API магазина записей.
// Имена JSON-полей испанские, как в исходном API.
type Appointment struct {
	ID         string `json:"id"`
	Date       string `json:"fecha"` // "2025-10-15"
	StartTime  string `json:"hora"`  // "10:20"
	ClientName string `json:"nombre"`
	Phone      string `json:"telefono"`
	Stylist    string `json:"peluquero"`
	Status     string `json:"estado"`
}

// AppointmentList список записей
type AppointmentList struct {
	Appointments []*Appointment `json:"appointments"`
	Total        int            `json:"total"`
}

// CreateAppointmentRequest черновик новой записи
type CreateAppointmentRequest struct {
	Date       string  `json:"fecha"`
	StartTime  string  `json:"hora"`
	ClientName string  `json:"nombre"`
	Phone      string  `json:"telefono"`
	Stylist    *string `json:"peluquero,omitempty"`
}

// UpdateAppointmentRequest частичная правка записи
type UpdateAppointmentRequest struct {
	ClientName *string `json:"nombre,omitempty"`
	Phone      *string `json:"telefono,omitempty"`
	Status     *string `json:"estado,omitempty"`
}

// Stylist мастер с акронимом для бейджей
type Stylist struct {
	Name    string `json:"nombre"`
	Acronym string `json:"siglas"`
}

// StylistList состав мастеров
type StylistList struct {
	Stylists []Stylist `json:"peluqueros"`
}

// SalonConfig конфигурация салона: состав и сетка слотов
type SalonConfig struct {
	Stylists        []string `json:"peluqueros"`
	OpenTime        string   `json:"apertura"`
	CloseTime       string   `json:"cierre"`
	IntervalMinutes int      `json:"intervaloMinutos"`
}

// DaySchedule сетка одного дня слот за слотом
type DaySchedule struct {
	Date       string  `json:"fecha"`
	Stylist    *string `json:"peluquero,omitempty"`
	WorkingDay bool    `json:"diaLaborable"`
	Slots      []Slot  `json:"huecos"`
	Occupied   int     `json:"ocupados"`
	Free       int     `json:"libres"`
}

// Slot один слот дня
type Slot struct {
	Time        string       `json:"hora"`
	Free        bool         `json:"libre"`
	Appointment *Appointment `json:"cita,omitempty"`
}

// CalendarSummary сводка занятости по дням диапазона
type CalendarSummary struct {
	From string       `json:"desde"`
	To   string       `json:"hasta"`
	Days []DaySummary `json:"dias"`
}

// DaySummary сводка одного дня для раскраски ячейки
type DaySummary struct {
	Date        string         `json:"fecha"`
	Weekend     bool           `json:"finDeSemana"`
	TotalSlots  int            `json:"totalHuecos"`
	FullyBooked bool           `json:"completo"`
	PerStylist  []StylistCount `json:"porPeluquero"`
	Badge       string         `json:"etiqueta"`
}

// StylistCount занятость одного мастера за день
type StylistCount struct {
	Stylist  string `json:"peluquero"`
	Acronym  string `json:"siglas"`
	Occupied int    `json:"ocupados"`
	Free     int    `json:"libres"`
}

// ErrorResponse тело ошибки API
type ErrorResponse struct {
	Message string `json:"message"`
}
