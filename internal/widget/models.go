package widget

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/integrations/appointmentstore"
)

// BookingDraft черновик брони, собранный из выбранного свободного слота
// и введенных клиентом данных
type BookingDraft struct {
	Date       time.Time
	StartTime  string // "HH:MM"
	ClientName string
	Phone      string
	Stylist    *string // nil - мастер по умолчанию на стороне сервера
}

// BookingPatch правка имени/телефона существующей брони.
// Дата, время и мастер в этой сессии не меняются.
type BookingPatch struct {
	ClientName *string
	Phone      *string
}

// View снимок состояния сессии для перерисовки.
// Список записей заменяется целиком при каждой загрузке,
// рендер никогда не видит частично обновленное состояние.
type View struct {
	SelectedDate    time.Time
	SelectedStylist *string
	Stylists        []string
	Appointments    []*appointmentstore.Appointment
}
