package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Date        time.Time        // дата записи (без времени)
	StartTime   types.TimeString // время слота, например "10:20"
	ClientName  string           // имя клиента (обязательно)
	ClientPhone string           // телефон клиента (обязательно)
	Stylist     *string          // мастер; nil - первый мастер состава
}

// Response модель ответа с созданной записью
type Response struct {
	ID          string           // ID созданной записи
	Date        time.Time        // дата записи
	StartTime   types.TimeString // время слота
	ClientName  string           // имя клиента
	ClientPhone string           // нормализованный телефон
	Stylist     string           // мастер
	Status      string           // статус записи

	CreatedAt time.Time // время создания
	UpdatedAt time.Time // время обновления
}
