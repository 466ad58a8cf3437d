package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL "duplicate key value violates unique constraint"
const pgUniqueViolation = "23505"

// appointmentColumns полный список колонок таблицы appointments
var appointmentColumns = []string{
	"id",
	"appointment_date",
	"start_time",
	"client_name",
	"client_phone",
	"stylist",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Уникальность слота (appointment_date, start_time, stylist) обеспечивает
// уникальный индекс; его нарушение маппится в ErrSlotTaken. Проверка занятости
// в usecase выполняется в сериализуемой транзакции, индекс - последний рубеж.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"appointment_date",
			"start_time",
			"client_name",
			"client_phone",
			"stylist",
			"status",
		).
		Values(
			appt.ID,
			appt.Date,
			appt.StartTime,
			appt.ClientName,
			appt.ClientPhone,
			appt.Stylist,
			appt.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetAllWithFilter получает записи с фильтрацией по дате, периоду и мастеру.
//
// Примеры использования:
//
//  1. Все записи: filter := domain.AppointmentsFilter{}
//  2. Записи на дату: filter := domain.AppointmentsFilter{Date: &date}
//  3. Записи мастера: filter := domain.AppointmentsFilter{Stylist: &name}
//  4. Записи за период [from, to): filter := domain.AppointmentsFilter{DateFrom: &from, DateTo: &to}
//     (период полуоткрытый - так агрегатор календаря запрашивает видимый диапазон)
func (r *Repository) GetAllWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	// Фильтрация по конкретной дате
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}

	// Фильтрация по полуоткрытому периоду [from, to)
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"appointment_date": *filter.DateTo})
	}

	// Фильтрация по мастеру
	if filter.Stylist != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"stylist": *filter.Stylist})
	}

	// Исходный бэкенд сортировал выдачу по времени; для периодов
	// дополнительно упорядочиваем по дате
	selectBuilder = selectBuilder.OrderBy("appointment_date ASC", "start_time ASC")

	// Внутри транзакции создания записи блокируем строки конкретной даты,
	// чтобы конкурирующая бронь того же слота дождалась исхода
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Update частично обновляет запись: имя, телефон, статус.
// Дата, время и мастер неизменяемы, перепроверка доступности слота не нужна.
func (r *Repository) Update(ctx context.Context, id string, update domain.AppointmentUpdate) (*domain.Appointment, error) {
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("appointments").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(appointmentColumns))

	if update.ClientName != nil {
		updateBuilder = updateBuilder.Set("client_name", *update.ClientName)
	}
	if update.ClientPhone != nil {
		updateBuilder = updateBuilder.Set("client_phone", *update.ClientPhone)
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// Delete удаляет запись (физическое удаление, как в исходном API)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну запись
func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Date,
		&appt.StartTime,
		&appt.ClientName,
		&appt.ClientPhone,
		&appt.Stylist,
		&appt.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
