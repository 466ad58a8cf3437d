package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Тестовые даты
var (
	testWednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local)
	testSaturday  = time.Date(2025, 10, 18, 0, 0, 0, 0, time.Local)
)

// fakeRepo репозиторий в памяти
type fakeRepo struct {
	appointments []*domain.Appointment
	createErr    error
	listErr      error
}

func (f *fakeRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.appointments = append(f.appointments, appt)
	return appt, nil
}

func (f *fakeRepo) GetAllWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if filter.Stylist != nil && a.Stylist != *filter.Stylist {
			continue
		}
		if filter.Date != nil && !a.Date.Equal(*filter.Date) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// fakeSalon конфигурация салона для тестов
type fakeSalon struct {
	stylists []string
	policy   domain.SchedulePolicy
}

func (f *fakeSalon) Policy() domain.SchedulePolicy { return f.policy }
func (f *fakeSalon) DefaultStylist() string        { return f.stylists[0] }
func (f *fakeSalon) HasStylist(name string) bool {
	for _, s := range f.stylists {
		if s == name {
			return true
		}
	}
	return false
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// nopLogger логгер-заглушка
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeRepo) (*UseCase, *fakeTxManager) {
	salon := &fakeSalon{
		stylists: []string{"Diego", "Jose Luís"},
		policy:   domain.DefaultSchedulePolicy(),
	}
	tx := &fakeTxManager{}
	return NewUseCase(repo, salon, tx, nopLogger{}), tx
}

func TestExecute_CreatesAppointment(t *testing.T) {
	repo := &fakeRepo{}
	uc, tx := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testWednesday,
		StartTime:   "10:20",
		ClientName:  "  María García  ",
		ClientPhone: "(612) 345-678",
		Stylist:     ptr.Ptr("Diego"),
	})

	require.NoError(t, err)
	assert.Equal(t, "María García", resp.ClientName, "name must be trimmed")
	assert.Equal(t, "34612345678", resp.ClientPhone, "phone must be normalized")
	assert.Equal(t, "Diego", resp.Stylist)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 1, tx.calls, "creation must run inside a transaction")
	require.Len(t, repo.appointments, 1)
}

func TestExecute_DefaultsStylist(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testWednesday,
		StartTime:   "10:00",
		ClientName:  "Ana",
		ClientPhone: "612345678",
	})

	require.NoError(t, err)
	assert.Equal(t, "Diego", resp.Stylist, "nil stylist falls back to the first of the roster")
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{{
		ID:        uuid.New(),
		Date:      testWednesday,
		StartTime: "10:20",
		Stylist:   "Diego",
	}}}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:        testWednesday,
		StartTime:   "10:20",
		ClientName:  "Ana",
		ClientPhone: "612345678",
		Stylist:     ptr.Ptr("Diego"),
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, repo.appointments, 1, "no new appointment on conflict")
}

func TestExecute_SameSlotDifferentStylistIsNotConflict(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{{
		ID:        uuid.New(),
		Date:      testWednesday,
		StartTime: "10:20",
		Stylist:   "Diego",
	}}}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:        testWednesday,
		StartTime:   "10:20",
		ClientName:  "Ana",
		ClientPhone: "612345678",
		Stylist:     ptr.Ptr("Jose Luís"),
	})

	require.NoError(t, err)
	assert.Len(t, repo.appointments, 2)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	// Конкурирующая бронь проскочила между выборкой и вставкой:
	// ошибка уникального индекса отдается как обычный конфликт слота
	repo := &fakeRepo{createErr: apptRepo.ErrSlotTaken}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:        testWednesday,
		StartTime:   "10:20",
		ClientName:  "Ana",
		ClientPhone: "612345678",
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "empty name",
			req:     Request{Date: testWednesday, StartTime: "10:00", ClientName: "   ", ClientPhone: "612345678"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty phone",
			req:     Request{Date: testWednesday, StartTime: "10:00", ClientName: "Ana", ClientPhone: "  "},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			req:     Request{StartTime: "10:00", ClientName: "Ana", ClientPhone: "612345678"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing time",
			req:     Request{Date: testWednesday, ClientName: "Ana", ClientPhone: "612345678"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "weekend",
			req:     Request{Date: testSaturday, StartTime: "10:00", ClientName: "Ana", ClientPhone: "612345678"},
			wantErr: ErrNonWorkingDay,
		},
		{
			name:    "off-grid time",
			req:     Request{Date: testWednesday, StartTime: "10:30", ClientName: "Ana", ClientPhone: "612345678"},
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "past closing time",
			req:     Request{Date: testWednesday, StartTime: "21:20", ClientName: "Ana", ClientPhone: "612345678"},
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "unknown stylist",
			req:     Request{Date: testWednesday, StartTime: "10:00", ClientName: "Ana", ClientPhone: "612345678", Stylist: ptr.Ptr("Carlos")},
			wantErr: ErrStylistNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc, _ := newTestUseCase(repo)

			_, err := uc.Execute(context.Background(), &tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.appointments)
		})
	}
}

func TestExecute_ClosingBoundarySlotIsBookable(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo)

	// Слот ровно на времени закрытия входит в сетку
	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testWednesday,
		StartTime:   "21:00",
		ClientName:  "Ana",
		ClientPhone: "612345678",
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("21:00"), resp.StartTime)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:        testWednesday,
		StartTime:   "10:00",
		ClientName:  "Ana",
		ClientPhone: "612345678",
	})

	assert.ErrorIs(t, err, ErrInternal)
}
