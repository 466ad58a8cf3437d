package get_day_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var (
	testWednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local)
	testSunday    = time.Date(2025, 10, 19, 0, 0, 0, 0, time.Local)
)

// fakeRepo репозиторий с фиксированным набором записей
type fakeRepo struct {
	appointments []*domain.Appointment
	listErr      error
	calls        int
}

func (f *fakeRepo) GetAllWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if filter.Date != nil && !a.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Stylist != nil && a.Stylist != *filter.Stylist {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeSalon struct {
	stylists []string
	policy   domain.SchedulePolicy
}

func (f *fakeSalon) Policy() domain.SchedulePolicy { return f.policy }
func (f *fakeSalon) HasStylist(name string) bool {
	for _, s := range f.stylists {
		if s == name {
			return true
		}
	}
	return false
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func apptAt(date time.Time, slot types.TimeString, stylist, client string) *domain.Appointment {
	return &domain.Appointment{
		ID:          uuid.New(),
		Date:        date,
		StartTime:   slot,
		ClientName:  client,
		ClientPhone: "34612345678",
		Stylist:     stylist,
		Status:      domain.StatusPending,
	}
}

func newTestUseCase(repo *fakeRepo) *UseCase {
	salon := &fakeSalon{
		stylists: []string{"Ana", "Bruno"},
		policy:   domain.DefaultSchedulePolicy(),
	}
	return NewUseCase(repo, salon, nopLogger{})
}

func TestExecute_MarksOccupiedSlots(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		apptAt(testWednesday, "10:00", "Ana", "María"),
		apptAt(testWednesday, "10:20", "Ana", "Lucía"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    testWednesday,
		Stylist: ptr.Ptr("Ana"),
	})

	require.NoError(t, err)
	assert.True(t, resp.WorkingDay)
	require.Len(t, resp.Entries, 34, "one entry per generated slot")

	// Заняты ровно 10:00 и 10:20, остальные свободны
	for _, e := range resp.Entries {
		switch e.Time {
		case "10:00":
			require.NotNil(t, e.Appointment)
			assert.Equal(t, "María", e.Appointment.ClientName)
		case "10:20":
			require.NotNil(t, e.Appointment)
			assert.Equal(t, "Lucía", e.Appointment.ClientName)
		default:
			assert.Nil(t, e.Appointment, "slot %s must be free", e.Time)
		}
	}

	assert.Equal(t, 2, resp.OccupiedCount())
	assert.Equal(t, 32, resp.FreeCount())
}

func TestExecute_PreservesSlotOrder(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		apptAt(testWednesday, "21:00", "Ana", "Última"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testWednesday})

	require.NoError(t, err)
	for i := 1; i < len(resp.Entries); i++ {
		assert.True(t, resp.Entries[i-1].Time.IsBefore(resp.Entries[i].Time))
	}
	// Включительная граница закрытия присутствует и может быть занята
	last := resp.Entries[len(resp.Entries)-1]
	assert.Equal(t, types.TimeString("21:00"), last.Time)
	require.NotNil(t, last.Appointment)
}

func TestExecute_NonWorkingDayIsExplicitEmptyCase(t *testing.T) {
	// Выходной отличим от "все слоты заняты": WorkingDay=false и ноль слотов
	repo := &fakeRepo{appointments: []*domain.Appointment{
		apptAt(testSunday, "10:00", "Ana", "María"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testSunday})

	require.NoError(t, err)
	assert.False(t, resp.WorkingDay)
	assert.Empty(t, resp.Entries)
	assert.Equal(t, 0, repo.calls, "no fetch for a non-working day")
}

func TestExecute_WithoutFilterFirstMatchWins(t *testing.T) {
	// Без фильтра по мастеру на слот может претендовать несколько записей;
	// побеждает первая в порядке обхода
	first := apptAt(testWednesday, "12:00", "Ana", "María")
	second := apptAt(testWednesday, "12:00", "Bruno", "Lucía")
	repo := &fakeRepo{appointments: []*domain.Appointment{first, second}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testWednesday})

	require.NoError(t, err)
	for _, e := range resp.Entries {
		if e.Time == "12:00" {
			require.NotNil(t, e.Appointment)
			assert.Equal(t, "María", e.Appointment.ClientName)
			assert.Equal(t, "Ana", e.Appointment.Stylist)
		}
	}
}

func TestExecute_UnknownStylist(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:    testWednesday,
		Stylist: ptr.Ptr("Carlos"),
	})

	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		apptAt(testWednesday, "11:00", "Ana", "María"),
	}}
	uc := newTestUseCase(repo)
	req := &Request{Date: testWednesday, Stylist: ptr.Ptr("Ana")}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{Date: testWednesday})

	assert.ErrorIs(t, err, ErrInternal)
}
