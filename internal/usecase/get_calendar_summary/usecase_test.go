package get_calendar_summary

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
	testMonday    = time.Date(2025, 10, 13, 0, 0, 0, 0, time.Local)
	testWednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local)
	testSaturday  = time.Date(2025, 10, 18, 0, 0, 0, 0, time.Local)
)

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
		if filter.DateFrom != nil && a.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && !a.Date.Before(*filter.DateTo) {
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
func (f *fakeSalon) Stylists() []string            { return f.stylists }
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

func apptAt(date time.Time, slot types.TimeString, stylist string) *domain.Appointment {
	return &domain.Appointment{
		ID:        uuid.New(),
		Date:      date,
		StartTime: slot,
		Stylist:   stylist,
		Status:    domain.StatusPending,
	}
}

// fullDay все слоты даты заняты указанным мастером
func fullDay(policy domain.SchedulePolicy, date time.Time, stylist string) []*domain.Appointment {
	out := make([]*domain.Appointment, 0)
	for _, slot := range policy.GenerateSlots(date) {
		out = append(out, apptAt(date, slot, stylist))
	}
	return out
}

func newTestUseCase(repo *fakeRepo) *UseCase {
	salon := &fakeSalon{
		stylists: []string{"Diego", "Jose Luis"},
		policy:   domain.DefaultSchedulePolicy(),
	}
	return NewUseCase(repo, salon, nopLogger{})
}

func summaryFor(t *testing.T, resp *Response, date time.Time) DaySummary {
	t.Helper()
	for _, d := range resp.Days {
		if d.Date.Equal(date) {
			return d
		}
	}
	t.Fatalf("no summary for date %s", date.Format(domain.DateFormat))
	return DaySummary{}
}

func TestExecute_HalfOpenRange(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		From: testMonday,
		To:   testMonday.AddDate(0, 0, 7),
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 7, "half-open range: To is excluded")
	assert.Equal(t, testMonday, resp.Days[0].Date)
	assert.Equal(t, testMonday.AddDate(0, 0, 6), resp.Days[len(resp.Days)-1].Date)
	assert.Equal(t, 1, repo.calls, "one fetch per visible range, not per cell")
}

func TestExecute_CountsAndBadge(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		apptAt(testWednesday, "10:00", "Diego"),
		apptAt(testWednesday, "10:20", "Diego"),
		apptAt(testWednesday, "10:00", "Jose Luis"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		From: testWednesday,
		To:   testWednesday.AddDate(0, 0, 1),
	})

	require.NoError(t, err)
	day := summaryFor(t, resp, testWednesday)

	assert.Equal(t, 34, day.TotalSlots)
	assert.False(t, day.Weekend)
	assert.False(t, day.FullyBooked)

	require.Len(t, day.PerStylist, 2)
	diego, jose := day.PerStylist[0], day.PerStylist[1]

	assert.Equal(t, "Diego", diego.Stylist)
	assert.Equal(t, "D", diego.Acronym)
	assert.Equal(t, 2, diego.Occupied)
	assert.Equal(t, 32, diego.Free)

	assert.Equal(t, "Jose Luis", jose.Stylist)
	assert.Equal(t, "JL", jose.Acronym)
	assert.Equal(t, 1, jose.Occupied)
	assert.Equal(t, 33, jose.Free)

	assert.Equal(t, "D:32 / JL:33", day.Badge)
}

func TestExecute_FreeCountClampedAtZero(t *testing.T) {
	// Занятых больше, чем слотов (дубли или записи вне сетки):
	// свободные не уходят в минус
	appts := fullDay(domain.DefaultSchedulePolicy(), testWednesday, "Diego")
	appts = append(appts, apptAt(testWednesday, "09:00", "Diego")) // вне сетки
	repo := &fakeRepo{appointments: appts}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		From: testWednesday,
		To:   testWednesday.AddDate(0, 0, 1),
	})

	require.NoError(t, err)
	day := summaryFor(t, resp, testWednesday)
	assert.Equal(t, 35, day.PerStylist[0].Occupied)
	assert.Equal(t, 0, day.PerStylist[0].Free)
}

func TestExecute_FullyBookedRequiresEveryStylist(t *testing.T) {
	policy := domain.DefaultSchedulePolicy()

	t.Run("both stylists full", func(t *testing.T) {
		appts := append(
			fullDay(policy, testWednesday, "Diego"),
			fullDay(policy, testWednesday, "Jose Luis")...,
		)
		uc := newTestUseCase(&fakeRepo{appointments: appts})

		resp, err := uc.Execute(context.Background(), &Request{
			From: testWednesday,
			To:   testWednesday.AddDate(0, 0, 1),
		})

		require.NoError(t, err)
		assert.True(t, summaryFor(t, resp, testWednesday).FullyBooked)
	})

	t.Run("only one stylist full", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{appointments: fullDay(policy, testWednesday, "Diego")})

		resp, err := uc.Execute(context.Background(), &Request{
			From: testWednesday,
			To:   testWednesday.AddDate(0, 0, 1),
		})

		require.NoError(t, err)
		assert.False(t, summaryFor(t, resp, testWednesday).FullyBooked,
			"conjunction across stylists, not an aggregate sum")
	})
}

func TestExecute_FullyBookedWithActiveFilter(t *testing.T) {
	policy := domain.DefaultSchedulePolicy()
	uc := newTestUseCase(&fakeRepo{appointments: fullDay(policy, testWednesday, "Diego")})

	resp, err := uc.Execute(context.Background(), &Request{
		From:    testWednesday,
		To:      testWednesday.AddDate(0, 0, 1),
		Stylist: ptr.Ptr("Diego"),
	})

	require.NoError(t, err)
	assert.True(t, summaryFor(t, resp, testWednesday).FullyBooked,
		"with an active filter only that stylist counts")

	resp, err = uc.Execute(context.Background(), &Request{
		From:    testWednesday,
		To:      testWednesday.AddDate(0, 0, 1),
		Stylist: ptr.Ptr("Jose Luis"),
	})

	require.NoError(t, err)
	assert.False(t, summaryFor(t, resp, testWednesday).FullyBooked)
}

func TestExecute_WeekendIsNeverBookable(t *testing.T) {
	// Выходной остается выходным независимо от записей в данных
	repo := &fakeRepo{appointments: []*domain.Appointment{
		apptAt(testSaturday, "10:00", "Diego"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		From: testSaturday,
		To:   testSaturday.AddDate(0, 0, 1),
	})

	require.NoError(t, err)
	day := summaryFor(t, resp, testSaturday)
	assert.True(t, day.Weekend)
	assert.False(t, day.FullyBooked)
	assert.Equal(t, 0, day.TotalSlots)
	assert.Empty(t, day.PerStylist)
	assert.Empty(t, day.Badge)
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		apptAt(testWednesday, "10:00", "Diego"),
	}}
	uc := newTestUseCase(repo)
	req := &Request{From: testMonday, To: testMonday.AddDate(0, 0, 7)}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_RangeValidation(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"zero from", Request{To: testWednesday}, ErrInvalidInput},
		{"from equals to", Request{From: testWednesday, To: testWednesday}, ErrInvalidRange},
		{"from after to", Request{From: testWednesday, To: testMonday}, ErrInvalidRange},
		{"too large", Request{From: testMonday, To: testMonday.AddDate(0, 0, 100)}, ErrRangeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_UnknownStylistFilter(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		From:    testMonday,
		To:      testWednesday,
		Stylist: ptr.Ptr("Carlos"),
	})

	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{listErr: errors.New("connection refused")})

	_, err := uc.Execute(context.Background(), &Request{From: testMonday, To: testWednesday})

	assert.ErrorIs(t, err, ErrInternal)
}
