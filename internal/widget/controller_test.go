package widget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/integrations/appointmentstore"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local)

type fakeStore struct {
	config    *appointmentstore.SalonConfig
	configErr error

	appointments []*appointmentstore.Appointment
	listErr      error
	listCalls    int

	createErr  error
	created    []*appointmentstore.CreateAppointmentRequest
	updateErr  error
	updated    map[string]*appointmentstore.UpdateAppointmentRequest
	deleteErr  error
	deletedIDs []string
}

func (f *fakeStore) GetConfigWithGracefulDegradation(context.Context) (*appointmentstore.SalonConfig, error) {
	if f.configErr != nil {
		return nil, f.configErr
	}
	return f.config, nil
}

func (f *fakeStore) ListAppointmentsWithGracefulDegradation(_ context.Context, _ string, _ *string) (*appointmentstore.AppointmentList, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &appointmentstore.AppointmentList{
		Appointments: f.appointments,
		Total:        len(f.appointments),
	}, nil
}

func (f *fakeStore) CreateAppointment(_ context.Context, req *appointmentstore.CreateAppointmentRequest) (*appointmentstore.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &appointmentstore.Appointment{ID: "new", Date: req.Date, StartTime: req.StartTime}, nil
}

func (f *fakeStore) UpdateAppointment(_ context.Context, id string, req *appointmentstore.UpdateAppointmentRequest) (*appointmentstore.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]*appointmentstore.UpdateAppointmentRequest)
	}
	f.updated[id] = req
	return &appointmentstore.Appointment{ID: id}, nil
}

func (f *fakeStore) DeleteAppointment(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(message string) {
	f.messages = append(f.messages, message)
}

// fakeRenderer записывает снимки и число записей магазина на момент
// каждой перерисовки, чтобы проверять порядок reload-then-render
type fakeRenderer struct {
	store             *fakeStore
	views             []View
	listCallsAtRender []int
}

func (f *fakeRenderer) Render(view View) {
	f.views = append(f.views, view)
	f.listCallsAtRender = append(f.listCallsAtRender, f.store.listCalls)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestController(store *fakeStore) (*Controller, *fakeNotifier, *fakeRenderer) {
	notifier := &fakeNotifier{}
	renderer := &fakeRenderer{store: store}
	ctrl := NewController(store, notifier, renderer, nopLogger{}, testDate)
	return ctrl, notifier, renderer
}

func validDraft() BookingDraft {
	return BookingDraft{
		Date:       testDate,
		StartTime:  "10:20",
		ClientName: "Ana García",
		Phone:      "600 111 222",
	}
}

func TestStart_LoadsRosterAndRenders(t *testing.T) {
	store := &fakeStore{
		config: &appointmentstore.SalonConfig{Stylists: []string{"Diego", "Jose Luis"}},
		appointments: []*appointmentstore.Appointment{
			{ID: "a1", Date: "2025-10-15", StartTime: "10:00"},
		},
	}
	ctrl, _, renderer := newTestController(store)

	ctrl.Start(context.Background())

	require.Len(t, renderer.views, 1)
	assert.Equal(t, []string{"Diego", "Jose Luis"}, renderer.views[0].Stylists)
	assert.Len(t, renderer.views[0].Appointments, 1)
	assert.Equal(t, testDate, renderer.views[0].SelectedDate)
}

func TestStart_StoreDownDegradesToEmptySession(t *testing.T) {
	store := &fakeStore{
		configErr: appointmentstore.ErrServiceDegraded,
		listErr:   appointmentstore.ErrServiceDegraded,
	}
	ctrl, notifier, renderer := newTestController(store)

	ctrl.Start(context.Background())

	// Нейтральное пустое состояние, не ошибка пользователю
	require.Len(t, renderer.views, 1)
	assert.Empty(t, renderer.views[0].Stylists)
	assert.Empty(t, renderer.views[0].Appointments)
	assert.Empty(t, notifier.messages)
}

func TestSelectDate_ReloadsBeforeRender(t *testing.T) {
	store := &fakeStore{}
	ctrl, _, renderer := newTestController(store)

	newDate := testDate.AddDate(0, 0, 1)
	ctrl.SelectDate(context.Background(), newDate)

	require.Len(t, renderer.views, 1)
	assert.Equal(t, newDate, renderer.views[0].SelectedDate)
	assert.Equal(t, 1, renderer.listCallsAtRender[0], "list reloaded before the render")
}

func TestSelectStylist(t *testing.T) {
	store := &fakeStore{}
	ctrl, _, renderer := newTestController(store)

	ctrl.SelectStylist(context.Background(), ptr.Ptr("Diego"))

	require.Len(t, renderer.views, 1)
	require.NotNil(t, renderer.views[0].SelectedStylist)
	assert.Equal(t, "Diego", *renderer.views[0].SelectedStylist)

	ctrl.SelectStylist(context.Background(), nil)
	require.Len(t, renderer.views, 2)
	assert.Nil(t, renderer.views[1].SelectedStylist)
}

func TestSubmitBooking_Success(t *testing.T) {
	store := &fakeStore{}
	ctrl, notifier, renderer := newTestController(store)

	err := ctrl.SubmitBooking(context.Background(), validDraft())

	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, "2025-10-15", store.created[0].Date)
	assert.Equal(t, "10:20", store.created[0].StartTime)
	assert.Equal(t, "Ana García", store.created[0].ClientName)

	// Read-your-write: перезагрузка строго до перерисовки
	require.Len(t, renderer.views, 1)
	assert.Equal(t, 1, renderer.listCallsAtRender[0])
	assert.Contains(t, notifier.messages, msgBookingCreated)
}

func TestSubmitBooking_ValidationSkipsNetwork(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BookingDraft)
		wantMsg string
	}{
		{"empty name", func(d *BookingDraft) { d.ClientName = "   " }, msgNameRequired},
		{"empty phone", func(d *BookingDraft) { d.Phone = "" }, msgPhoneRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			ctrl, notifier, renderer := newTestController(store)

			draft := validDraft()
			tt.mutate(&draft)

			err := ctrl.SubmitBooking(context.Background(), draft)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, store.created, "no network call on validation failure")
			assert.Empty(t, renderer.views, "no re-render on validation failure")
			assert.Equal(t, []string{tt.wantMsg}, notifier.messages)
		})
	}
}

func TestSubmitBooking_ConflictSurfacesServerReasonVerbatim(t *testing.T) {
	store := &fakeStore{
		createErr: &appointmentstore.SlotTakenError{Reason: "Hueco ocupado"},
	}
	ctrl, notifier, renderer := newTestController(store)

	err := ctrl.SubmitBooking(context.Background(), validDraft())

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, []string{"Hueco ocupado"}, notifier.messages)

	// Конфликт перечитывает состояние дня, чтобы пользователь увидел
	// актуальную занятость
	require.Len(t, renderer.views, 1)
	assert.Equal(t, 1, renderer.listCallsAtRender[0])
}

func TestSubmitBooking_GenericFailure(t *testing.T) {
	store := &fakeStore{createErr: errors.New("boom")}
	ctrl, notifier, renderer := newTestController(store)

	err := ctrl.SubmitBooking(context.Background(), validDraft())

	require.ErrorIs(t, err, ErrSubmitFailed)
	assert.Equal(t, []string{msgSubmitFailed}, notifier.messages)
	assert.Empty(t, renderer.views, "no state mutation assumed on generic failure")
}

func TestEditBooking_Success(t *testing.T) {
	store := &fakeStore{}
	ctrl, notifier, renderer := newTestController(store)

	err := ctrl.EditBooking(context.Background(), "a1", BookingPatch{
		ClientName: ptr.Ptr("Ana López"),
	})

	require.NoError(t, err)
	require.Contains(t, store.updated, "a1")
	assert.Equal(t, "Ana López", *store.updated["a1"].ClientName)
	assert.Nil(t, store.updated["a1"].Phone)

	require.Len(t, renderer.views, 1)
	assert.Equal(t, 1, renderer.listCallsAtRender[0], "reload before render after edit")
	assert.Contains(t, notifier.messages, msgBookingUpdated)
}

func TestEditBooking_EmptyPatch(t *testing.T) {
	store := &fakeStore{}
	ctrl, notifier, _ := newTestController(store)

	err := ctrl.EditBooking(context.Background(), "a1", BookingPatch{})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.updated)
	assert.Equal(t, []string{msgNothingToEdit}, notifier.messages)
}

func TestDeleteBooking(t *testing.T) {
	store := &fakeStore{}
	ctrl, notifier, renderer := newTestController(store)

	err := ctrl.DeleteBooking(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, store.deletedIDs)
	require.Len(t, renderer.views, 1)
	assert.Contains(t, notifier.messages, msgBookingDeleted)
}

func TestView_ReturnsCopies(t *testing.T) {
	store := &fakeStore{
		appointments: []*appointmentstore.Appointment{{ID: "a1"}},
		config:       &appointmentstore.SalonConfig{Stylists: []string{"Diego"}},
	}
	ctrl, _, _ := newTestController(store)
	ctrl.Start(context.Background())

	view := ctrl.View()
	view.Stylists[0] = "mutated"
	view.Appointments[0] = nil

	fresh := ctrl.View()
	assert.Equal(t, "Diego", fresh.Stylists[0])
	require.NotNil(t, fresh.Appointments[0])
	assert.Equal(t, "a1", fresh.Appointments[0].ID)
}
