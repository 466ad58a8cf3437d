// Package widget контроллер сеанса бронирования: состояние сессии
// (выбранная дата, фильтр по мастеру, загруженные записи) плюс конечный
// набор пользовательских интентов. Контроллер вызывает магазин записей
// и запрашивает перерисовку; сам интерфейс он не знает.
//
// Контроллер однопоточный: интенты приходят из одного событийного цикла,
// внутренней синхронизации нет.
package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/appointmentstore"
)

const (
	msgNameRequired   = "el nombre es obligatorio"
	msgPhoneRequired  = "el teléfono es obligatorio"
	msgBookingCreated = "cita creada"
	msgBookingUpdated = "cita actualizada"
	msgBookingDeleted = "cita eliminada"
	msgSubmitFailed   = "no se pudo guardar la cita"
	msgNothingToEdit  = "nada que actualizar"
)

// Controller владеет состоянием сессии и исполняет интенты
type Controller struct {
	store    StoreClient
	notifier Notifier
	renderer Renderer
	logger   Logger

	selectedDate    time.Time
	selectedStylist *string
	stylists        []string
	appointments    []*appointmentstore.Appointment
}

// NewController создает контроллер с пустой сессией на указанной дате
func NewController(store StoreClient, notifier Notifier, renderer Renderer, logger Logger, startDate time.Time) *Controller {
	return &Controller{
		store:        store,
		notifier:     notifier,
		renderer:     renderer,
		logger:       logger,
		selectedDate: startDate,
		appointments: []*appointmentstore.Appointment{},
	}
}

// Start загружает состав мастеров и записи и делает первую отрисовку.
// При недоступности магазина сессия стартует с пустыми данными,
// это нейтральное состояние, не ошибка.
func (c *Controller) Start(ctx context.Context) {
	cfg, err := c.store.GetConfigWithGracefulDegradation(ctx)
	if err != nil {
		c.logger.Warn("Start: store unavailable, starting with empty roster: %v", err)
		c.stylists = []string{}
	} else {
		c.stylists = cfg.Stylists
	}

	c.reload(ctx)
	c.render()
}

// SelectDate интент смены выбранной даты
func (c *Controller) SelectDate(ctx context.Context, date time.Time) {
	c.selectedDate = date
	c.logger.Info("SelectDate: %s", date.Format(domain.DateFormat))

	c.reload(ctx)
	c.render()
}

// SelectStylist интент смены фильтра по мастеру; nil снимает фильтр
func (c *Controller) SelectStylist(ctx context.Context, stylist *string) {
	c.selectedStylist = stylist
	if stylist != nil {
		c.logger.Info("SelectStylist: %s", *stylist)
	} else {
		c.logger.Info("SelectStylist: filter cleared")
	}

	c.reload(ctx)
	c.render()
}

// SubmitBooking интент отправки черновика брони.
// Отправка оптимистична: занятость решает магазин записей. На конфликте
// пользователь видит причину с сервера дословно, локальное состояние
// не мутируется до перезагрузки с авторитетного источника.
func (c *Controller) SubmitBooking(ctx context.Context, draft BookingDraft) error {
	name := strings.TrimSpace(draft.ClientName)
	phone := strings.TrimSpace(draft.Phone)

	// Локальная валидация: без имени или телефона сетевого вызова нет
	if name == "" {
		c.notifier.Notify(msgNameRequired)
		return fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if phone == "" {
		c.notifier.Notify(msgPhoneRequired)
		return fmt.Errorf("%w: client phone is required", ErrValidation)
	}

	_, err := c.store.CreateAppointment(ctx, &appointmentstore.CreateAppointmentRequest{
		Date:       draft.Date.Format(domain.DateFormat),
		StartTime:  draft.StartTime,
		ClientName: name,
		Phone:      phone,
		Stylist:    draft.Stylist,
	})
	if err != nil {
		return c.handleSubmitError(ctx, err)
	}

	c.logger.Info("SubmitBooking: booking accepted for %s %s", draft.Date.Format(domain.DateFormat), draft.StartTime)
	c.notifier.Notify(msgBookingCreated)

	// Перезагрузка с сервера строго до перерисовки (read-your-write)
	c.reload(ctx)
	c.render()
	return nil
}

// EditBooking интент правки имени/телефона существующей брони.
// Занятость слота не перепроверяется: дата, время и мастер не меняются.
func (c *Controller) EditBooking(ctx context.Context, id string, patch BookingPatch) error {
	if patch.ClientName == nil && patch.Phone == nil {
		c.notifier.Notify(msgNothingToEdit)
		return fmt.Errorf("%w: empty patch", ErrValidation)
	}

	if patch.ClientName != nil && strings.TrimSpace(*patch.ClientName) == "" {
		c.notifier.Notify(msgNameRequired)
		return fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if patch.Phone != nil && strings.TrimSpace(*patch.Phone) == "" {
		c.notifier.Notify(msgPhoneRequired)
		return fmt.Errorf("%w: client phone is required", ErrValidation)
	}

	_, err := c.store.UpdateAppointment(ctx, id, &appointmentstore.UpdateAppointmentRequest{
		ClientName: patch.ClientName,
		Phone:      patch.Phone,
	})
	if err != nil {
		c.logger.Error("EditBooking: update failed for id=%s: %v", id, err)
		c.notifier.Notify(msgSubmitFailed)
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	c.logger.Info("EditBooking: booking updated: id=%s", id)
	c.notifier.Notify(msgBookingUpdated)

	c.reload(ctx)
	c.render()
	return nil
}

// DeleteBooking интент удаления брони
func (c *Controller) DeleteBooking(ctx context.Context, id string) error {
	if err := c.store.DeleteAppointment(ctx, id); err != nil {
		c.logger.Error("DeleteBooking: delete failed for id=%s: %v", id, err)
		c.notifier.Notify(msgSubmitFailed)
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	c.logger.Info("DeleteBooking: booking deleted: id=%s", id)
	c.notifier.Notify(msgBookingDeleted)

	c.reload(ctx)
	c.render()
	return nil
}

// View возвращает снимок текущего состояния сессии
func (c *Controller) View() View {
	appointments := make([]*appointmentstore.Appointment, len(c.appointments))
	copy(appointments, c.appointments)

	stylists := make([]string, len(c.stylists))
	copy(stylists, c.stylists)

	return View{
		SelectedDate:    c.selectedDate,
		SelectedStylist: c.selectedStylist,
		Stylists:        stylists,
		Appointments:    appointments,
	}
}

func (c *Controller) handleSubmitError(ctx context.Context, err error) error {
	var slotErr *appointmentstore.SlotTakenError
	if errors.As(err, &slotErr) {
		// Причина отказа с сервера показывается дословно,
		// затем перезагрузка, чтобы пользователь увидел актуальный день
		c.logger.Warn("SubmitBooking: slot conflict: %s", slotErr.Reason)
		c.notifier.Notify(slotErr.Reason)

		c.reload(ctx)
		c.render()
		return fmt.Errorf("%w: %s", ErrSlotConflict, slotErr.Reason)
	}

	var rejection *appointmentstore.RejectionError
	if errors.As(err, &rejection) {
		c.logger.Warn("SubmitBooking: rejected by store: %s", rejection.Reason)
		c.notifier.Notify(rejection.Reason)
		return fmt.Errorf("%w: %s", ErrSubmitFailed, rejection.Reason)
	}

	c.logger.Error("SubmitBooking: submit failed: %v", err)
	c.notifier.Notify(msgSubmitFailed)
	return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
}

// reload заменяет список записей целиком с авторитетного источника.
// При недоступности магазина список пустой: нейтральное состояние,
// интерфейс продолжает работать.
func (c *Controller) reload(ctx context.Context) {
	list, err := c.store.ListAppointmentsWithGracefulDegradation(
		ctx, c.selectedDate.Format(domain.DateFormat), c.selectedStylist)
	if err != nil {
		c.logger.Warn("reload: store unavailable, rendering empty list: %v", err)
		c.appointments = []*appointmentstore.Appointment{}
		return
	}

	c.appointments = list.Appointments
}

func (c *Controller) render() {
	c.renderer.Render(c.View())
}
