// Package appointmentstore HTTP клиент API магазина записей для виджета.
// Read-операции поддерживают graceful degradation: при недоступности
// сервиса виджет получает пустые данные вместо падения.
package appointmentstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент API магазина записей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetConfig получает конфигурацию салона
func (c *Client) GetConfig(ctx context.Context) (*SalonConfig, error) {
	var cfg SalonConfig
	if err := c.getJSON(ctx, c.baseURL+"/api/v1/config", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetStylists получает состав мастеров
func (c *Client) GetStylists(ctx context.Context) (*StylistList, error) {
	var list StylistList
	if err := c.getJSON(ctx, c.baseURL+"/api/v1/stylists", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListAppointments получает записи с опциональными фильтрами по дате и мастеру
func (c *Client) ListAppointments(ctx context.Context, date string, stylist *string) (*AppointmentList, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	if stylist != nil {
		query.Set("stylist", *stylist)
	}

	var list AppointmentList
	if err := c.getJSON(ctx, c.withQuery("/api/v1/appointments", query), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetDaySchedule получает сетку дня слот за слотом
func (c *Client) GetDaySchedule(ctx context.Context, date string, stylist *string) (*DaySchedule, error) {
	query := url.Values{}
	query.Set("date", date)
	if stylist != nil {
		query.Set("stylist", *stylist)
	}

	var schedule DaySchedule
	if err := c.getJSON(ctx, c.withQuery("/api/v1/schedule", query), &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetCalendarSummary получает сводку занятости по полуоткрытому диапазону [from, to)
func (c *Client) GetCalendarSummary(ctx context.Context, from, to string, stylist *string) (*CalendarSummary, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)
	if stylist != nil {
		query.Set("stylist", *stylist)
	}

	var summary CalendarSummary
	if err := c.getJSON(ctx, c.withQuery("/api/v1/calendar-summary", query), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CreateAppointment создает запись. На 409 возвращает SlotTakenError
// с текстом отказа с сервера, на 400 - RejectionError.
func (c *Client) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/api/v1/appointments", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return nil, &SlotTakenError{Reason: c.readErrorMessage(resp)}
	case http.StatusBadRequest:
		return nil, &RejectionError{Reason: c.readErrorMessage(resp)}
	case http.StatusNotFound:
		return nil, &RejectionError{Reason: c.readErrorMessage(resp)}
	default:
		return nil, c.unexpectedStatus(resp)
	}

	var appt Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appt); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return &appt, nil
}

// UpdateAppointment частично правит запись по ID
func (c *Client) UpdateAppointment(ctx context.Context, id string, req *UpdateAppointmentRequest) (*Appointment, error) {
	resp, err := c.doJSON(ctx, http.MethodPatch, c.baseURL+"/api/v1/appointments/"+id, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAppointmentNotFound
	case http.StatusBadRequest:
		return nil, &RejectionError{Reason: c.readErrorMessage(resp)}
	default:
		return nil, c.unexpectedStatus(resp)
	}

	var appt Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appt); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return &appt, nil
}

// DeleteAppointment удаляет запись по ID
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/v1/appointments/"+id, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrAppointmentNotFound
	default:
		return c.unexpectedStatus(resp)
	}
}

// ListAppointmentsWithGracefulDegradation получает записи с graceful degradation:
// при недоступности сервиса возвращает ErrServiceDegraded, и виджет
// рисует пустой список вместо падения
func (c *Client) ListAppointmentsWithGracefulDegradation(ctx context.Context, date string, stylist *string) (*AppointmentList, error) {
	list, err := c.ListAppointments(ctx, date, stylist)
	if err != nil {
		c.log.Error("AppointmentStore unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	return list, nil
}

// GetConfigWithGracefulDegradation получает конфигурацию с graceful degradation
func (c *Client) GetConfigWithGracefulDegradation(ctx context.Context) (*SalonConfig, error) {
	cfg, err := c.GetConfig(ctx)
	if err != nil {
		c.log.Error("AppointmentStore unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	return cfg, nil
}

func (c *Client) withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + query.Encode()
}

// getJSON выполняет GET и декодирует 200 OK в dst
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrAppointmentNotFound
	case http.StatusBadRequest:
		return &RejectionError{Reason: c.readErrorMessage(resp)}
	default:
		return c.unexpectedStatus(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// doJSON выполняет запрос с JSON телом, статус обрабатывает вызывающий
func (c *Client) doJSON(ctx context.Context, method, url string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	return resp, nil
}

// readErrorMessage достает текст ошибки из тела ответа
func (c *Client) readErrorMessage(resp *http.Response) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Message == "" {
		return fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return errResp.Message
}

func (c *Client) unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}
