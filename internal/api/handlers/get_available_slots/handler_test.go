package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	getAvailableSlots "github.com/zenya-app/Zenya-BookingService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	lastRequest *getAvailableSlots.Request
	response    *getAvailableSlots.Response
	err         error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func TestHandle_Success(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	start := date.Add(9 * time.Hour)

	uc := &stubUseCase{response: &getAvailableSlots.Response{
		Date:                   date,
		ServiceID:              "1",
		ServiceDurationMinutes: 60,
		Slots: []domain.TimeSlot{
			{ID: domain.SlotID(start), Start: start, End: start.Add(30 * time.Minute), Available: true},
		},
	}}
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?serviceId=1&date=2026-03-10", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastRequest)
	assert.Equal(t, "1", uc.lastRequest.ServiceID)
	// Дата запроса — полночь в локальной таймзоне сервера
	assert.True(t, uc.lastRequest.Date.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)))

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-03-10", body.Date)
	assert.Equal(t, 60, body.ServiceDurationMinutes)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "slot-202603100900", body.Slots[0].ID)
	assert.True(t, body.Slots[0].Available)
}

func TestHandle_MissingParams(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	tests := []struct {
		name string
		url  string
	}{
		{"missing serviceId", "/api/v1/available-slots?date=2026-03-10"},
		{"missing date", "/api/v1/available-slots?serviceId=1"},
		{"bad date format", "/api/v1/available-slots?serviceId=1&date=10.03.2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseError(t *testing.T) {
	uc := &stubUseCase{err: errors.New("storage down")}
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?serviceId=1&date=2026-03-10", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
