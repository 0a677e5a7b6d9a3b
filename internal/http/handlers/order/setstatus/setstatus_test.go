package setstatus

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guswanstore/guswanmy/internal/services/order"
)

type OrderServiceMock struct {
	mock.Mock
}

func (m *OrderServiceMock) SetStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSetStatusHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		orderID        string
		requestBody    interface{}
		mockErr        error
		mockCall       bool
		wantStatusCode int
		wantError      string
		wantStatus     string
	}{
		{
			name:           "verify order as completed",
			orderID:        "PAY-12345678-ABC123",
			requestBody:    Request{Status: "completed"},
			mockCall:       true,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "reject order",
			orderID:        "PAY-12345678-ABC123",
			requestBody:    Request{Status: "rejected"},
			mockCall:       true,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "pending is not an allowed verdict",
			orderID:        "PAY-12345678-ABC123",
			requestBody:    Request{Status: "pending"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Status has an unsupported value",
			wantStatus:     "Error",
		},
		{
			name:           "invalid json",
			orderID:        "PAY-12345678-ABC123",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name:           "unknown order",
			orderID:        "PAY-00000000-XXXXXX",
			requestBody:    Request{Status: "completed"},
			mockCall:       true,
			mockErr:        order.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
			wantError:      "order not found",
			wantStatus:     "Error",
		},
		{
			name:           "already verified",
			orderID:        "PAY-12345678-ABC123",
			requestBody:    Request{Status: "rejected"},
			mockCall:       true,
			mockErr:        order.ErrTerminalStatus,
			wantStatusCode: http.StatusConflict,
			wantError:      "order already verified",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock := new(OrderServiceMock)
			handler := New(newNoopLogger(), svcMock)

			if tt.mockCall {
				svcMock.On("SetStatus", mock.Anything, tt.orderID, tt.requestBody.(Request).Status).
					Return(tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPatch, "/admin/orders/"+tt.orderID, bytes.NewReader(bodyBytes))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.orderID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "reqid123")
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			}

			svcMock.AssertExpectations(t)
		})
	}
}
