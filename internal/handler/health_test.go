package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	pool := new(MockDBPool)
	pool.On("Ping", mock.Anything).Return(nil)

	req := httptest.NewRequest("GET", "/readyz", nil)
	w := httptest.NewRecorder()

	HandleReadyz(pool).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	pool.AssertExpectations(t)
}

func TestHandleReadyz_DatabaseDown(t *testing.T) {
	pool := new(MockDBPool)
	pool.On("Ping", mock.Anything).Return(errors.New("connection refused"))

	req := httptest.NewRequest("GET", "/readyz", nil)
	w := httptest.NewRecorder()

	HandleReadyz(pool).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}
