package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MyteScripts/investbot/internal/domain"
	"github.com/MyteScripts/investbot/internal/venture"
)

// MockVentureService mocks the venture.Service interface
type MockVentureService struct {
	mock.Mock
}

func (m *MockVentureService) Catalog(ctx context.Context) []domain.VentureType {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VentureType)
}

func (m *MockVentureService) Portfolio(ctx context.Context, discordID string) ([]domain.PortfolioEntry, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortfolioEntry), args.Error(1)
}

func (m *MockVentureService) Purchase(ctx context.Context, discordID, typeKey string) (*domain.Venture, error) {
	args := m.Called(ctx, discordID, typeKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venture), args.Error(1)
}

func (m *MockVentureService) Collect(ctx context.Context, discordID, typeKey string) (*domain.CollectResult, error) {
	args := m.Called(ctx, discordID, typeKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectResult), args.Error(1)
}

func (m *MockVentureService) Maintain(ctx context.Context, discordID, typeKey string, points float64) (*domain.Venture, error) {
	args := m.Called(ctx, discordID, typeKey, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venture), args.Error(1)
}

func (m *MockVentureService) Repair(ctx context.Context, discordID, typeKey string) (*domain.Venture, error) {
	args := m.Called(ctx, discordID, typeKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venture), args.Error(1)
}

func (m *MockVentureService) Sell(ctx context.Context, discordID, typeKey string) (*domain.SellResult, error) {
	args := m.Called(ctx, discordID, typeKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellResult), args.Error(1)
}

func (m *MockVentureService) Sweep(ctx context.Context) (*venture.SweepStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venture.SweepStats), args.Error(1)
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestVentureHandler_Buy(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockVentureService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "Success",
			requestBody: VentureRequest{DiscordID: "12345", Type: "grocery_store"},
			setupMock: func(m *MockVentureService) {
				m.On("Purchase", mock.Anything, "12345", "grocery_store").
					Return(&domain.Venture{TypeKey: "grocery_store", Maintenance: 100}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Unknown type",
			requestBody: VentureRequest{DiscordID: "12345", Type: "moon_base"},
			setupMock: func(m *MockVentureService) {
				m.On("Purchase", mock.Anything, "12345", "moon_base").
					Return(nil, domain.ErrUnknownVentureType)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgUnknownTypeError,
		},
		{
			name:        "Already owned",
			requestBody: VentureRequest{DiscordID: "12345", Type: "grocery_store"},
			setupMock: func(m *MockVentureService) {
				m.On("Purchase", mock.Anything, "12345", "grocery_store").
					Return(nil, domain.ErrAlreadyOwned)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  ErrMsgAlreadyOwnedError,
		},
		{
			name:        "Not enough coins",
			requestBody: VentureRequest{DiscordID: "12345", Type: "grocery_store"},
			setupMock: func(m *MockVentureService) {
				m.On("Purchase", mock.Anything, "12345", "grocery_store").
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgNotEnoughCoinsError,
		},
		{
			name:           "Missing discord_id fails validation",
			requestBody:    VentureRequest{Type: "grocery_store"},
			setupMock:      func(m *MockVentureService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad type key fails validation",
			requestBody:    VentureRequest{DiscordID: "12345", Type: "Grocery Store!"},
			setupMock:      func(m *MockVentureService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockVentureService)
			tt.setupMock(svc)
			h := NewVentureHandler(svc)

			w := postJSON(t, h.Buy, "/venture/buy", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestVentureHandler_Collect(t *testing.T) {
	InitValidator()

	next := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockVentureService)
		svc.On("Collect", mock.Anything, "12345", "grocery_store").
			Return(&domain.CollectResult{Payout: 43, NextCollectAt: next}, nil)
		h := NewVentureHandler(svc)

		w := postJSON(t, h.Collect, "/venture/collect", VentureRequest{DiscordID: "12345", Type: "grocery_store"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"payout":43`)
		svc.AssertExpectations(t)
	})

	t.Run("On cooldown", func(t *testing.T) {
		svc := new(MockVentureService)
		svc.On("Collect", mock.Anything, "12345", "grocery_store").
			Return(nil, domain.ErrCollectOnCooldown)
		h := NewVentureHandler(svc)

		w := postJSON(t, h.Collect, "/venture/collect", VentureRequest{DiscordID: "12345", Type: "grocery_store"})

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgOnCooldownError)
	})

	t.Run("Incident blocks collection", func(t *testing.T) {
		svc := new(MockVentureService)
		svc.On("Collect", mock.Anything, "12345", "grocery_store").
			Return(nil, domain.ErrRiskEventActive)
		h := NewVentureHandler(svc)

		w := postJSON(t, h.Collect, "/venture/collect", VentureRequest{DiscordID: "12345", Type: "grocery_store"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgIncidentActiveError)
	})
}

func TestVentureHandler_Maintain(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockVentureService)
		svc.On("Maintain", mock.Anything, "12345", "grocery_store", 30.0).
			Return(&domain.Venture{TypeKey: "grocery_store", Maintenance: 70}, nil)
		h := NewVentureHandler(svc)

		w := postJSON(t, h.Maintain, "/venture/maintain",
			MaintainRequest{DiscordID: "12345", Type: "grocery_store", Points: 30})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Omitted points default downstream", func(t *testing.T) {
		svc := new(MockVentureService)
		svc.On("Maintain", mock.Anything, "12345", "grocery_store", 0.0).
			Return(&domain.Venture{TypeKey: "grocery_store", Maintenance: 65}, nil)
		h := NewVentureHandler(svc)

		w := postJSON(t, h.Maintain, "/venture/maintain",
			MaintainRequest{DiscordID: "12345", Type: "grocery_store"})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestVentureHandler_Repair(t *testing.T) {
	InitValidator()

	t.Run("Nothing to repair", func(t *testing.T) {
		svc := new(MockVentureService)
		svc.On("Repair", mock.Anything, "12345", "grocery_store").
			Return(nil, domain.ErrNoRiskEvent)
		h := NewVentureHandler(svc)

		w := postJSON(t, h.Repair, "/venture/repair", VentureRequest{DiscordID: "12345", Type: "grocery_store"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoIncidentError)
	})
}

func TestVentureHandler_Sell(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockVentureService)
		svc.On("Sell", mock.Anything, "12345", "grocery_store").
			Return(&domain.SellResult{Refund: 250}, nil)
		h := NewVentureHandler(svc)

		w := postJSON(t, h.Sell, "/venture/sell", VentureRequest{DiscordID: "12345", Type: "grocery_store"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"refund":250`)
	})

	t.Run("Not owned", func(t *testing.T) {
		svc := new(MockVentureService)
		svc.On("Sell", mock.Anything, "12345", "grocery_store").
			Return(nil, domain.ErrVentureNotFound)
		h := NewVentureHandler(svc)

		w := postJSON(t, h.Sell, "/venture/sell", VentureRequest{DiscordID: "12345", Type: "grocery_store"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestVentureHandler_Catalog(t *testing.T) {
	svc := new(MockVentureService)
	svc.On("Catalog", mock.Anything).Return([]domain.VentureType{
		{Key: "grocery_store", DisplayName: "Grocery Store", Cost: 500},
	})
	h := NewVentureHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/venture/catalog", nil)
	w := httptest.NewRecorder()
	h.Catalog(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "grocery_store")
}

func TestVentureHandler_Portfolio(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockVentureService)
		svc.On("Portfolio", mock.Anything, "12345").Return([]domain.PortfolioEntry{
			{Venture: domain.Venture{TypeKey: "grocery_store"}, Type: domain.VentureType{Key: "grocery_store"}},
		}, nil)
		h := NewVentureHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/venture/portfolio?discord_id=12345", nil)
		w := httptest.NewRecorder()
		h.Portfolio(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "grocery_store")
	})

	t.Run("Missing discord_id", func(t *testing.T) {
		h := NewVentureHandler(new(MockVentureService))

		req := httptest.NewRequest(http.MethodGet, "/venture/portfolio", nil)
		w := httptest.NewRecorder()
		h.Portfolio(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
