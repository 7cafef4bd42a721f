package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/person-api/internal/api/shared"
	"github.com/phrazzld/person-api/internal/platform/logger"
	"github.com/phrazzld/person-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockJWTService mocks auth.JWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(ctx context.Context, username string) (auth.Token, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(auth.Token), args.Error(1)
}

func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func TestTraceMiddleware(t *testing.T) {
	buf, base := logger.SetupTestLogger(t)

	var gotTrace string
	h := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTrace = shared.GetTraceID(r.Context())
		logger.FromContextOrDefault(r.Context()).Info("inside handler")
	}))

	t.Run("generates trace id", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(gotTrace)
		require.NoError(t, err)
		assert.Equal(t, gotTrace, rr.Header().Get(TraceHeader))
		logger.AssertLogContains(t, buf, `"trace_id":"`+gotTrace+`"`)
	})

	t.Run("reuses valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(TraceHeader, incoming)
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, incoming, gotTrace)
	})

	t.Run("replaces invalid incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(TraceHeader, "not-a-uuid\nforged")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.NotEqual(t, "not-a-uuid\nforged", gotTrace)
		_, err := uuid.Parse(gotTrace)
		assert.NoError(t, err)
	})
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m *MockJWTService)
		wantStatus int
		wantDetail string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Authorization header required",
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Invalid authorization format",
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(m *MockJWTService) {
				m.On("ValidateToken", mock.Anything, "old").Return(nil, auth.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Token expired",
		},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(m *MockJWTService) {
				m.On("ValidateToken", mock.Anything, "forged").Return(nil, auth.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Invalid token",
		},
		{
			name:   "unexpected failure",
			header: "Bearer weird",
			setup: func(m *MockJWTService) {
				m.On("ValidateToken", mock.Anything, "weird").Return(nil, errors.New("key store offline"))
			},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Authentication error",
		},
		{
			name:   "valid token",
			header: "bearer good",
			setup: func(m *MockJWTService) {
				m.On("ValidateToken", mock.Anything, "good").Return(&auth.Claims{Username: "alice"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			jwtSvc := &MockJWTService{}
			if tc.setup != nil {
				tc.setup(jwtSvc)
			}

			h := NewAuthMiddleware(jwtSvc).Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				name, ok := shared.GetUsername(r.Context())
				require.True(t, ok)
				shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"username": name})
			}))

			req := httptest.NewRequest(http.MethodGet, "/session", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantDetail != "" {
				var resp shared.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantDetail, resp.Detail)
			} else {
				assert.JSONEq(t, `{"username":"alice"}`, rr.Body.String())
			}
			jwtSvc.AssertExpectations(t)
		})
	}
}

type observation struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	mu  sync.Mutex
	got []observation
}

func (o *recordingObserver) ObserveRequest(method, route string, status int, _ time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.got = append(o.got, observation{method, route, status})
}

func TestMetricsMiddleware(t *testing.T) {
	obs := &recordingObserver{}

	r := chi.NewRouter()
	r.Use(NewMetricsMiddleware(obs))
	r.Get("/person/detail/{person_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/person/detail/21", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, obs.got, 2)
	assert.Equal(t, observation{"GET", "/person/detail/{person_id}", 404}, obs.got[0])
	assert.Equal(t, observation{"GET", "/", 200}, obs.got[1])
}
