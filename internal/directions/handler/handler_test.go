package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/swamyrayudu/localhunt-backend/internal/directions"
	mockdirectionshandler "github.com/swamyrayudu/localhunt-backend/internal/directions/handler/mocks"
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/store"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(service Service) *chi.Mux {
	router := chi.NewRouter()
	New(service, passthroughMiddleware, zap.NewNop()).Register(router)

	return router
}

func TestHandler_CreateSessionHandler(t *testing.T) {
	type mockBehavior func(s *mockdirectionshandler.MockService)

	testTable := []struct {
		name               string
		inputBody          string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:      "OK with inline stores",
			inputBody: `{"stores":[{"id":"a","latitude":35.0,"longitude":139.0,"price":"12.50"}],"initialSelectedId":"a","height":400}`,
			mockBehavior: func(s *mockdirectionshandler.MockService) {
				price := 12.5
				lat, lng := 35.0, 139.0
				expected := []store.Location{
					{ID: "a", Latitude: &lat, Longitude: &lng, Price: &price},
				}
				s.EXPECT().
					CreateSession(gomock.Any(), expected, "a", 400).
					Return(&directions.SessionInfo{ID: "s1", Token: "t"}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:      "OK with empty body",
			inputBody: `{}`,
			mockBehavior: func(s *mockdirectionshandler.MockService) {
				s.EXPECT().
					CreateSession(gomock.Any(), []store.Location{}, "", 0).
					Return(&directions.SessionInfo{ID: "s1", Token: "t"}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:               "Store without id",
			inputBody:          `{"stores":[{"latitude":35.0}]}`,
			mockBehavior:       func(s *mockdirectionshandler.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:               "Malformed body",
			inputBody:          `{"stores":`,
			mockBehavior:       func(s *mockdirectionshandler.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:      "Service unexpected failure",
			inputBody: `{}`,
			mockBehavior: func(s *mockdirectionshandler.MockService) {
				s.EXPECT().
					CreateSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("unexpected error"))
			},
			expectedStatusCode: 500,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockdirectionshandler.NewMockService(c)
			tc.mockBehavior(service)

			router := newTestRouter(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/map/sessions", bytes.NewBufferString(tc.inputBody))

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}

func TestHandler_SelectStoreHandler(t *testing.T) {
	type mockBehavior func(s *mockdirectionshandler.MockService)

	testTable := []struct {
		name               string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name: "OK",
			mockBehavior: func(s *mockdirectionshandler.MockService) {
				s.EXPECT().
					SelectStore(gomock.Any(), "s1", "a").
					Return(&directions.SessionState{}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name: "Unknown store",
			mockBehavior: func(s *mockdirectionshandler.MockService) {
				s.EXPECT().
					SelectStore(gomock.Any(), "s1", "a").
					Return(nil, directions.ErrUnknownStore)
			},
			expectedStatusCode: 404,
		},
		{
			name: "Store without coordinates",
			mockBehavior: func(s *mockdirectionshandler.MockService) {
				s.EXPECT().
					SelectStore(gomock.Any(), "s1", "a").
					Return(nil, directions.ErrStoreNotMappable)
			},
			expectedStatusCode: 400,
		},
		{
			name: "Session not found",
			mockBehavior: func(s *mockdirectionshandler.MockService) {
				s.EXPECT().
					SelectStore(gomock.Any(), "s1", "a").
					Return(nil, directions.ErrSessionNotFound)
			},
			expectedStatusCode: 404,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockdirectionshandler.NewMockService(c)
			tc.mockBehavior(service)

			router := newTestRouter(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/map/sessions/s1/select/a", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}

func TestHandler_LocateHandler(t *testing.T) {
	type mockBehavior func(s *mockdirectionshandler.MockService)

	testTable := []struct {
		name               string
		inputBody          string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:      "Reported coordinates",
			inputBody: `{"latitude":16.5,"longitude":80.6}`,
			mockBehavior: func(s *mockdirectionshandler.MockService) {
				s.EXPECT().
					RequestLocation(gomock.Any(), "s1", &geo.Point{Latitude: 16.5, Longitude: 80.6}).
					Return(&directions.SessionState{}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:      "Provider resolution",
			inputBody: `{}`,
			mockBehavior: func(s *mockdirectionshandler.MockService) {
				s.EXPECT().
					RequestLocation(gomock.Any(), "s1", nil).
					Return(&directions.SessionState{}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:               "Latitude without longitude",
			inputBody:          `{"latitude":16.5}`,
			mockBehavior:       func(s *mockdirectionshandler.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:               "Latitude out of range",
			inputBody:          `{"latitude":120.0,"longitude":80.6}`,
			mockBehavior:       func(s *mockdirectionshandler.MockService) {},
			expectedStatusCode: 400,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockdirectionshandler.NewMockService(c)
			tc.mockBehavior(service)

			router := newTestRouter(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/map/sessions/s1/locate", bytes.NewBufferString(tc.inputBody))

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}

func TestHandler_ActionHandler(t *testing.T) {
	type mockBehavior func(s *mockdirectionshandler.MockService)

	testTable := []struct {
		name               string
		inputBody          string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:      "Get directions action",
			inputBody: `{"type":"get-directions","storeId":"a"}`,
			mockBehavior: func(s *mockdirectionshandler.MockService) {
				s.EXPECT().
					PublishAction(gomock.Any(), "s1", "map:get-directions", "a").
					Return(nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:               "Missing type",
			inputBody:          `{"storeId":"a"}`,
			mockBehavior:       func(s *mockdirectionshandler.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:               "Missing store id",
			inputBody:          `{"type":"get-directions"}`,
			mockBehavior:       func(s *mockdirectionshandler.MockService) {},
			expectedStatusCode: 400,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockdirectionshandler.NewMockService(c)
			tc.mockBehavior(service)

			router := newTestRouter(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/map/sessions/s1/actions", bytes.NewBufferString(tc.inputBody))

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}

func TestHandler_NavigationLinkHandler(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	service := mockdirectionshandler.NewMockService(c)
	service.EXPECT().
		NavigationLink(gomock.Any(), "s1").
		Return("", directions.ErrNavigationUnavailable)

	router := newTestRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/map/sessions/s1/navigation-link", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestHandler_GetStateHandler(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	service := mockdirectionshandler.NewMockService(c)
	service.EXPECT().
		GetState(gomock.Any(), "missing").
		Return(nil, directions.ErrSessionNotFound)

	router := newTestRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/map/sessions/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
}

func passthroughMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
	})
}
