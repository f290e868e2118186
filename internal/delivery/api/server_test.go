package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketnav/config"
	apimiddleware "marketnav/internal/delivery/api/middleware"
	"marketnav/internal/delivery/api/router"
	"marketnav/internal/delivery/api/router/handler"
	deliverycontext "marketnav/internal/delivery/context"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/service"
	mockSvc "marketnav/internal/mocks/service"
	mockUC "marketnav/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type serverFixtures struct {
	echo         *echo.Echo
	tokenSvc     *mockSvc.MockTokenService
	navigationUC *mockUC.MockNavigationUsecase
	marketUC     *mockUC.MockMarketUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	logger := slog.Default()
	tokenSvc := mockSvc.NewMockTokenService(t)
	navigationUC := mockUC.NewMockNavigationUsecase(t)
	marketUC := mockUC.NewMockMarketUsecase(t)

	r := router.NewRouter(router.RouterParams{
		ShopHandler: handler.NewShopHandler(handler.ShopHandlerParams{
			ShopLocatorUC: mockUC.NewMockShopLocatorUsecase(t),
			RouteUC:       mockUC.NewMockRouteUsecase(t),
			MarketUC:      marketUC,
			Logger:        logger,
		}),
		NavigationHandler: handler.NewNavigationHandler(handler.NavigationHandlerParams{
			NavigationUC:      navigationUC,
			LocationTrackerUC: mockUC.NewMockLocationTrackerUsecase(t),
			IndoorRouteUC:     mockUC.NewMockIndoorRouteUsecase(t),
			ExternalRouteUC:   mockUC.NewMockExternalRouteUsecase(t),
			Logger:            logger,
		}),
		GeofenceHandler: handler.NewGeofenceHandler(handler.GeofenceHandlerParams{
			GeofenceUC: mockUC.NewMockGeofenceUsecase(t),
			Logger:     logger,
		}),
		MarketHandler:  handler.NewMarketHandler(handler.MarketHandlerParams{MarketUC: marketUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenSvc, logger),
	})

	return serverFixtures{
		echo:         newEcho(cfg, logger, r),
		tokenSvc:     tokenSvc,
		navigationUC: navigationUC,
		marketUC:     marketUC,
	}
}

func (fx serverFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthIsPublic(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.JSONEq(t, `{"data":{"status":"ok"},"meta":{"request_id":"req-123"}}`, rec.Body.String())
}

func TestServer_APIRequiresToken(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/api/v1/navigation/active", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t,
		`{"error":{"code":"MISSING_TOKEN","message":"Authorization header is missing"},"meta":{"request_id":"req-123"}}`,
		rec.Body.String())
}

func TestServer_ActiveSessionNotFound(t *testing.T) {
	fx := createTestServer(t)
	userID := uuid.New()

	fx.tokenSvc.EXPECT().ValidateAccessToken("token").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)
	fx.navigationUC.EXPECT().ActiveSession(mock.Anything, userID).Return(nil, domainerrors.ErrNoActiveSession)

	rec := fx.do(http.MethodGet, "/api/v1/navigation/active", "token", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"error":{"code":"NO_ACTIVE_SESSION","message":"No active navigation session"},"meta":{"request_id":"req-123"}}`,
		rec.Body.String())
}

func TestServer_StaticMarketRouteWins(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().ValidateAccessToken("token").Return(&service.Claims{UserID: uuid.New()}, nil)
	fx.marketUC.EXPECT().PinSearch(mock.Anything, 13.7563, 100.5018).Return(nil, domainerrors.ErrNoMarketNearby)

	rec := fx.do(http.MethodGet, "/api/v1/markets/pin-search?lat=13.7563&lng=100.5018", "token", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_MARKET_NEARBY")
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/api/v2/anything", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_BodyLimit(t *testing.T) {
	fx := createTestServer(t)

	// rejected before authentication runs
	body := `{"start_latitude": 13.7563, "start_longitude": 100.5018, "padding": "` + strings.Repeat("x", 2048) + `"}`
	rec := fx.do(http.MethodPost, "/api/v1/navigation/start", "token", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
