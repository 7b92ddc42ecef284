package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/core/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/SscSPs/greenhouse_ledger/internal/handlers"
	"github.com/SscSPs/greenhouse_ledger/internal/middleware"
	"github.com/SscSPs/greenhouse_ledger/internal/platform/config"
	"github.com/SscSPs/greenhouse_ledger/internal/repositories/database/memory"
	"github.com/SscSPs/greenhouse_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockLedgerService) GetCycleFinancials(ctx context.Context, cropCycleID string) (*domain.CycleFinancials, error) {
	args := m.Called(ctx, cropCycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CycleFinancials), args.Error(1)
}

func (m *MockLedgerService) ListCycleFinancials(ctx context.Context) ([]domain.CycleFinancials, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CycleFinancials), args.Error(1)
}

func (m *MockLedgerService) GetCycleTreasury(ctx context.Context, cropCycleID string) (*domain.TreasuryBreakdown, error) {
	args := m.Called(ctx, cropCycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasuryBreakdown), args.Error(1)
}

func (m *MockLedgerService) GetTreasurySummary(ctx context.Context) (*domain.TreasurySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasurySummary), args.Error(1)
}

func (m *MockLedgerService) GetFarmerBalances(ctx context.Context) ([]domain.Farmer, map[string]domain.FarmerBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Farmer), args.Get(1).(map[string]domain.FarmerBalance), args.Error(2)
}

func (m *MockLedgerService) GetSupplierBalances(ctx context.Context) ([]domain.Supplier, map[string]domain.SupplierBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Supplier), args.Get(1).(map[string]domain.SupplierBalance), args.Error(2)
}

func (m *MockLedgerService) GetProgramProfitability(ctx context.Context, programID string) (*domain.ProgramProfitability, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgramProfitability), args.Error(1)
}

func (m *MockLedgerService) ListProgramProfitability(ctx context.Context) ([]domain.ProgramProfitability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgramProfitability), args.Error(1)
}

func (m *MockLedgerService) Alerts(ctx context.Context, now time.Time) ([]domain.Alert, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

func (m *MockLedgerService) Dashboard(ctx context.Context, now time.Time) (*domain.Dashboard, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	cfg        *config.Config
	container  *portssvc.ServiceContainer
	mockLedger *MockLedgerService
	token      string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	hash, err := utils.HashPassword("s3cret-tomato")
	suite.Require().NoError(err)
	suite.cfg = &config.Config{
		IsProduction:      true,
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "ghl-test",
		AdminUsername:     "owner",
		AdminPasswordHash: hash,
	}

	suite.container = services.NewServiceContainer(suite.cfg, memory.NewRepositoryProvider(memory.NewStore("")))
	suite.mockLedger = new(MockLedgerService)

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(middleware.GetLoggerFromCtx(context.Background())))
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, suite.cfg, suite.container))

	token, _, err := utils.GenerateJWT("owner", suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer, time.Now())
	suite.Require().NoError(err)
	suite.token = token
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// do sends an authenticated JSON request to router.
func (suite *HandlerTestSuite) do(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *HandlerTestSuite) createCycle(farmerID string, share any) domain.CropCycle {
	w := suite.do(suite.router, http.MethodPost, "/api/v1/greenhouses", gin.H{
		"name": "North", "creationDate": "2024-01-01", "initialCost": 1000,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var g domain.Greenhouse
	suite.decode(w, &g)

	body := gin.H{
		"name": "Spring", "startDate": "2024-02-01", "greenhouseID": g.GreenhouseID,
		"seedType": "Tomato", "plantCount": 100,
	}
	if farmerID != "" {
		body["farmerID"] = farmerID
		body["farmerSharePercentage"] = share
	}
	w = suite.do(suite.router, http.MethodPost, "/api/v1/cycles", body)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var c domain.CropCycle
	suite.decode(w, &c)
	return c
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealthIsPublic() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestAPIRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/cycles", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestLogin() {
	w := suite.do(suite.router, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "owner", Password: "s3cret-tomato"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.AuthResponse
	suite.decode(w, &res)
	suite.Equal("Bearer", res.TokenType)
	suite.NotEmpty(res.AccessToken)

	w = suite.do(suite.router, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "owner", Password: "nope"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(suite.router, http.MethodPost, "/api/v1/auth/login", gin.H{"username": "owner"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRevenueFlowsIntoFinancials() {
	c := suite.createCycle("", nil)

	w := suite.do(suite.router, http.MethodPost, "/api/v1/transactions", gin.H{
		"date": "2024-03-01", "type": "REVENUE", "amount": 0, "cropCycleID": c.CropCycleID,
		"firstGradeQuantity": 10, "firstGradePrice": 3, "discount": 5,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var t domain.Transaction
	suite.decode(w, &t)
	suite.True(t.Amount.Equal(decimal.NewFromInt(25)))

	w = suite.do(suite.router, http.MethodGet, "/api/v1/cycles/"+c.CropCycleID+"/financials", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var fin domain.CycleFinancials
	suite.decode(w, &fin)
	suite.True(fin.Revenue.Equal(decimal.NewFromInt(25)))
	suite.True(fin.YieldTotal.Equal(decimal.NewFromInt(10)))

	w = suite.do(suite.router, http.MethodGet, "/api/v1/cycles/"+c.CropCycleID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var reloaded domain.CropCycle
	suite.decode(w, &reloaded)
	suite.Require().NotNil(reloaded.ProductionStartDate)
	suite.Equal("2024-03-01", reloaded.ProductionStartDate.Format(domain.DateLayout))
}

func (suite *HandlerTestSuite) TestBindingValidation() {
	c := suite.createCycle("", nil)

	cases := []struct {
		name string
		path string
		body gin.H
	}{
		{"bad date", "/api/v1/transactions", gin.H{"date": "01/03/2024", "type": "EXPENSE", "category": "Labor", "amount": 1, "cropCycleID": c.CropCycleID}},
		{"negative amount", "/api/v1/transactions", gin.H{"date": "2024-03-01", "type": "EXPENSE", "category": "Labor", "amount": -1, "cropCycleID": c.CropCycleID}},
		{"expense without category", "/api/v1/transactions", gin.H{"date": "2024-03-01", "type": "EXPENSE", "amount": 1, "cropCycleID": c.CropCycleID}},
		{"unknown type", "/api/v1/transactions", gin.H{"date": "2024-03-01", "type": "GIFT", "amount": 1, "cropCycleID": c.CropCycleID}},
		{"zero withdrawal", "/api/v1/withdrawals", gin.H{"date": "2024-03-01", "amount": 0, "cropCycleID": c.CropCycleID}},
		{"share above 100", "/api/v1/cycles", gin.H{"name": "X", "startDate": "2024-02-01", "greenhouseID": c.GreenhouseID, "plantCount": 1, "farmerID": "f", "farmerSharePercentage": 101}},
		{"zero plants", "/api/v1/cycles", gin.H{"name": "X", "startDate": "2024-02-01", "greenhouseID": c.GreenhouseID, "plantCount": 0}},
	}
	for _, tc := range cases {
		w := suite.do(suite.router, http.MethodPost, tc.path, tc.body)
		suite.Equal(http.StatusBadRequest, w.Code, tc.name)
	}
}

func (suite *HandlerTestSuite) TestServiceErrorsMapToStatus() {
	c := suite.createCycle("", nil)

	w := suite.do(suite.router, http.MethodGet, "/api/v1/cycles/missing/financials", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(suite.router, http.MethodDelete, "/api/v1/greenhouses/"+c.GreenhouseID, nil)
	suite.Equal(http.StatusConflict, w.Code)
	var body dto.ErrorResponse
	suite.decode(w, &body)
	suite.NotEmpty(body.Error)

	w = suite.do(suite.router, http.MethodPost, "/api/v1/withdrawals", gin.H{
		"date": "2024-03-01", "amount": 5, "cropCycleID": c.CropCycleID,
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(suite.router, http.MethodDelete, "/api/v1/cycles/"+c.CropCycleID, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestFarmerBalancesRoute() {
	w := suite.do(suite.router, http.MethodPost, "/api/v1/farmers", dto.FarmerRequest{Name: "Omar"})
	suite.Require().Equal(http.StatusCreated, w.Code)
	var f domain.Farmer
	suite.decode(w, &f)
	c := suite.createCycle(f.FarmerID, 50)

	w = suite.do(suite.router, http.MethodPost, "/api/v1/transactions", gin.H{
		"date": "2024-03-01", "type": "REVENUE", "amount": 200, "cropCycleID": c.CropCycleID,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	w = suite.do(suite.router, http.MethodPost, "/api/v1/withdrawals", gin.H{
		"date": "2024-03-02", "amount": 30, "cropCycleID": c.CropCycleID,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do(suite.router, http.MethodGet, "/api/v1/farmers/balances", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var balances []dto.FarmerBalanceResponse
	suite.decode(w, &balances)
	suite.Require().Len(balances, 1)
	suite.Equal("Omar", balances[0].Name)
	suite.True(balances[0].Balance.Equal(decimal.NewFromInt(70)))

	w = suite.do(suite.router, http.MethodDelete, "/api/v1/farmers/"+f.FarmerID, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestSettingsRoundTrip() {
	w := suite.do(suite.router, http.MethodGet, "/api/v1/settings", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var s domain.Settings
	suite.decode(w, &s)
	suite.Equal(domain.DefaultSettings(), s)

	w = suite.do(suite.router, http.MethodPut, "/api/v1/settings", gin.H{
		"isFarmerSystemEnabled": false, "theme": "dark",
		"expenseCategories": []gin.H{{"name": "Seeds", "isFoundational": true}},
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.decode(w, &s)
	suite.Equal("dark", s.Theme)
	suite.False(s.FarmerSystemEnabled)

	w = suite.do(suite.router, http.MethodPut, "/api/v1/settings", gin.H{"theme": "neon"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestLedgerInternalErrorHidesDetails() {
	suite.container.Ledger = suite.mockLedger
	router := gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(router, suite.cfg, suite.container))

	suite.mockLedger.On("GetTreasurySummary", mock.Anything).Return(nil, errors.New("pq: connection refused")).Once()

	w := suite.do(router, http.MethodGet, "/api/v1/treasury", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	suite.decode(w, &body)
	suite.Equal("Failed to compute treasury", body.Error)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAlertsUseLedgerService() {
	suite.container.Ledger = suite.mockLedger
	router := gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(router, suite.cfg, suite.container))

	alerts := []domain.Alert{{ID: "high-cost-c1", Kind: domain.AlertHighCost, RelatedEntityID: "c1"}}
	suite.mockLedger.On("Alerts", mock.Anything, mock.AnythingOfType("time.Time")).Return(alerts, nil).Once()

	w := suite.do(router, http.MethodGet, "/api/v1/alerts", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var got []domain.Alert
	suite.decode(w, &got)
	suite.Equal(alerts, got)
}
