package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"member-history-backend/internal/api/handlers"
	"member-history-backend/internal/cycle"
	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/mocks"
	"member-history-backend/internal/models"
	"member-history-backend/internal/service"
)

type CycleHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCycleServiceInterface
	router      *gin.Engine
}

func (suite *CycleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCycleServiceInterface(suite.ctrl)

	handler := handlers.NewCycleHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.GET("/cycles/config", handler.GetConfig)
	suite.router.GET("/cycles/locate", handler.Locate)
	suite.router.GET("/cycles/range", handler.Range)
}

func (suite *CycleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CycleHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CycleHandlerTestSuite) TestGetConfig() {
	suite.mockService.EXPECT().GetConfig(gomock.Any()).Return(&service.CycleConfigResponse{
		WeeksPerCycle: 4,
		WeekADate:     models.MustParseDate("2025-01-13"),
		WeekLetters:   []string{"A", "B", "C", "D"},
		IsDefault:     true,
	})

	w := suite.get("/cycles/config")
	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(float64(4), resp["weeks_per_cycle"])
	suite.Equal("2025-01-13", resp["week_a_date"])
	suite.Equal(true, resp["is_default"])
}

func (suite *CycleHandlerTestSuite) TestLocate_Success() {
	date := models.MustParseDate("2025-02-10")
	suite.mockService.EXPECT().Locate(gomock.Any(), date).Return(&cycle.Position{
		CycleNumber: 2,
		WeekLetter:  "A",
		WeekStart:   date,
	}, nil)

	w := suite.get("/cycles/locate?date=2025-02-10")
	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(float64(2), resp["cycle_number"])
	suite.Equal("A", resp["week_letter"])
	suite.Equal("2025-02-10", resp["week_start"])
}

func (suite *CycleHandlerTestSuite) TestLocate_InvalidDate() {
	suite.Equal(http.StatusBadRequest, suite.get("/cycles/locate").Code)
	suite.Equal(http.StatusBadRequest, suite.get("/cycles/locate?date=10/02/2025").Code)
}

func (suite *CycleHandlerTestSuite) TestLocate_BeforeEpoch() {
	suite.mockService.EXPECT().Locate(gomock.Any(), models.MustParseDate("2024-12-01")).Return(nil, apperrors.ErrDateBeforeEpoch)

	w := suite.get("/cycles/locate?date=2024-12-01")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *CycleHandlerTestSuite) TestRange_Success() {
	end := models.MustParseDate("2025-11-24")
	suite.mockService.EXPECT().Range(gomock.Any(), 13, end).Return(&cycle.Range{
		StartDate:  models.MustParseDate("2025-01-13"),
		EndDate:    end,
		StartCycle: 1,
		EndCycle:   12,
	}, nil)

	w := suite.get("/cycles/range?n=13&end=2025-11-24")
	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-01-13", resp["start_date"])
	suite.Equal(float64(1), resp["start_cycle"])
	suite.Equal(float64(12), resp["end_cycle"])
}

func (suite *CycleHandlerTestSuite) TestRange_DefaultsEndToZero() {
	suite.mockService.EXPECT().Range(gomock.Any(), 2, models.Date{}).Return(&cycle.Range{StartCycle: 5, EndCycle: 6}, nil)

	w := suite.get("/cycles/range?n=2")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *CycleHandlerTestSuite) TestRange_InvalidParameters() {
	suite.Equal(http.StatusBadRequest, suite.get("/cycles/range").Code)
	suite.Equal(http.StatusBadRequest, suite.get("/cycles/range?n=two").Code)
	suite.Equal(http.StatusBadRequest, suite.get("/cycles/range?n=2&end=nope").Code)
}

func (suite *CycleHandlerTestSuite) TestRange_ZeroCycles() {
	suite.mockService.EXPECT().Range(gomock.Any(), 0, models.Date{}).Return(nil, apperrors.NewValidationError("n", "must be at least 1"))

	w := suite.get("/cycles/range?n=0")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestCycleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CycleHandlerTestSuite))
}
