package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"member-history-backend/internal/api/handlers"
	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/mocks"
	"member-history-backend/internal/models"
	"member-history-backend/internal/service"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSessionServiceInterface
	router      *gin.Engine
}

func (suite *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSessionServiceInterface(suite.ctrl)

	handler := handlers.NewSessionHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.POST("/sessions", handler.CreateSession)
	suite.router.GET("/sessions/:session", handler.GetSession)
	suite.router.DELETE("/sessions/:session", handler.DeleteSession)
	suite.router.POST("/sessions/:session/search", handler.Search)
	suite.router.POST("/sessions/:session/select", handler.SelectMember)
}

func (suite *SessionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SessionHandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SessionHandlerTestSuite) TestCreateSession() {
	suite.mockService.EXPECT().Create().Return(&service.ViewState{SessionID: "abc", SearchResults: []models.Member{}})

	w := suite.do(http.MethodPost, "/sessions", nil)
	suite.Equal(http.StatusCreated, w.Code)

	var resp service.ViewState
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("abc", resp.SessionID)
}

func (suite *SessionHandlerTestSuite) TestGetSession_NotFound() {
	suite.mockService.EXPECT().Get("missing").Return(nil, apperrors.ErrSessionNotFound)

	w := suite.do(http.MethodGet, "/sessions/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SessionHandlerTestSuite) TestSearch() {
	suite.mockService.EXPECT().Search(gomock.Any(), "s1", "dupont").Return(&service.ViewState{
		SessionID:     "s1",
		Query:         "dupont",
		SearchResults: []models.Member{{ID: 7, Name: "Jean Dupont"}},
	}, nil)

	w := suite.do(http.MethodPost, "/sessions/s1/search", handlers.SearchRequest{Name: "dupont"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Jean Dupont")
}

func (suite *SessionHandlerTestSuite) TestSearch_MissingName() {
	w := suite.do(http.MethodPost, "/sessions/s1/search", map[string]string{})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *SessionHandlerTestSuite) TestSelectMember_Success() {
	suite.mockService.EXPECT().Select(gomock.Any(), "s1", 42).Return(&service.ViewState{
		SessionID:        "s1",
		SelectedMemberID: 42,
		Timeline:         &service.TimelineResponse{MemberID: 42},
	}, nil)

	w := suite.do(http.MethodPost, "/sessions/s1/select", handlers.SelectMemberRequest{MemberID: 42})
	suite.Equal(http.StatusOK, w.Code)

	var resp service.ViewState
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(42, resp.SelectedMemberID)
	suite.Require().NotNil(resp.Timeline)
	suite.Equal(42, resp.Timeline.MemberID)
}

func (suite *SessionHandlerTestSuite) TestSelectMember_InvalidBody() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/sessions/s1/select", map[string]int{}).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/sessions/s1/select", map[string]int{"member_id": -1}).Code)
}

func (suite *SessionHandlerTestSuite) TestSelectMember_Superseded() {
	suite.mockService.EXPECT().Select(gomock.Any(), "s1", 1).Return(nil, apperrors.ErrSelectionSuperseded)

	w := suite.do(http.MethodPost, "/sessions/s1/select", handlers.SelectMemberRequest{MemberID: 1})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *SessionHandlerTestSuite) TestSelectMember_UpstreamFailure() {
	suite.mockService.EXPECT().Select(gomock.Any(), "s1", 3).Return(
		&service.ViewState{SessionID: "s1", Error: "member history unavailable"},
		apperrors.NewFetchError("member history", 503, errors.New("unavailable")))

	w := suite.do(http.MethodPost, "/sessions/s1/select", handlers.SelectMemberRequest{MemberID: 3})
	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *SessionHandlerTestSuite) TestDeleteSession() {
	suite.mockService.EXPECT().Forget("s1")

	w := suite.do(http.MethodDelete, "/sessions/s1", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func TestSessionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}
