package imports

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/joefazee/wagerlog/app/api"
	"github.com/joefazee/wagerlog/models"
)

type HandlerTestSuite struct {
	suite.Suite
	service *MockService
	router  *gin.Engine
	userID  uuid.UUID
}

func (s *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *HandlerTestSuite) SetupTest() {
	s.service = new(MockService)
	s.userID = uuid.New()
	s.router = s.newRouter(1024, true)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) newRouter(maxBytes int64, authenticated bool) *gin.Engine {
	handler := NewHandler(s.service, maxBytes)

	r := gin.New()
	if authenticated {
		r.Use(func(c *gin.Context) {
			c.Set(api.UserIDContextKey, s.userID)
			c.Next()
		})
	}
	r.POST("/imports/csv", handler.ImportCSV)
	return r
}

func (s *HandlerTestSuite) upload(router *gin.Engine, query, filename, content string, fields map[string]string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		s.Require().NoError(err)
		_, err = part.Write([]byte(content))
		s.Require().NoError(err)
	}
	for k, v := range fields {
		s.Require().NoError(writer.WriteField(k, v))
	}
	s.Require().NoError(writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/imports/csv"+query, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder) api.Response {
	var resp api.Response
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *HandlerTestSuite) TestPreview() {
	s.service.On("Preview", mock.Anything, s.userID, "dk", mock.Anything).
		Return(&ImportResponse{Provider: "dk", ValidRows: []PreviewRow{{}}, InvalidRows: []RejectedRow{}}, nil)

	w := s.upload(s.router, "", "export.csv", scenarioCSV, map[string]string{"provider": "dk"})

	s.Equal(http.StatusOK, w.Code)
	resp := s.decode(w)
	s.True(resp.Success)
	s.Equal("Preview: 1 valid, 0 invalid rows", resp.Message)
	s.service.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCommitFromQuery() {
	s.service.On("Commit", mock.Anything, s.userID, "", mock.Anything).
		Return(&ImportResponse{Provider: "auto", Committed: true, Imported: 3}, nil)

	w := s.upload(s.router, "?commit=true", "EXPORT.CSV", scenarioCSV, nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Imported 3 bets successfully", s.decode(w).Message)
}

func (s *HandlerTestSuite) TestMissingFile() {
	w := s.upload(s.router, "", "", "", map[string]string{"provider": "dk"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(s.decode(w).Success)
}

func (s *HandlerTestSuite) TestRejectsNonCSV() {
	w := s.upload(s.router, "", "export.xlsx", scenarioCSV, nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.service.AssertNotCalled(s.T(), "Preview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestRejectsOversizedFile() {
	router := s.newRouter(8, true)

	w := s.upload(router, "", "export.csv", scenarioCSV, nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.service.AssertNotCalled(s.T(), "Preview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestInvalidCommitFlag() {
	w := s.upload(s.router, "?commit=maybe", "export.csv", scenarioCSV, nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestUnknownProvider() {
	s.service.On("Preview", mock.Anything, s.userID, "caesars", mock.Anything).
		Return(nil, models.ErrUnknownImportProvider)

	w := s.upload(s.router, "", "export.csv", scenarioCSV, map[string]string{"provider": "caesars"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("VALIDATION_ERROR", s.decode(w).Error.Code)
}

func (s *HandlerTestSuite) TestCommitWithoutSettings() {
	s.service.On("Commit", mock.Anything, s.userID, "", mock.Anything).
		Return(nil, models.ErrBaseUnitNotConfigured)

	w := s.upload(s.router, "", "export.csv", scenarioCSV, map[string]string{"commit": "true"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("PRECONDITION_FAILED", s.decode(w).Error.Code)
}

func (s *HandlerTestSuite) TestServiceFailure() {
	s.service.On("Commit", mock.Anything, s.userID, "", mock.Anything).
		Return(nil, errors.New("db down"))

	w := s.upload(s.router, "?commit=1", "export.csv", scenarioCSV, nil)

	s.Equal(http.StatusInternalServerError, w.Code)
}

func (s *HandlerTestSuite) TestUnauthorized() {
	router := s.newRouter(0, false)

	w := s.upload(router, "", "export.csv", scenarioCSV, nil)

	s.Equal(http.StatusUnauthorized, w.Code)
}
