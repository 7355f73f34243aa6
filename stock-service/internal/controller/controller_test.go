package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/alimikegami/pettech-microservices/pkg/utils"
	"github.com/alimikegami/pettech-microservices/pkg/validator"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/domain"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/dto"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/middleware"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/service/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

type StockControllerTestSuite struct {
	suite.Suite
	service *mocks.StockService
	token   string
}

func (s *StockControllerTestSuite) SetupTest() {
	s.service = mocks.NewStockService(s.T())

	token, err := utils.CreateJWTToken(1, "alice", testSecret, time.Minute)
	s.Require().NoError(err)
	s.token = token
}

func (s *StockControllerTestSuite) newServer(guardMutations bool) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	CreateStockController(e.Group(""), s.service, middleware.IsLoggedIn(testSecret), guardMutations)
	return e
}

func (s *StockControllerTestSuite) do(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func (s *StockControllerTestSuite) Test_AddStock() {
	type TestCase struct {
		Name           string
		Body           string
		Token          string
		Setup          func()
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name:  "Authenticated request",
			Body:  `{"name":"Ração","quantity":0,"relationId":"p-1"}`,
			Token: s.token,
			Setup: func() {
				s.service.On("AddStock", mock.Anything, mock.MatchedBy(func(r dto.StockRequest) bool {
					return r.Name == "Ração" && *r.Quantity == 0 && r.RelationID == "p-1"
				})).Return(nil).Once()
			},
			ExpectedStatus: http.StatusCreated,
		},
		{
			Name:           "No token",
			Body:           `{"name":"Ração","quantity":0,"relationId":"p-1"}`,
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "Forged token",
			Body:           `{"name":"Ração","quantity":0,"relationId":"p-1"}`,
			Token:          "abc.def.ghi",
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "Negative quantity",
			Body:           `{"name":"Ração","quantity":-2,"relationId":"p-1"}`,
			Token:          s.token,
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "Missing relationId",
			Body:           `{"name":"Ração","quantity":1}`,
			Token:          s.token,
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	e := s.newServer(false)

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			if tc.Setup != nil {
				tc.Setup()
			}

			rec := s.do(e, http.MethodPost, "/stock", tc.Body, tc.Token)

			s.Equal(tc.ExpectedStatus, rec.Code)
		})
	}

	s.service.AssertNumberOfCalls(s.T(), "AddStock", 1)
}

func (s *StockControllerTestSuite) Test_GetStocks_Pagination() {
	stocks := []domain.Stock{{ID: primitive.NewObjectID(), Name: "C", Quantity: 1, RelationID: "p-3"}}
	s.service.On("GetStocks", mock.Anything, pkgdto.Filter{Limit: 2, Page: 2}).Return(stocks, nil).Once()

	rec := s.do(s.newServer(false), http.MethodGet, "/stock?limit=2&page=2", "", "")

	s.Equal(http.StatusOK, rec.Code)

	var resp []domain.Stock
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(stocks, resp)
}

func (s *StockControllerTestSuite) Test_GetStocks_InvalidFilter() {
	rec := s.do(s.newServer(false), http.MethodGet, "/stock?limit=-1", "", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *StockControllerTestSuite) Test_GetStockByKey_NotFound() {
	s.service.On("GetStockByKey", mock.Anything, "p-9").Return(domain.Stock{}, errs.ErrNotFound).Once()

	rec := s.do(s.newServer(false), http.MethodGet, "/stock/p-9", "", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *StockControllerTestSuite) Test_UpdateStock() {
	s.service.On("UpdateStock", mock.Anything, "p-1", mock.MatchedBy(func(r dto.StockQuantityRequest) bool {
		return *r.Stock == 12
	})).Return(nil).Once()

	e := s.newServer(false)

	rec := s.do(e, http.MethodPut, "/stock/p-1", `{"stock":12}`, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())

	rec = s.do(e, http.MethodPut, "/stock/p-1", `{"stock":-1}`, "")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(e, http.MethodPut, "/stock/p-1", `{}`, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *StockControllerTestSuite) Test_GuardedMutations() {
	e := s.newServer(true)

	rec := s.do(e, http.MethodPut, "/stock/p-1", `{"stock":12}`, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(e, http.MethodDelete, "/stock/p-1", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	s.service.On("DeleteStock", mock.Anything, "p-1").Return(nil).Once()
	rec = s.do(e, http.MethodDelete, "/stock/p-1", "", s.token)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *StockControllerTestSuite) Test_DeleteStock_NotFound() {
	s.service.On("DeleteStock", mock.Anything, "missing").Return(errs.ErrNotFound).Once()

	rec := s.do(s.newServer(false), http.MethodDelete, "/stock/missing", "", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func TestStockControllerTestSuite(t *testing.T) {
	suite.Run(t, new(StockControllerTestSuite))
}
