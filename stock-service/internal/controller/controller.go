package controller

import (
	"github.com/alimikegami/pettech-microservices/stock-service/internal/dto"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/service"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/alimikegami/pettech-microservices/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.StockService
}

// CreateStockController registers the stock routes. Create is always behind
// isLoggedIn; update and delete only when guardMutations is set.
func CreateStockController(e *echo.Group, service service.StockService, isLoggedIn echo.MiddlewareFunc, guardMutations bool) {
	c := Controller{
		service: service,
	}

	var mutationGuards []echo.MiddlewareFunc
	if guardMutations {
		mutationGuards = append(mutationGuards, isLoggedIn)
	}

	e.GET("/stock", c.GetStocks)
	e.GET("/stock/:productId", c.GetStockByKey)
	e.POST("/stock", c.AddStock, isLoggedIn)
	e.PUT("/stock/:productId", c.UpdateStock, mutationGuards...)
	e.DELETE("/stock/:productId", c.DeleteStock, mutationGuards...)
}

func (c *Controller) GetStocks(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetStocks").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&filter); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.GetStocks(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *Controller) GetStockByKey(e echo.Context) error {
	resp, err := c.service.GetStockByKey(e.Request().Context(), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *Controller) AddStock(e echo.Context) error {
	payload := dto.StockRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddStock").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	if err := c.service.AddStock(e.Request().Context(), payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, nil)
}

func (c *Controller) UpdateStock(e echo.Context) error {
	payload := dto.StockQuantityRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateStock").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	if err := c.service.UpdateStock(e.Request().Context(), e.Param("productId"), payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, nil)
}

func (c *Controller) DeleteStock(e echo.Context) error {
	if err := c.service.DeleteStock(e.Request().Context(), e.Param("productId")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, nil)
}
