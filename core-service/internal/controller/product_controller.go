package controller

import (
	"github.com/alimikegami/pettech-microservices/core-service/internal/dto"
	"github.com/alimikegami/pettech-microservices/core-service/internal/service"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/alimikegami/pettech-microservices/pkg/response"
	"github.com/alimikegami/pettech-microservices/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	pc := ProductController{
		service: service,
	}
	e.POST("/product", pc.AddProduct)
	e.GET("/product", pc.GetProducts)
	e.GET("/product/:id", pc.GetProductByID)
	e.PUT("/product/:id", pc.UpdateProduct)
	e.DELETE("/product/:id", pc.DeleteProduct)
	e.POST("/category", pc.AddCategory)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	// Forwarded as is to the stock service, which does the verification.
	token := utils.ExtractBearerToken(e.Request().Header.Get(echo.HeaderAuthorization))

	resp, err := c.service.AddProduct(e.Request().Context(), payload, token)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, resp)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&filter); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	resp, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.UpdateProduct(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	if err := c.service.DeleteProduct(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, nil)
}

func (c *ProductController) AddCategory(e echo.Context) error {
	payload := dto.CreateCategoryRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, resp)
}
