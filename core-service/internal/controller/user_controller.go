package controller

import (
	"strconv"

	"github.com/alimikegami/pettech-microservices/core-service/internal/dto"
	"github.com/alimikegami/pettech-microservices/core-service/internal/service"
	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/alimikegami/pettech-microservices/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService) {
	uc := UserController{
		service: service,
	}
	e.POST("/user", uc.AddUser)
	e.POST("/user/signin", uc.Login)
	e.GET("/user/:id", uc.GetUserWithPerson)
	e.POST("/person", uc.AddPerson)
}

func (c *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddUser").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.AddUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.UserRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *UserController) GetUserWithPerson(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetUserWithPerson(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *UserController) AddPerson(e echo.Context) error {
	payload := dto.PersonRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddPerson").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	if err := c.service.AddPerson(e.Request().Context(), payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, nil)
}
