package service

import (
	"context"
	"time"

	"github.com/alimikegami/pettech-microservices/core-service/config"
	"github.com/alimikegami/pettech-microservices/core-service/internal/domain"
	"github.com/alimikegami/pettech-microservices/core-service/internal/dto"
	"github.com/alimikegami/pettech-microservices/core-service/internal/repository"
	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/alimikegami/pettech-microservices/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 8

var birthLayouts = []string{"2006-01-02", time.RFC3339}

type UserServiceImpl struct {
	repo      repository.UserRepository
	jwtConfig config.JWTConfig
}

func CreateUserService(repo repository.UserRepository, jwtConfig config.JWTConfig) UserService {
	return &UserServiceImpl{repo: repo, jwtConfig: jwtConfig}
}

func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.UserRequest) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByUsername(ctx, data.Username)
	if err != nil {
		return
	}

	if user.ID != 0 {
		return resp, errs.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), passwordHashCost)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	id, err := s.repo.AddUser(ctx, domain.User{
		Username: data.Username,
		Password: string(hash),
	})
	if err != nil {
		return
	}

	return dto.UserResponse{ID: id, Username: data.Username}, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.UserRequest) (resp dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByUsername(ctx, payload.Username)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return resp, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentials
	}

	token, err := utils.CreateJWTToken(user.ID, user.Username, s.jwtConfig.Secret, s.jwtConfig.ExpiresIn)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return
	}

	resp.Token = token

	return
}

func (s *UserServiceImpl) GetUserWithPerson(ctx context.Context, id int64) (resp dto.UserWithPersonResponse, err error) {
	data, err := s.repo.GetUserWithPerson(ctx, id)
	if err != nil {
		return
	}

	resp.ID = data.ID
	resp.Username = data.Username

	if data.PersonID != nil {
		person := dto.PersonResponse{ID: *data.PersonID}
		if data.CPF != nil {
			person.CPF = *data.CPF
		}
		if data.Name != nil {
			person.Name = *data.Name
		}
		if data.Birth != nil {
			person.Birth = data.Birth.Format("2006-01-02")
		}
		if data.Email != nil {
			person.Email = *data.Email
		}
		resp.Person = &person
	}

	return
}

func (s *UserServiceImpl) AddPerson(ctx context.Context, data dto.PersonRequest) (err error) {
	birth, err := parseBirth(data.Birth)
	if err != nil {
		return errs.ErrValidation
	}

	_, err = s.repo.AddPerson(ctx, domain.Person{
		CPF:    data.CPF,
		Name:   data.Name,
		Birth:  birth,
		Email:  data.Email,
		UserID: data.UserID,
	})

	return err
}

func parseBirth(value string) (t time.Time, err error) {
	for _, layout := range birthLayouts {
		t, err = time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}

	return t, err
}
