package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alimikegami/pettech-microservices/core-service/internal/domain"
	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateUserRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// GetUserByUsername returns a zero User when nobody has that username.
func (r *UserRepositoryImpl) GetUserByUsername(ctx context.Context, username string) (res domain.User, err error) {
	err = r.db.GetContext(ctx, &res, `SELECT id, username, password FROM "user" WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByUsername").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, `INSERT INTO "user" (username, password) VALUES (:username, :password) RETURNING id`)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		if hasPQCode(err, pqUniqueViolation) {
			return 0, errs.ErrUserAlreadyExists
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return id, nil
}

func (r *UserRepositoryImpl) GetUserWithPerson(ctx context.Context, id int64) (data domain.UserWithPerson, err error) {
	query := `SELECT u.id, u.username, p.id AS person_id, p.cpf, p.name, p.birth, p.email
		FROM "user" u
		LEFT JOIN person p ON u.id = p.user_id
		WHERE u.id = $1
		LIMIT 1`

	err = r.db.GetContext(ctx, &data, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserWithPerson").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) AddPerson(ctx context.Context, data domain.Person) (id int64, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO person (cpf, name, birth, email, user_id) VALUES (:cpf, :name, :birth, :email, :user_id) RETURNING id")
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddPerson").Msg("")
		return
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		if hasPQCode(err, pqForeignKeyViolation) {
			return 0, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "AddPerson").Msg("")
		return
	}

	return id, nil
}
