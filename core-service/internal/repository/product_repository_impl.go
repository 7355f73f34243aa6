package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alimikegami/pettech-microservices/core-service/internal/domain"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type ProductRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{
		db: db,
	}
}

// conn is the transaction when running inside HandleTrx, the pool otherwise.
func (r *ProductRepositoryImpl) conn() sqlx.ExtContext {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *ProductRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	trxRepo := &ProductRepositoryImpl{
		db: r.db,
		tx: tx,
	}

	err = fn(ctx, trxRepo)

	return err
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id string, err error) {
	query, args, err := r.conn().BindNamed("INSERT INTO product (name, description, image_url, price) VALUES (:name, :description, :image_url, :price) RETURNING id", data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	err = sqlx.GetContext(ctx, r.conn(), &id, query, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return id, nil
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error) {
	query := "SELECT id, name, description, image_url, price FROM product ORDER BY name, id"
	args := []interface{}{}

	if filter.Paginated() {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, filter.Limit, filter.Offset())
	}

	data = []domain.Product{}
	err = sqlx.SelectContext(ctx, r.conn(), &data, query, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, err
	}

	if err = r.loadCategories(ctx, data); err != nil {
		return nil, err
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (data domain.Product, err error) {
	err = sqlx.GetContext(ctx, r.conn(), &data, "SELECT id, name, description, image_url, price FROM product WHERE id = $1", id)
	if err != nil {
		// A malformed UUID can never match a row.
		if errors.Is(err, sql.ErrNoRows) || hasPQCode(err, pqInvalidTextRepresentation) {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, err
	}

	products := []domain.Product{data}
	if err = r.loadCategories(ctx, products); err != nil {
		return data, err
	}

	return products[0], nil
}

// loadCategories fills Categories on each product with one query.
func (r *ProductRepositoryImpl) loadCategories(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, 0, len(products))
	index := make(map[string]int, len(products))
	for i := range products {
		products[i].Categories = []domain.Category{}
		ids = append(ids, products[i].ID)
		index[products[i].ID] = i
	}

	query, args, err := sqlx.In(`SELECT pc.product_id, c.id, c.name, c.creation_date
		FROM product_category pc
		JOIN category c ON c.id = pc.category_id
		WHERE pc.product_id IN (?)
		ORDER BY c.id`, ids)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "loadCategories").Msg("")
		return err
	}

	var rows []domain.ProductCategory
	err = sqlx.SelectContext(ctx, r.conn(), &rows, r.conn().Rebind(query), args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "loadCategories").Msg("")
		return err
	}

	for _, row := range rows {
		i := index[row.ProductID]
		products[i].Categories = append(products[i].Categories, row.Category)
	}

	return nil
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	result, err := sqlx.NamedExecContext(ctx, r.conn(), "UPDATE product SET name = :name, description = :description, image_url = :image_url, price = :price WHERE id = :id", data)
	if err != nil {
		if hasPQCode(err, pqInvalidTextRepresentation) {
			return errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return
	}

	if affected == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	result, err := r.conn().ExecContext(ctx, "DELETE FROM product WHERE id = $1", id)
	if err != nil {
		if hasPQCode(err, pqInvalidTextRepresentation) {
			return errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if affected == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) AddCategory(ctx context.Context, name string) (data domain.Category, err error) {
	err = sqlx.GetContext(ctx, r.conn(), &data, "INSERT INTO category (name) VALUES ($1) RETURNING id, name, creation_date", name)
	if err != nil {
		if hasPQCode(err, pqUniqueViolation) {
			return data, errs.ErrDuplicateName
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		return
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetCategoryByID(ctx context.Context, id int64) (data domain.Category, err error) {
	err = sqlx.GetContext(ctx, r.conn(), &data, "SELECT id, name, creation_date FROM category WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		return
	}

	return data, nil
}

// GetOrCreateCategory returns the category called name, creating it first if needed.
func (r *ProductRepositoryImpl) GetOrCreateCategory(ctx context.Context, name string) (data domain.Category, err error) {
	query := `INSERT INTO category (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, creation_date`

	err = sqlx.GetContext(ctx, r.conn(), &data, query, name)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrCreateCategory").Msg("")
		return
	}

	return data, nil
}

func (r *ProductRepositoryImpl) AddProductCategories(ctx context.Context, productID string, categoryIDs []int64) (err error) {
	for _, categoryID := range categoryIDs {
		_, err = r.conn().ExecContext(ctx, "INSERT INTO product_category (product_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING", productID, categoryID)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "AddProductCategories").Msg("")
			return
		}
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProductCategories(ctx context.Context, productID string) (err error) {
	_, err = r.conn().ExecContext(ctx, "DELETE FROM product_category WHERE product_id = $1", productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProductCategories").Msg("")
		return
	}

	return nil
}

func (r *ProductRepositoryImpl) AddStockOutboxEvent(ctx context.Context, data domain.StockOutboxEvent) (err error) {
	_, err = sqlx.NamedExecContext(ctx, r.conn(), "INSERT INTO stock_outbox (id, product_id, payload, status, attempts, created_at, updated_at) VALUES (:id, :product_id, :payload, :status, :attempts, :created_at, :updated_at)", data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddStockOutboxEvent").Msg("")
		return
	}

	return nil
}
