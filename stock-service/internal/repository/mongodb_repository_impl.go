package repository

import (
	"context"
	"errors"

	"github.com/alimikegami/pettech-microservices/stock-service/internal/domain"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const stockCollection = "stock"

type MongoDBStockRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) MongoDBStockRepository {
	return &MongoDBStockRepositoryImpl{db: db}
}

// EnsureIndexes creates the relationId lookup index. It is not unique:
// relationId carries no uniqueness guarantee.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(stockCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "relationId", Value: 1}},
	})

	return err
}

func keyFilter(key string) bson.D {
	if id, err := primitive.ObjectIDFromHex(key); err == nil {
		return bson.D{{Key: "_id", Value: id}}
	}

	return bson.D{{Key: "relationId", Value: key}}
}

func (r *MongoDBStockRepositoryImpl) AddStock(ctx context.Context, data domain.Stock) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(stockCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddStock").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBStockRepositoryImpl) GetStocks(ctx context.Context, param pkgdto.Filter) (data []domain.Stock, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	if param.Paginated() {
		opts.SetSkip(int64(param.Offset())).SetLimit(int64(param.Limit))
	}

	cursor, err := r.db.Collection(stockCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStocks").Msg("")
		return
	}

	data = []domain.Stock{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStocks").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *MongoDBStockRepositoryImpl) GetStockByKey(ctx context.Context, key string) (data domain.Stock, err error) {
	err = r.db.Collection(stockCollection).FindOne(ctx, keyFilter(key)).Decode(&data)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStockByKey").Msg("")
		return
	}

	return data, nil
}

// SetStockQuantity overwrites quantity and returns the updated record, or
// errs.ErrNotFound when nothing matched.
func (r *MongoDBStockRepositoryImpl) SetStockQuantity(ctx context.Context, key string, quantity int64) (data domain.Stock, err error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "quantity", Value: quantity}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection(stockCollection).FindOneAndUpdate(ctx, keyFilter(key), update, opts).Decode(&data)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "SetStockQuantity").Msg("")
		return
	}

	return data, nil
}

// DeleteStock removes one record and returns it, or errs.ErrNotFound when nothing matched.
func (r *MongoDBStockRepositoryImpl) DeleteStock(ctx context.Context, key string) (data domain.Stock, err error) {
	err = r.db.Collection(stockCollection).FindOneAndDelete(ctx, keyFilter(key)).Decode(&data)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteStock").Msg("")
		return
	}

	return data, nil
}
