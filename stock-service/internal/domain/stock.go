package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Stock struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Quantity   int64              `bson:"quantity" json:"quantity"`
	RelationID string             `bson:"relationId" json:"relationId"`
}
