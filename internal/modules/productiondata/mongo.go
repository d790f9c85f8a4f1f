package productiondata

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/database"
)

// recordDocument keeps Data as a native sub-document instead of a JSON string.
type recordDocument struct {
	ID        string    `bson:"_id"`
	Data      bson.D    `bson:"data"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type mongoRepo struct{ coll *mongo.Collection }

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepo{coll: db.Collection("productiondatas")}
}

func (r *mongoRepo) Create(ctx context.Context, rec *Record) error {
	var data bson.D
	if err := bson.UnmarshalExtJSON(rec.Data, false, &data); err != nil {
		return err
	}
	_, err := r.coll.InsertOne(ctx, recordDocument{
		ID:        rec.ID,
		Data:      data,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	})
	return database.MongoError("insert production data", err)
}

func (r *mongoRepo) GetByID(ctx context.Context, id string) (*Record, error) {
	var doc recordDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, database.MongoError("find production data", err)
	}
	return fromDocument(doc)
}

func (r *mongoRepo) List(ctx context.Context) ([]*Record, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, database.MongoError("list production data", err)
	}
	var docs []recordDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, database.MongoError("decode production data", err)
	}
	recs := make([]*Record, 0, len(docs))
	for _, doc := range docs {
		rec, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *mongoRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return database.MongoError("delete production data", err)
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func fromDocument(doc recordDocument) (*Record, error) {
	if doc.Data == nil {
		doc.Data = bson.D{}
	}
	data, err := bson.MarshalExtJSON(doc.Data, false, false)
	if err != nil {
		return nil, err
	}
	return &Record{ID: doc.ID, Data: data, CreatedAt: doc.CreatedAt, UpdatedAt: doc.UpdatedAt}, nil
}
