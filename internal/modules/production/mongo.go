package production

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/database"
)

type mongoRepo struct{ coll *mongo.Collection }

// NewMongoRepository stores productions in the "productions" collection with
// a unique title index.
func NewMongoRepository(ctx context.Context, db *mongo.Database) (Repository, error) {
	coll := db.Collection("productions")
	if err := database.EnsureUniqueIndex(ctx, coll, "title"); err != nil {
		return nil, err
	}
	return &mongoRepo{coll: coll}, nil
}

func (r *mongoRepo) Create(ctx context.Context, p *Production) error {
	doc := *p
	if doc.ListOfProductions == nil {
		doc.ListOfProductions = []string{}
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return database.MongoError("insert production", err)
}

func (r *mongoRepo) GetByTitle(ctx context.Context, title string) (*Production, error) {
	var p Production
	if err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&p); err != nil {
		return nil, database.MongoError("find production", err)
	}
	return &p, nil
}

func (r *mongoRepo) List(ctx context.Context) ([]*Production, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, database.MongoError("list productions", err)
	}
	var out []*Production
	if err := cur.All(ctx, &out); err != nil {
		return nil, database.MongoError("decode productions", err)
	}
	return out, nil
}

func (r *mongoRepo) Update(ctx context.Context, p *Production) error {
	res, err := r.coll.UpdateByID(ctx, p.ID, bson.M{"$set": bson.M{
		"title":       p.Title,
		"subtitle":    p.Subtitle,
		"responsible": p.Responsible,
		"situation":   p.Situation,
		"updatedAt":   p.UpdatedAt,
	}})
	if err != nil {
		return database.MongoError("update production", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *mongoRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return database.MongoError("delete production", err)
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
