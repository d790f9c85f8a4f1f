package action

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/database"
)

var byCreation = options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

type mongoAnnouncementRepo struct{ coll *mongo.Collection }

// NewMongoAnnouncementRepository stores announcements in the "actions"
// collection and makes sure its title index is unique.
func NewMongoAnnouncementRepository(ctx context.Context, db *mongo.Database) (AnnouncementRepository, error) {
	coll := db.Collection("actions")
	if err := database.EnsureUniqueIndex(ctx, coll, "title"); err != nil {
		return nil, err
	}
	return &mongoAnnouncementRepo{coll: coll}, nil
}

func (r *mongoAnnouncementRepo) Create(ctx context.Context, a *Announcement) error {
	_, err := r.coll.InsertOne(ctx, a)
	return database.MongoError("insert announcement", err)
}

func (r *mongoAnnouncementRepo) GetByTitle(ctx context.Context, title string) (*Announcement, error) {
	var a Announcement
	if err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&a); err != nil {
		return nil, database.MongoError("find announcement", err)
	}
	return &a, nil
}

func (r *mongoAnnouncementRepo) List(ctx context.Context) ([]*Announcement, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, byCreation)
	if err != nil {
		return nil, database.MongoError("list announcements", err)
	}
	var out []*Announcement
	if err := cur.All(ctx, &out); err != nil {
		return nil, database.MongoError("decode announcements", err)
	}
	return out, nil
}

func (r *mongoAnnouncementRepo) Update(ctx context.Context, a *Announcement) error {
	return replaced(r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, a))
}

func (r *mongoAnnouncementRepo) Delete(ctx context.Context, id string) error {
	return deleted(r.coll.DeleteOne(ctx, bson.M{"_id": id}))
}

type mongoArticleRepo struct{ coll *mongo.Collection }

// NewMongoArticleRepository stores articles in the "articles" collection.
func NewMongoArticleRepository(db *mongo.Database) ArticleRepository {
	return &mongoArticleRepo{coll: db.Collection("articles")}
}

func (r *mongoArticleRepo) Create(ctx context.Context, a *Article) error {
	_, err := r.coll.InsertOne(ctx, a)
	return database.MongoError("insert article", err)
}

func (r *mongoArticleRepo) GetByID(ctx context.Context, id string) (*Article, error) {
	var a Article
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, database.MongoError("find article", err)
	}
	return &a, nil
}

func (r *mongoArticleRepo) List(ctx context.Context) ([]*Article, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, byCreation)
	if err != nil {
		return nil, database.MongoError("list articles", err)
	}
	var out []*Article
	if err := cur.All(ctx, &out); err != nil {
		return nil, database.MongoError("decode articles", err)
	}
	return out, nil
}

func (r *mongoArticleRepo) Update(ctx context.Context, a *Article) error {
	return replaced(r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, a))
}

func (r *mongoArticleRepo) Delete(ctx context.Context, id string) error {
	return deleted(r.coll.DeleteOne(ctx, bson.M{"_id": id}))
}

func replaced(res *mongo.UpdateResult, err error) error {
	if err != nil {
		return database.MongoError("replace action", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func deleted(res *mongo.DeleteResult, err error) error {
	if err != nil {
		return database.MongoError("delete action", err)
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
