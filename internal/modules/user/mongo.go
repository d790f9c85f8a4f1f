package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/database"
)

type userDocument struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	FirstName    string    `bson:"firstName"`
	LastName     string    `bson:"lastName"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository stores users in the "users" collection with a unique email index.
func NewMongoRepository(ctx context.Context, db *mongo.Database) (Repository, error) {
	coll := db.Collection("users")
	if err := database.EnsureUniqueIndex(ctx, coll, "email"); err != nil {
		return nil, err
	}
	return &mongoRepository{coll: coll}, nil
}

func (r *mongoRepository) CreateUser(ctx context.Context, user *User) error {
	_, err := r.coll.InsertOne(ctx, userDocument{
		ID:           user.ID.String(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
	return database.MongoError("insert user", err)
}

func (r *mongoRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, database.MongoError("find user", err)
	}
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	return &User{
		ID:           id,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}
