package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/maze-editor/identity"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrUsernameTaken  = errors.New("username conflict")
)

// AuthorRepo handles the persistence of authors.
type AuthorRepo struct {
	collection *mongo.Collection
}

// NewAuthorRepo creates a new AuthorRepo with the given MongoDB client, database name, and collection name.
func NewAuthorRepo(client *mongo.Client, dbName, collectionName string) *AuthorRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &AuthorRepo{
		collection: collection,
	}
}

// Save inserts or updates an author in the repository.
func (r *AuthorRepo) Save(author *identity.Author) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": author.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     author.Username,
			"passwordHash": author.PasswordHash,
			"updatedAt":    time.Now(),
		},
		"$setOnInsert": bson.M{
			"createdAt": author.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameTaken
		}
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves an author by their ID.
func (r *AuthorRepo) ByID(id uuid.UUID) (*identity.Author, error) {
	return r.findOne(bson.M{"_id": id})
}

// ByUsername retrieves an author by their username.
func (r *AuthorRepo) ByUsername(username string) (*identity.Author, error) {
	return r.findOne(bson.M{"username": username})
}

func (r *AuthorRepo) findOne(filter bson.M) (*identity.Author, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var author identity.Author
	if err := r.collection.FindOne(ctx, filter).Decode(&author); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAuthorNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &author, nil
}
