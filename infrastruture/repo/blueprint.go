package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-editor/domain"
	"github.com/beka-birhanu/maze-editor/maze"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	blueprintQueryTimeout = 2 * time.Second
)

// blueprintDocument is the BSON shape of a blueprint.
// Width and height duplicate the encoded maze header so they can be queried.
type blueprintDocument struct {
	ID        uuid.UUID `bson:"_id"`
	OwnerID   uuid.UUID `bson:"ownerId"`
	Name      string    `bson:"name"`
	Version   int64     `bson:"version"`
	Width     int       `bson:"width"`
	Height    int       `bson:"height"`
	Walls     []byte    `bson:"walls"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func newBlueprintDocument(b *domain.Blueprint) (*blueprintDocument, error) {
	walls, err := b.Maze.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return &blueprintDocument{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Name:      b.Name,
		Version:   b.Version,
		Width:     b.Maze.Width(),
		Height:    b.Maze.Height(),
		Walls:     walls,
		UpdatedAt: b.UpdatedAt,
	}, nil
}

func (d *blueprintDocument) blueprint() (*domain.Blueprint, error) {
	m, err := maze.Decode(d.Walls)
	if err != nil {
		return nil, fmt.Errorf("decoding blueprint %s: %w", d.ID, err)
	}

	return &domain.Blueprint{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		Version:   d.Version,
		Maze:      m,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// BlueprintRepo handles the persistence of blueprints.
type BlueprintRepo struct {
	collection *mongo.Collection
}

// NewBlueprintRepo creates a new BlueprintRepo with the given MongoDB client, database name, and collection name.
func NewBlueprintRepo(client *mongo.Client, dbName, collectionName string) *BlueprintRepo {
	return &BlueprintRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save inserts the first version of a blueprint and otherwise replaces the
// version right before b. A missing or newer stored version fails with
// domain.ErrEditConflict.
func (r *BlueprintRepo) Save(ctx context.Context, b *domain.Blueprint) error {
	ctx, cancel := context.WithTimeout(ctx, blueprintQueryTimeout)
	defer cancel()

	doc, err := newBlueprintDocument(b)
	if err != nil {
		return err
	}

	if b.Version <= 1 {
		if _, err := r.collection.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return fmt.Errorf("%w: blueprint %s already exists", domain.ErrEditConflict, b.ID)
			}
			return errors.New("unexpected error: " + err.Error())
		}
		return nil
	}

	result, err := r.collection.ReplaceOne(ctx, previousVersion(b), doc)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: blueprint %s is no longer at version %d", domain.ErrEditConflict, b.ID, b.Version-1)
	}
	return nil
}

// previousVersion matches the stored document b was derived from.
func previousVersion(b *domain.Blueprint) bson.M {
	return bson.M{"_id": b.ID, "version": b.Version - 1}
}

// ByID retrieves a blueprint by its ID.
func (r *BlueprintRepo) ByID(ctx context.Context, id uuid.UUID) (*domain.Blueprint, error) {
	ctx, cancel := context.WithTimeout(ctx, blueprintQueryTimeout)
	defer cancel()

	var doc blueprintDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlueprintNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return doc.blueprint()
}

// ByOwner lists an author's blueprints, most recently updated first.
func (r *BlueprintRepo) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Blueprint, error) {
	ctx, cancel := context.WithTimeout(ctx, blueprintQueryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	var docs []blueprintDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	blueprints := make([]*domain.Blueprint, 0, len(docs))
	for _, doc := range docs {
		b, err := doc.blueprint()
		if err != nil {
			return nil, err
		}
		blueprints = append(blueprints, b)
	}
	return blueprints, nil
}

// Delete removes a blueprint by its ID.
func (r *BlueprintRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, blueprintQueryTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	if result.DeletedCount == 0 {
		return domain.ErrBlueprintNotFound
	}
	return nil
}
