// Package mongo implements the repository interfaces on top of MongoDB
// collections. Documents are mapped to plain domain entities at the
// boundary; bson concerns never leak above this package.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intake-backend/internal/domain/entity"
	"intake-backend/internal/repository"
)

const contactsCollection = "contacts"

// contactDoc is the stored shape of a contact. Field names mirror the
// JSON payload of the public API.
type contactDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	FirstName string        `bson:"firstName"`
	LastName  string        `bson:"lastName"`
	Email     string        `bson:"email"`
	Country   string        `bson:"country"`
	Problems  string        `bson:"problems"`
	About     string        `bson:"about"`
}

func (d *contactDoc) toEntity() *entity.Contact {
	return &entity.Contact{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Country:   d.Country,
		Problems:  d.Problems,
		About:     d.About,
	}
}

type ContactRepo struct {
	coll *mongo.Collection
}

func NewContactRepo(db *mongo.Database) repository.ContactRepository {
	return &ContactRepo{coll: db.Collection(contactsCollection)}
}

func (repo *ContactRepo) Create(ctx context.Context, c *entity.Contact) error {
	doc := contactDoc{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Country:   c.Country,
		Problems:  c.Problems,
		About:     c.About,
	}
	res, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return fmt.Errorf("Create: unexpected inserted ID type %T", res.InsertedID)
	}
	c.ID = oid.Hex()
	return nil
}

func (repo *ContactRepo) Update(ctx context.Context, id string, upd repository.ContactUpdate) (*entity.Contact, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("Update: invalid id %q: %w", id, err)
	}

	set := bson.M{}
	if upd.FirstName != nil {
		set["firstName"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["lastName"] = *upd.LastName
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Country != nil {
		set["country"] = *upd.Country
	}
	if upd.Problems != nil {
		set["problems"] = *upd.Problems
	}
	if upd.About != nil {
		set["about"] = *upd.About
	}

	if len(set) == 0 {
		// Nothing submitted; return the current record unchanged.
		var doc contactDoc
		err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("Update: FindOne: %w", err)
		}
		return doc.toEntity(), nil
	}

	var doc contactDoc
	err = repo.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return doc.toEntity(), nil
}

func (repo *ContactRepo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("Delete: invalid id %q: %w", id, err)
	}
	// DeletedCount is deliberately ignored: delete-by-id is idempotent
	// from the caller's perspective.
	if _, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *ContactRepo) List(ctx context.Context) ([]*entity.Contact, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	contacts := make([]*entity.Contact, 0, 50)
	for cursor.Next(ctx) {
		var doc contactDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("List: Decode: %w", err)
		}
		contacts = append(contacts, doc.toEntity())
	}
	return contacts, cursor.Err()
}

func (repo *ContactRepo) Count(ctx context.Context) (int64, error) {
	n, err := repo.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
