package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intake-backend/internal/domain/entity"
	"intake-backend/internal/repository"
)

const newsCollection = "news"

// newsDoc is the stored shape of a news item. The images array holds
// blob-store URLs in display order; imageIds is index-aligned with it.
type newsDoc struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Title    string        `bson:"title"`
	Content  string        `bson:"content"`
	Images   []string      `bson:"images"`
	ImageIDs []string      `bson:"imageIds"`
	Date     time.Time     `bson:"date"`
}

func (d *newsDoc) toEntity() *entity.NewsItem {
	return &entity.NewsItem{
		ID:       d.ID.Hex(),
		Title:    d.Title,
		Content:  d.Content,
		Images:   d.Images,
		ImageIDs: d.ImageIDs,
		Date:     d.Date,
	}
}

type NewsRepo struct {
	coll *mongo.Collection
}

func NewNewsRepo(db *mongo.Database) repository.NewsRepository {
	return &NewsRepo{coll: db.Collection(newsCollection)}
}

func (repo *NewsRepo) Create(ctx context.Context, n *entity.NewsItem) error {
	doc := newsDoc{
		Title:    n.Title,
		Content:  n.Content,
		Images:   n.Images,
		ImageIDs: n.ImageIDs,
		Date:     n.Date,
	}
	if doc.Images == nil {
		doc.Images = []string{}
	}
	if doc.ImageIDs == nil {
		doc.ImageIDs = []string{}
	}
	res, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return fmt.Errorf("Create: unexpected inserted ID type %T", res.InsertedID)
	}
	n.ID = oid.Hex()
	return nil
}

func (repo *NewsRepo) Get(ctx context.Context, id string) (*entity.NewsItem, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("Get: invalid id %q: %w", id, err)
	}
	var doc newsDoc
	err = repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return doc.toEntity(), nil
}

func (repo *NewsRepo) Update(ctx context.Context, id string, upd repository.NewsUpdate) (*entity.NewsItem, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("Update: invalid id %q: %w", id, err)
	}

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(upd.AddImages) > 0 {
		// $push with $each appends at the end of the stored sequence.
		// Existing elements keep their order: additive merge, not overwrite.
		update["$push"] = bson.M{
			"images":   bson.M{"$each": upd.AddImages},
			"imageIds": bson.M{"$each": upd.AddImageIDs},
		}
	}

	if len(update) == 0 {
		var doc newsDoc
		err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("Update: FindOne: %w", err)
		}
		return doc.toEntity(), nil
	}

	var doc newsDoc
	err = repo.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		update,
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

func (repo *NewsRepo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("Delete: invalid id %q: %w", id, err)
	}
	if _, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *NewsRepo) List(ctx context.Context) ([]*entity.NewsItem, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	items := make([]*entity.NewsItem, 0, 50)
	for cursor.Next(ctx) {
		var doc newsDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("List: Decode: %w", err)
		}
		items = append(items, doc.toEntity())
	}
	return items, cursor.Err()
}

func (repo *NewsRepo) Count(ctx context.Context) (int64, error) {
	n, err := repo.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
