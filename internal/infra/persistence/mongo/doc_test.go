package mongo

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intake-backend/internal/domain/entity"
)

func TestContactDoc_ToEntity(t *testing.T) {
	oid := bson.NewObjectID()
	doc := contactDoc{
		ID:        oid,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Country:   "UK",
		Problems:  "slow batch jobs",
		About:     "search engine",
	}

	want := &entity.Contact{
		ID:        oid.Hex(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Country:   "UK",
		Problems:  "slow batch jobs",
		About:     "search engine",
	}

	if diff := cmp.Diff(want, doc.toEntity()); diff != "" {
		t.Errorf("toEntity() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewsDoc_ToEntity(t *testing.T) {
	oid := bson.NewObjectID()
	date := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	doc := newsDoc{
		ID:       oid,
		Title:    "Launch",
		Content:  "We shipped.",
		Images:   []string{"https://cdn.example.com/news/a.jpg"},
		ImageIDs: []string{"news/a"},
		Date:     date,
	}

	want := &entity.NewsItem{
		ID:       oid.Hex(),
		Title:    "Launch",
		Content:  "We shipped.",
		Images:   []string{"https://cdn.example.com/news/a.jpg"},
		ImageIDs: []string{"news/a"},
		Date:     date,
	}

	if diff := cmp.Diff(want, doc.toEntity()); diff != "" {
		t.Errorf("toEntity() mismatch (-want +got):\n%s", diff)
	}
}
