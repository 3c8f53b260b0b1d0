package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

const collectionSettings = "field_visibility"

// settingsDocID pins the snapshot to a single well-known document, giving
// whole-object replaces last-writer-wins semantics on the Mongo side.
const settingsDocID = "current"

// SettingsStore persists the field-visibility snapshot across restarts.
type SettingsStore struct {
	col *mongo.Collection
}

func NewSettingsStore(db *mongo.Database) *SettingsStore {
	return &SettingsStore{col: db.Collection(collectionSettings)}
}

// Get returns the persisted snapshot, falling back to the defaults when the
// document has never been written.
func (s *SettingsStore) Get(ctx context.Context) (domain.FieldVisibility, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc struct {
		Settings domain.FieldVisibility `bson:"settings"`
	}
	err := s.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.DefaultFieldVisibility(), nil
		}
		return domain.FieldVisibility{}, err
	}
	return doc.Settings, nil
}

// Put replaces the snapshot atomically (single-document upsert).
func (s *SettingsStore) Put(ctx context.Context, settings domain.FieldVisibility) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.col.ReplaceOne(ctx,
		bson.M{"_id": settingsDocID},
		bson.M{"_id": settingsDocID, "settings": settings},
		options.Replace().SetUpsert(true),
	)
	return err
}
