package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/koleso24/cabinet-api/internal/api/metrics"
	"github.com/koleso24/cabinet-api/internal/core/domain"
)

const (
	collectionClients   = "clients"
	collectionArchive   = "archive"
	collectionTemplates = "templates"
)

// queryTimeout bounds every single backend operation.
const queryTimeout = 10 * time.Second

// ClientRepository is the hosted relational-style backend: one document per
// client / archived order, snake_case columns.
type ClientRepository struct {
	clients   *mongo.Collection
	archive   *mongo.Collection
	templates *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		clients:   db.Collection(collectionClients),
		archive:   db.Collection(collectionArchive),
		templates: db.Collection(collectionTemplates),
	}
}

func (r *ClientRepository) FindByChatID(ctx context.Context, chatID string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	defer observe("clients")()

	var c domain.Client
	err := r.clients.FindOne(ctx, bson.M{"chat_id": chatID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	defer observe("clients")()

	cur, err := r.clients.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []domain.Client
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientRepository) HistoryByChatID(ctx context.Context, chatID string) ([]domain.ArchiveOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	defer observe("archive")()

	cur, err := r.archive.Find(ctx, bson.M{"chat_id": chatID})
	if err != nil {
		return nil, err
	}
	var out []domain.ArchiveOrder
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientRepository) ListHistory(ctx context.Context) ([]domain.ArchiveOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	defer observe("archive")()

	cur, err := r.archive.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []domain.ArchiveOrder
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientRepository) ListTemplates(ctx context.Context) ([]domain.MessageTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	defer observe("templates")()

	cur, err := r.templates.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []domain.MessageTemplate
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddClient registers a bare signup row. New clients arrive with placeholder
// name and status, matching what the admin sees in the source spreadsheet.
func (r *ClientRepository) AddClient(ctx context.Context, chatID, phone string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.clients.FindOne(ctx, bson.M{"chat_id": chatID}).Err()
	if err == nil {
		return domain.ErrClientExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	_, err = r.clients.InsertOne(ctx, bson.M{
		"chat_id":        chatID,
		"phone":          phone,
		"name":           "Новый клиент",
		"status":         "Ожидает обработки",
		"traffic_source": "Новая заявка",
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrClientExists
		}
		return err
	}
	return nil
}

// EnsureIndexes creates the chat_id indexes used by every lookup.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "chat_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = r.archive.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "chat_id", Value: 1}},
	})
	return err
}

func observe(kind string) func() {
	timer := prometheus.NewTimer(metrics.BackendFetchDuration.WithLabelValues("mongo", kind))
	return func() { timer.ObserveDuration() }
}
