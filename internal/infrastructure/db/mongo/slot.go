package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifelink/lifelink-api/internal/core/domain"
)

const slotCollection = "slots"

// Slot keeps one document per slot: {_id: key, value: string}.
type Slot struct {
	coll *mongo.Collection
}

func NewSlot(db *mongo.Database) *Slot {
	return &Slot{coll: db.Collection(slotCollection)}
}

type slotDoc struct {
	Key       string `bson:"_id"`
	Value     string `bson:"value"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (s *Slot) Get(ctx context.Context, key string) ([]byte, error) {
	var doc slotDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, fmt.Errorf("find slot %s: %w", key, err)
	}
	return []byte(doc.Value), nil
}

func (s *Slot) Set(ctx context.Context, key string, value []byte) error {
	doc := slotDoc{Key: key, Value: string(value), UpdatedAt: time.Now().UTC().Unix()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}

// Ping checks connectivity for the readiness probe.
func (s *Slot) Ping(ctx context.Context) error {
	return s.coll.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
