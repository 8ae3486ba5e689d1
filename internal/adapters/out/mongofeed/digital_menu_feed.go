// Package mongofeed reads the digital menu's order collection.
package mongofeed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/digitalmenu"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

// DefaultCollection is the collection the digital menu writes its orders to.
const DefaultCollection = "digital_menu_customer_orders"

var _ ports.DigitalMenuFeed = &DigitalMenuFeed{}

type DigitalMenuFeed struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewDigitalMenuFeed wraps an existing collection.
func NewDigitalMenuFeed(collection *mongo.Collection, logger *zap.Logger) *DigitalMenuFeed {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DigitalMenuFeed{collection: collection, logger: logger.Named("digital_menu_feed")}
}

// Connect dials uri and checks the server is reachable. The caller owns the
// client and disconnects it on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, errs.NewValueIsRequiredError("digital menu uri")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect digital menu mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping digital menu mongodb: %w", err)
	}
	return client, nil
}

// DatabaseName picks the database for uri when none is configured: the
// lower-cased appName option, then the path component, then "test".
func DatabaseName(uri string) (string, error) {
	cs, err := connstring.Parse(uri)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("digital menu uri", err)
	}
	switch {
	case cs.AppName != "":
		return strings.ToLower(cs.AppName), nil
	case cs.Database != "":
		return cs.Database, nil
	default:
		return "test", nil
	}
}

func importableStatuses() bson.A {
	out := bson.A{}
	for _, s := range digitalmenu.ImportableStatuses() {
		out = append(out, string(s))
	}
	return out
}

func (f *DigitalMenuFeed) FindUnsynced(ctx context.Context) ([]digitalmenu.Order, error) {
	filter := bson.M{
		"syncedToPOS": bson.M{"$ne": true},
		"status":      bson.M{"$in": importableStatuses()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	return f.find(ctx, filter, opts)
}

func (f *DigitalMenuFeed) FindSynced(ctx context.Context) ([]digitalmenu.Order, error) {
	return f.find(ctx, bson.M{"syncedToPOS": true}, options.Find())
}

func (f *DigitalMenuFeed) List(ctx context.Context, limit int) ([]digitalmenu.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return f.find(ctx, bson.M{}, opts)
}

// MarkSynced writes the sync fields. An unknown id is an ObjectNotFoundError.
func (f *DigitalMenuFeed) MarkSynced(ctx context.Context, id, posOrderID string, at time.Time) error {
	res, err := f.collection.UpdateOne(ctx,
		bson.M{"_id": idFilterValue(id)},
		bson.M{"$set": bson.M{
			"syncedToPOS": true,
			"syncedAt":    at,
			"posOrderId":  posOrderID,
		}},
	)
	if err != nil {
		return fmt.Errorf("mark digital menu order %s synced: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("digitalMenuOrderId", id)
	}
	return nil
}

// find decodes every matching document. Documents that cannot be decoded
// are logged and skipped so one bad entry does not stall the feed.
func (f *DigitalMenuFeed) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]digitalmenu.Order, error) {
	cursor, err := f.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query digital menu orders: %w", err)
	}
	defer cursor.Close(ctx)

	var out []digitalmenu.Order
	for cursor.Next(ctx) {
		var doc orderDocument
		if err := cursor.Decode(&doc); err != nil {
			f.logger.Warn("skip undecodable digital menu order", zap.Error(err))
			continue
		}
		order, err := doc.toDomain()
		if err != nil {
			f.logger.Warn("skip digital menu order", zap.Error(err))
			continue
		}
		out = append(out, order)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("read digital menu orders: %w", err)
	}
	return out, nil
}
