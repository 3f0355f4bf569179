package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the MongoDB implementation of storage.Storage. Every call first
// makes sure the shared connection is up.
type Mongo struct {
	conn *Connector
	now  func() time.Time
}

var _ storage.Storage = (*Mongo)(nil)

// New returns a store that connects through conn on first use.
func New(conn *Connector) *Mongo {
	return &Mongo{conn: conn, now: time.Now}
}

func (m *Mongo) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := m.conn.EnsureConnected(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Insert stamps doc with a fresh ObjectID (as hex) and inserts it.
func (m *Mongo) Insert(ctx context.Context, collection string, doc types.Document) error {
	coll, err := m.collection(ctx, collection)
	if err != nil {
		return fmt.Errorf("Insert: %w", err)
	}

	// BSON dates keep milliseconds only.
	now := m.now().UTC().Truncate(time.Millisecond)
	doc.Stamp(primitive.NewObjectID().Hex(), now)

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	return nil
}

// Find runs q against collection and decodes every match into out, a
// pointer to a slice. Omitted fields are projected away by the server.
func (m *Mongo) Find(ctx context.Context, collection string, q storage.Query, out any) error {
	coll, err := m.collection(ctx, collection)
	if err != nil {
		return fmt.Errorf("Find: %w", err)
	}

	filter := bson.D{}
	for _, c := range q.Filter {
		filter = append(filter, bson.E{Key: c.Field, Value: c.Value})
	}

	opts := options.Find().SetSort(sortSpec(q.Sort))
	if len(q.Omit) > 0 {
		projection := bson.D{}
		for _, f := range q.Omit {
			projection = append(projection, bson.E{Key: f, Value: 0})
		}
		opts.SetProjection(projection)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("Find: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("Find: decode: %w", err)
	}
	return nil
}

// FindByID decodes the document whose _id is id into out. It returns
// storage.ErrNotFound when there is none.
func (m *Mongo) FindByID(ctx context.Context, collection string, id string, out any) error {
	coll, err := m.collection(ctx, collection)
	if err != nil {
		return fmt.Errorf("FindByID: %w", err)
	}

	err = coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("FindByID: %w", err)
	}
	return nil
}

// Close disconnects the shared client, if it was ever connected.
func (m *Mongo) Close(ctx context.Context) error {
	return m.conn.Close(ctx)
}

// sortSpec converts sort keys into a BSON sort document. Ids are hex
// ObjectIDs, which grow with insertion time, so "_id" descending is the
// newest-first tie-breaker.
func sortSpec(keys []storage.SortKey) bson.D {
	spec := make(bson.D, 0, len(keys)+1)
	for _, k := range keys {
		dir := 1
		if k.Desc {
			dir = -1
		}
		spec = append(spec, bson.E{Key: k.Field, Value: dir})
	}
	return append(spec, bson.E{Key: "_id", Value: -1})
}
