// Package mongo provides the MongoDB implementation of storage.Storage and
// the connection manager it is built on.
package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"
)

// DialFunc opens and verifies a client connection.
type DialFunc func(ctx context.Context) (*mongo.Client, error)

// Connector lazily establishes one client per process and hands out the
// configured database. It is owned by main and shared by every request.
type Connector struct {
	dial     DialFunc
	database string

	// group collapses concurrent dials into one.
	group singleflight.Group

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewConnector returns a Connector for uri. Nothing is dialled until the
// first EnsureConnected call.
func NewConnector(uri, database string, connectTimeout time.Duration) *Connector {
	return NewConnectorWithDial(database, func(ctx context.Context) (*mongo.Client, error) {
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("ping: %w", err)
		}
		return client, nil
	})
}

// NewConnectorWithDial is NewConnector with a custom dial function.
func NewConnectorWithDial(database string, dial DialFunc) *Connector {
	return &Connector{dial: dial, database: database}
}

// EnsureConnected returns the database handle, dialling on first use.
// Concurrent first calls share a single in-flight dial and its result. A
// failed dial is not remembered: the next call tries again. A caller whose
// ctx ends while waiting returns ctx.Err(); the dial itself carries on for
// the other waiters.
func (c *Connector) EnsureConnected(ctx context.Context) (*mongo.Database, error) {
	if db := c.current(); db != nil {
		return db, nil
	}

	ch := c.group.DoChan("dial", func() (any, error) {
		if db := c.current(); db != nil {
			return db, nil
		}

		client, err := c.dial(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		c.client = client
		c.db = client.Database(c.database)
		return c.db, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("mongo: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("mongo: %w", res.Err)
		}
		return res.Val.(*mongo.Database), nil
	}
}

func (c *Connector) current() *mongo.Database {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db
}

// Close disconnects the client if one was established.
func (c *Connector) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client, c.db = nil, nil
	if err != nil {
		return fmt.Errorf("mongo: disconnect: %w", err)
	}
	return nil
}
