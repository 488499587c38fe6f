// Package mongodb provides MongoDB URL support.
//
// MongoDB does not speak database/sql, so no driver factory is registered;
// callers resolve a URL through the parser and open a client with Connect.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/veldtlabs/dburl/registry"
	"github.com/veldtlabs/dburl/types"
)

func init() {
	registry.RegisterURIParser(types.EngineMongoDB, NewMongoDBURIParser())
}

// Connect opens a MongoDB client for the config. When ConnHealthChecks is
// set the server is pinged before the client is returned
func Connect(ctx context.Context, config types.Config) (*mongo.Client, error) {
	uri, err := NewMongoDBURIParser().FormatDSN(config)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if config.ConnHealthChecks {
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
		}
	}
	return client, nil
}
