package mongo

import (
	"context"
	"os"
	"testing"

	"github.com/lifefork/lifefork-server/internal/store"
	"github.com/lifefork/lifefork-server/internal/store/storetest"
)

// Runs only when a reachable server is provided, e.g.
// LIFEFORK_TEST_MONGO_URI=mongodb://localhost:27017
func TestMongoStore_Contract(t *testing.T) {
	uri := os.Getenv("LIFEFORK_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("LIFEFORK_TEST_MONGO_URI not set; skipping mongo integration test")
	}

	ctx := context.Background()
	client, err := Open(ctx, uri)
	if err != nil {
		t.Fatalf("open mongo: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	storetest.Run(t, func(t *testing.T) store.Store {
		db := client.Database("lifefork_test")
		if err := db.Collection(collectionSimulations).Drop(ctx); err != nil {
			t.Fatalf("drop collection: %v", err)
		}
		return NewWithClient(client, "lifefork_test")
	})
}
