// Package mongo provides the document store backend. Ids are server-generated
// ObjectIDs rendered as hex strings; timestamps are assigned at insert time.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/lifefork/lifefork-server/internal/model"
	"github.com/lifefork/lifefork-server/internal/store"
)

const collectionSimulations = "simulations"

// Open connects to MongoDB and verifies connectivity.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI is empty")
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// NewWithClient constructs a Mongo store over the given database.
func NewWithClient(client *mongo.Client, database string) store.Store {
	return &mongoStore{client: client, db: client.Database(database)}
}

type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func (s *mongoStore) Simulations() store.Simulations {
	return &simulations{coll: s.db.Collection(collectionSimulations)}
}

// HealthPing implements health.Pinger.
func (s *mongoStore) HealthPing(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// simulationDoc is the collection document shape. Kept separate from
// model.Simulation so bson concerns stay out of the domain model.
type simulationDoc struct {
	ID                primitive.ObjectID       `bson:"_id,omitempty"`
	Title             string                   `bson:"title"`
	Age               int                      `bson:"age"`
	Gender            *string                  `bson:"gender,omitempty"`
	Hobbies           string                   `bson:"hobbies"`
	Personality       string                   `bson:"personality"`
	CurrentSituation  string                   `bson:"currentSituation"`
	CurrentGoals      string                   `bson:"currentGoals"`
	AlternativeChoice string                   `bson:"alternativeChoice"`
	Results           *model.SimulationResults `bson:"results"`
	Category          string                   `bson:"category"`
	SuccessRate       int                      `bson:"successRate"`
	CreatedAt         time.Time                `bson:"createdAt"`
}

func toDoc(rec *model.Simulation) *simulationDoc {
	return &simulationDoc{
		Title:             rec.Title,
		Age:               rec.Age,
		Gender:            rec.Gender,
		Hobbies:           rec.Hobbies,
		Personality:       rec.Personality,
		CurrentSituation:  rec.CurrentSituation,
		CurrentGoals:      rec.CurrentGoals,
		AlternativeChoice: rec.AlternativeChoice,
		Results:           rec.Results,
		Category:          rec.Category,
		SuccessRate:       rec.SuccessRate,
	}
}

func fromDoc(doc *simulationDoc) *model.Simulation {
	return &model.Simulation{
		ID:                doc.ID.Hex(),
		Title:             doc.Title,
		Age:               doc.Age,
		Gender:            doc.Gender,
		Hobbies:           doc.Hobbies,
		Personality:       doc.Personality,
		CurrentSituation:  doc.CurrentSituation,
		CurrentGoals:      doc.CurrentGoals,
		AlternativeChoice: doc.AlternativeChoice,
		Results:           doc.Results,
		Category:          doc.Category,
		SuccessRate:       doc.SuccessRate,
		CreatedAt:         doc.CreatedAt.UTC(),
	}
}

type simulations struct{ coll *mongo.Collection }

func (s *simulations) Create(ctx context.Context, rec *model.Simulation) (*model.Simulation, error) {
	doc := toDoc(rec)
	doc.CreatedAt = time.Now().UTC()

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return fromDoc(doc), nil
}

func (s *simulations) Get(ctx context.Context, id string) (*model.Simulation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrNotFound
	}
	var doc simulationDoc
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromDoc(&doc), nil
}

func (s *simulations) List(ctx context.Context) ([]*model.Simulation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := []*model.Simulation{}
	for cur.Next(ctx) {
		var doc simulationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, fromDoc(&doc))
	}
	return out, cur.Err()
}

func (s *simulations) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids cannot exist in this backend; deleting them is a no-op.
		return nil
	}
	_, err = s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
