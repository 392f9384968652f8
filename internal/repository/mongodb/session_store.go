package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
)

// SessionStore persists dashboard sessions in MongoDB so logins survive a
// process restart.
type SessionStore struct {
	client   *mongo.Client
	dbName   string
	collName string
}

type sessionDoc struct {
	ID      string             `bson:"_id"`
	Session models.UserSession `bson:"session"`
}

// NewSessionStore connects to MongoDB and verifies the connection.
func NewSessionStore(ctx context.Context, uri string, dbName string) (*SessionStore, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &SessionStore{
		client:   client,
		dbName:   dbName,
		collName: "sessions",
	}, nil
}

// SaveSession upserts the session under its ID.
func (s *SessionStore) SaveSession(ctx context.Context, id string, session models.UserSession) error {
	collection := s.client.Database(s.dbName).Collection(s.collName)

	doc := sessionDoc{ID: id, Session: session}
	opts := options.Replace().SetUpsert(true)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// FindSession loads a session by ID. A missing session returns (nil, nil).
func (s *SessionStore) FindSession(ctx context.Context, id string) (*models.UserSession, error) {
	collection := s.client.Database(s.dbName).Collection(s.collName)

	var doc sessionDoc
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &doc.Session, nil
}

// DeleteSession removes a session by ID. Deleting a missing session is fine.
func (s *SessionStore) DeleteSession(ctx context.Context, id string) error {
	collection := s.client.Database(s.dbName).Collection(s.collName)
	if _, err := collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (s *SessionStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
