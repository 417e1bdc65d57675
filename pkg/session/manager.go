package session

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

type MongoSessionRepo struct {
	collection *mongo.Collection
}

func NewMongoSessionRepo(db *mongo.Database) *MongoSessionRepo {
	return &MongoSessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *MongoSessionRepo) Create(userID, role string) (*Session, error) {
	ctx := context.TODO()

	token, err := NewToken(tokenLength)
	if err != nil {
		return nil, fmt.Errorf("token gen error: %s", err)
	}

	now := time.Now()
	sess := &Session{
		Token:     token,
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}

	if _, err := r.collection.InsertOne(ctx, sess); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.New("session already exists")
		}
		return nil, err
	}

	return sess, nil
}

func (r *MongoSessionRepo) Find(token string) (*Session, error) {
	ctx := context.TODO()
	var sess Session

	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&sess)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	return &sess, nil
}

// Delete is idempotent: removing an unknown token is not an error.
func (r *MongoSessionRepo) Delete(token string) error {
	ctx := context.TODO()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *MongoSessionRepo) DeleteExpired() (int64, error) {
	ctx := context.TODO()

	res, err := r.collection.DeleteMany(ctx, bson.M{
		"expires_at": bson.M{"$lt": time.Now()},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return res.DeletedCount, nil
}

// NewToken draws length characters from crypto/rand. The token is the
// sole authentication factor after login, so it must be unguessable.
func NewToken(length int) (string, error) {
	result := make([]byte, length)

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		result[i] = alphabet[randomIndex.Int64()]
	}

	return string(result), nil
}
