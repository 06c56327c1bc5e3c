package database

import (
	"context"

	"vitacare-service/internal/app/contracts"
	"vitacare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactionManager struct {
	client *mongo.Client
}

// NewMongoTransactionManager wraps multi-document writes in a Mongo session
// so that either every write commits or none of them are visible.
func NewMongoTransactionManager(client *mongo.Client) contracts.TransactionManager {
	return &mongoTransactionManager{client: client}
}

func (m *mongoTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.client.StartSession()
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		if _, ok := err.(*exceptions.CustomError); ok {
			return err
		}
		return exceptions.ErrMongoDBTransaction(err)
	}
	return nil
}
