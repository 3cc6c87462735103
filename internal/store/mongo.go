package store

import (
	"context"
	stderrors "errors"

	"github.com/kapu/botkit-go/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func NewMongoStore(ctx context.Context, uri, database string, logger *zap.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.NewStoreError(OpConnect, "", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.NewStoreError(OpConnect, "", err)
	}

	logger.Info("MongoDB connected", zap.String("database", database))

	return &MongoStore{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}, nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, criteria Criteria) (Document, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M(criteriaOrEmpty(criteria))).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStoreError(OpFindOne, collection, err)
	}
	return Document(doc), nil
}

func (s *MongoStore) Save(ctx context.Context, collection string, doc Document) (Document, error) {
	doc = withID(doc)
	_, err := s.db.Collection(collection).ReplaceOne(ctx,
		bson.M{IDField: doc[IDField]},
		bson.M(doc),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, errors.NewStoreError(OpSave, collection, err)
	}
	return doc, nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, collection string, criteria Criteria, field string, value any) error {
	if field == "" {
		return errors.NewStoreError(OpUpdateOne, collection, ErrEmptyFieldName)
	}
	_, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M(criteriaOrEmpty(criteria)),
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		return errors.NewStoreError(OpUpdateOne, collection, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection string, doc Document) error {
	id, ok := doc[IDField]
	if !ok || id == nil {
		return errors.NewStoreError(OpDelete, collection, ErrMissingID)
	}
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{IDField: id}); err != nil {
		return errors.NewStoreError(OpDelete, collection, err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, schema Schema, fields map[string]any) (Document, error) {
	return create(ctx, s, schema, fields)
}

func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return errors.NewStoreError(OpClose, "", err)
	}
	s.logger.Info("MongoDB disconnected")
	return nil
}
