package store

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/dgraph-io/badger/v4"
	"github.com/kapu/botkit-go/pkg/errors"
	"go.uber.org/zap"
)

// BadgerStore keeps documents as JSON values under doc:<collection>:<id>.
type BadgerStore struct {
	db     *badger.DB
	logger *zap.Logger
}

// NewBadgerStore opens a store at dir, or in memory when dir is empty.
func NewBadgerStore(dir string, logger *zap.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.NewStoreError(OpConnect, "", err)
	}

	logger.Info("Badger store opened",
		zap.String("dir", dir),
		zap.Bool("in_memory", dir == ""),
	)
	return &BadgerStore{db: db, logger: logger}, nil
}

func badgerKey(collection, id string) []byte {
	return []byte("doc:" + collection + ":" + id)
}

func badgerPrefix(collection string) []byte {
	return []byte("doc:" + collection + ":")
}

func (s *BadgerStore) FindOne(_ context.Context, collection string, criteria Criteria) (Document, error) {
	var found Document
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		found, _, err = s.scan(txn, collection, criteria)
		return err
	})
	if err != nil {
		return nil, errors.NewStoreError(OpFindOne, collection, err)
	}
	return found, nil
}

func (s *BadgerStore) Save(_ context.Context, collection string, doc Document) (Document, error) {
	doc = withID(doc)
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.NewStoreError(OpSave, collection, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(collection, doc.ID()), data)
	})
	if err != nil {
		return nil, errors.NewStoreError(OpSave, collection, err)
	}
	return doc, nil
}

func (s *BadgerStore) UpdateOne(_ context.Context, collection string, criteria Criteria, field string, value any) error {
	if field == "" {
		return errors.NewStoreError(OpUpdateOne, collection, ErrEmptyFieldName)
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		doc, key, err := s.scan(txn, collection, criteria)
		if err != nil || doc == nil {
			return err
		}
		doc[field] = normalize(value)
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return errors.NewStoreError(OpUpdateOne, collection, err)
	}
	return nil
}

func (s *BadgerStore) Delete(_ context.Context, collection string, doc Document) error {
	id := doc.ID()
	if id == "" {
		return errors.NewStoreError(OpDelete, collection, ErrMissingID)
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(badgerKey(collection, id))
	})
	if err != nil {
		return errors.NewStoreError(OpDelete, collection, err)
	}
	return nil
}

func (s *BadgerStore) Create(ctx context.Context, schema Schema, fields map[string]any) (Document, error) {
	return create(ctx, s, schema, fields)
}

func (s *BadgerStore) Close(context.Context) error {
	if err := s.db.Close(); err != nil {
		return errors.NewStoreError(OpClose, "", err)
	}
	return nil
}

// scan returns the first document in collection matching criteria, with its key.
func (s *BadgerStore) scan(txn *badger.Txn, collection string, criteria Criteria) (Document, []byte, error) {
	want := make(map[string]any, len(criteria))
	for k, v := range criteria {
		want[k] = normalize(v)
	}

	prefix := badgerPrefix(collection)
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()

		var doc Document
		if err := item.Value(func(v []byte) error {
			return json.Unmarshal(v, &doc)
		}); err != nil {
			return nil, nil, err
		}
		if matches(doc, want) {
			return doc, item.KeyCopy(nil), nil
		}
	}
	return nil, nil, nil
}

func matches(doc Document, want map[string]any) bool {
	for k, v := range want {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}
	return true
}
