package store

import (
	"context"
	"net/url"
	"testing"

	"github.com/kapu/botkit-go/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMemoryStore(t *testing.T) Store {
	t.Helper()
	s, err := Connect(context.Background(), Config{URI: "badger://memory"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func Test_Save_Then_FindOne(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMemoryStore(t)

	saved, err := s.Save(ctx, "notes", Document{"owner": "u1", "text": "buy milk", "count": 2})
	req.NoError(err)
	req.NotEmpty(saved.ID())

	found, err := s.FindOne(ctx, "notes", Criteria{"owner": "u1", "count": 2})
	req.NoError(err)
	req.Equal(saved.ID(), found.ID())
	req.Equal("buy milk", found["text"])

	// other collections are isolated
	found, err = s.FindOne(ctx, "tags", Criteria{"owner": "u1"})
	req.NoError(err)
	req.Nil(found)
}

func Test_FindOne_Returns_Nil_When_Nothing_Matches(t *testing.T) {
	s := newMemoryStore(t)

	found, err := s.FindOne(context.Background(), "notes", Criteria{"owner": "nobody"})

	require.NoError(t, err)
	require.Nil(t, found)
}

func Test_Save_Upserts_By_ID(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMemoryStore(t)

	_, err := s.Save(ctx, "notes", Document{IDField: "n1", "text": "first"})
	req.NoError(err)
	_, err = s.Save(ctx, "notes", Document{IDField: "n1", "text": "second"})
	req.NoError(err)

	found, err := s.FindOne(ctx, "notes", Criteria{IDField: "n1"})
	req.NoError(err)
	req.Equal("second", found["text"])
}

func Test_UpdateOne_Sets_Single_Field(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMemoryStore(t)

	_, err := s.Save(ctx, "notes", Document{IDField: "n1", "owner": "u1", "text": "old"})
	req.NoError(err)

	req.NoError(s.UpdateOne(ctx, "notes", Criteria{"owner": "u1"}, "text", "new"))

	found, err := s.FindOne(ctx, "notes", Criteria{IDField: "n1"})
	req.NoError(err)
	req.Equal("new", found["text"])
	req.Equal("u1", found["owner"])

	// no match is not an error
	req.NoError(s.UpdateOne(ctx, "notes", Criteria{"owner": "u9"}, "text", "x"))
}

func Test_Delete(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMemoryStore(t)

	saved, err := s.Save(ctx, "notes", Document{"owner": "u1"})
	req.NoError(err)
	req.NoError(s.Delete(ctx, "notes", saved))

	found, err := s.FindOne(ctx, "notes", Criteria{"owner": "u1"})
	req.NoError(err)
	req.Nil(found)
}

func Test_Delete_Without_ID_Is_StoreError(t *testing.T) {
	s := newMemoryStore(t)

	err := s.Delete(context.Background(), "notes", Document{"owner": "u1"})

	var storeErr *errors.StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, errors.StoreFailureMessage, storeErr.Message)
	require.Equal(t, OpDelete, storeErr.Operation)
	require.ErrorIs(t, err, ErrMissingID)
}

func Test_Create_Applies_Schema(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMemoryStore(t)
	schema := Schema{
		Collection: "notes",
		Defaults:   map[string]any{"pinned": false, "text": ""},
		Required:   []string{"owner"},
	}

	doc, err := s.Create(ctx, schema, map[string]any{"owner": "u1", "text": "hi"})
	req.NoError(err)
	req.Equal(false, doc["pinned"])
	req.Equal("hi", doc["text"])

	found, err := s.FindOne(ctx, "notes", Criteria{IDField: doc.ID()})
	req.NoError(err)
	req.Equal("u1", found["owner"])

	_, err = s.Create(ctx, schema, map[string]any{"text": "orphan"})
	req.True(errors.IsStore(err))
	req.ErrorIs(err, ErrRequiredField)
}

func Test_Connect_Rejects_Unknown_Scheme(t *testing.T) {
	_, err := Connect(context.Background(), Config{URI: "redis://localhost:6379"}, nil)

	require.True(t, errors.IsStore(err))
	require.ErrorIs(t, err, ErrUnknownScheme)
}

func Test_BadgerPath(t *testing.T) {
	tests := map[string]string{
		"badger://memory":      "",
		"badger://":            "",
		"badger://data/notes":  "data/notes",
		"badger:///var/botkit": "/var/botkit",
	}
	for raw, want := range tests {
		u, err := url.Parse(raw)
		require.NoError(t, err)
		require.Equal(t, want, badgerPath(u), raw)
	}
}

func Test_Document_ID(t *testing.T) {
	require.Equal(t, "", Document{}.ID())
	require.Equal(t, "abc", Document{IDField: "abc"}.ID())
	require.Equal(t, "42", Document{IDField: 42}.ID())
}
