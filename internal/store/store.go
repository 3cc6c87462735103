package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"maps"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/pkg/errors"
	"go.uber.org/zap"
)

// IDField is the primary key of every document.
const IDField = "_id"

// Operation names reported on *errors.StoreError.
const (
	OpConnect   = "connect"
	OpFindOne   = "findOne"
	OpSave      = "save"
	OpUpdateOne = "updateOne"
	OpDelete    = "delete"
	OpCreate    = "create"
	OpClose     = "close"
)

var (
	ErrMissingID      = stderrors.New("document has no _id")
	ErrUnknownScheme  = stderrors.New("unsupported store scheme")
	ErrRequiredField  = stderrors.New("required field missing")
	ErrEmptyFieldName = stderrors.New("field name must not be empty")
)

// Document is a schemaless record keyed by IDField.
type Document map[string]any

// ID returns the document's identifier as a string, or "" when unset.
func (d Document) ID() string {
	v, ok := d[IDField]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// Criteria selects documents by top-level field equality.
type Criteria map[string]any

// Schema describes the documents Create builds for one collection.
type Schema struct {
	Collection string
	Defaults   map[string]any
	Required   []string
}

// Store is a thin pass-through over a document database. Every failure is a
// *errors.StoreError whose cause is the backend error.
type Store interface {
	// FindOne returns the first matching document, or nil when none matches.
	FindOne(ctx context.Context, collection string, criteria Criteria) (Document, error)
	// Save upserts doc by IDField, assigning a new id when it has none.
	Save(ctx context.Context, collection string, doc Document) (Document, error)
	// UpdateOne sets field to value on the first document matching criteria.
	UpdateOne(ctx context.Context, collection string, criteria Criteria, field string, value any) error
	Delete(ctx context.Context, collection string, doc Document) error
	// Create builds a document from schema defaults and fields, then saves it.
	Create(ctx context.Context, schema Schema, fields map[string]any) (Document, error)
	Close(ctx context.Context) error
}

type Config struct {
	URI      string
	Database string
}

// Connect opens the backend named by the URI scheme: mongodb, postgres or badger.
// "badger://memory" keeps everything in process.
func Connect(ctx context.Context, cfg Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.URI == "" {
		cfg.URI = constants.StoreConfig.DefaultURI
	}
	if cfg.Database == "" {
		cfg.Database = constants.StoreConfig.DefaultDB
	}

	parsed, err := url.Parse(cfg.URI)
	if err != nil {
		return nil, errors.NewStoreError(OpConnect, "", err)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.StoreConfig.ConnectTimeout)
	defer cancel()

	switch strings.ToLower(parsed.Scheme) {
	case "mongodb", "mongodb+srv":
		return NewMongoStore(ctx, cfg.URI, cfg.Database, logger)
	case "postgres", "postgresql":
		return NewPostgresStore(ctx, cfg.URI, logger)
	case "badger":
		return NewBadgerStore(badgerPath(parsed), logger)
	default:
		return nil, errors.NewStoreError(OpConnect, "", fmt.Errorf("%w: %q", ErrUnknownScheme, parsed.Scheme))
	}
}

// badgerPath maps badger://memory to "" (in-memory) and badger://data/dir or
// badger:///abs/dir to a directory.
func badgerPath(u *url.URL) string {
	if u.Host == "memory" || (u.Host == "" && u.Path == "") {
		return ""
	}
	return u.Host + u.Path
}

// NewDocument merges schema defaults with fields and checks required fields.
func NewDocument(schema Schema, fields map[string]any) (Document, error) {
	doc := make(Document, len(schema.Defaults)+len(fields))
	maps.Copy(doc, schema.Defaults)
	maps.Copy(doc, fields)

	for _, name := range schema.Required {
		if v, ok := doc[name]; !ok || v == nil {
			return nil, fmt.Errorf("%w: %s", ErrRequiredField, name)
		}
	}
	return doc, nil
}

// withID returns a copy of doc carrying an id.
func withID(doc Document) Document {
	out := make(Document, len(doc)+1)
	maps.Copy(out, doc)
	if out.ID() == "" {
		out[IDField] = uuid.NewString()
	}
	return out
}

type saver interface {
	Save(ctx context.Context, collection string, doc Document) (Document, error)
}

func create(ctx context.Context, s saver, schema Schema, fields map[string]any) (Document, error) {
	doc, err := NewDocument(schema, fields)
	if err != nil {
		return nil, errors.NewStoreError(OpCreate, schema.Collection, err)
	}
	return s.Save(ctx, schema.Collection, doc)
}

// normalize round-trips v through JSON so values decoded from storage compare
// equal to the values callers pass in (int vs float64 and the like).
func normalize(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}
