// Package repo persists almanac records in DynamoDB
package repo

import (
	"context"
	"encoding/json"

	perr "almanacco/internal/platform/errors"
	"almanacco/internal/platform/store/ddb"
	"almanacco/internal/services/events/domain"
)

// Dynamo implements domain.RecordPort over a single item per user.
// The whole record travels as one JSON document, read and written whole.
type Dynamo struct {
	db *ddb.Client
}

// NewDynamo constructs a record repository over a connected dynamo client
func NewDynamo(db *ddb.Client) *Dynamo { return &Dynamo{db: db} }

// Load implements domain.RecordPort. A missing item is an empty record.
func (d *Dynamo) Load(ctx context.Context, userID string) (domain.Record, error) {
	body, err := d.db.GetAttributes(ctx, userID)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "load record")
	}
	if body == nil {
		return domain.Record{}, nil
	}
	var rec domain.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "decode record")
	}
	if rec == nil {
		rec = domain.Record{}
	}
	return rec, nil
}

// Save implements domain.RecordPort
func (d *Dynamo) Save(ctx context.Context, userID string, rec domain.Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "encode record")
	}
	if err := d.db.PutAttributes(ctx, userID, body); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "save record")
	}
	return nil
}
