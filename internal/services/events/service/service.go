// Package service provides the event store implementation
package service

import (
	"context"

	perr "almanacco/internal/platform/errors"
	dom "almanacco/internal/services/events/domain"
)

// Service implements domain.StorePort over a record repository.
// Every mutation is a load, change, save of the user's whole record.
type Service struct {
	Records dom.RecordPort
}

// New constructs an event store over a required record repository
func New(records dom.RecordPort) *Service {
	return &Service{Records: records}
}

// Day implements domain.StorePort
func (s *Service) Day(ctx context.Context, userID, dayKey string) (map[string][]string, error) {
	rec, err := s.Records.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return rec.Day(dayKey), nil
}

// Add implements domain.StorePort
func (s *Service) Add(ctx context.Context, userID, dayKey, yearKey, text string) error {
	rec, err := s.Records.Load(ctx, userID)
	if err != nil {
		return err
	}
	rec.Add(dayKey, yearKey, text)
	return s.Records.Save(ctx, userID, rec)
}

// Delete implements domain.StorePort. The record is only written back when
// the target exists, so a miss never mutates storage. The returned list is
// what remains under the year after removal; empty means the year is gone.
func (s *Service) Delete(ctx context.Context, userID, dayKey, yearKey string, index int) ([]string, error) {
	rec, err := s.Records.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := target(rec, dayKey, yearKey, index); err != nil {
		return nil, err
	}
	rec.Remove(dayKey, yearKey, index)
	if err := s.Records.Save(ctx, userID, rec); err != nil {
		return nil, err
	}
	return rec.Day(dayKey)[yearKey], nil
}

// Update implements domain.StorePort. An invalid target reads as ok=false
// with no error and no write; only storage faults fail.
func (s *Service) Update(ctx context.Context, userID, dayKey, yearKey string, index int, text string) (bool, error) {
	rec, err := s.Records.Load(ctx, userID)
	if err != nil {
		return false, err
	}
	if _, ok := rec.Replace(dayKey, yearKey, index, text); !ok {
		return false, nil
	}
	if err := s.Records.Save(ctx, userID, rec); err != nil {
		return false, err
	}
	return true, nil
}

// target distinguishes an absent day or year from a bad index
func target(rec dom.Record, dayKey, yearKey string, index int) error {
	evs, found := rec.Day(dayKey)[yearKey]
	if !found {
		return perr.NotFoundf("no events under %s %s", dayKey, yearKey)
	}
	if index < 0 || index >= len(evs) {
		return perr.IndexRangef("index %d outside %d events", index, len(evs))
	}
	return nil
}
