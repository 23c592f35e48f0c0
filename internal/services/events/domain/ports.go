package domain

import "context"

// RecordPort loads and saves a user's whole record in one shot
type RecordPort interface {
	Load(ctx context.Context, userID string) (Record, error)
	Save(ctx context.Context, userID string, rec Record) error
}

// StorePort is the almanac surface the skill talks to
type StorePort interface {
	Day(ctx context.Context, userID, dayKey string) (map[string][]string, error)
	Add(ctx context.Context, userID, dayKey, yearKey, text string) error
	Delete(ctx context.Context, userID, dayKey, yearKey string, index int) (remaining []string, err error)
	Update(ctx context.Context, userID, dayKey, yearKey string, index int, text string) (ok bool, err error)
}
