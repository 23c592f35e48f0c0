package store

import (
	"almanacco/internal/platform/logger"
	"almanacco/internal/platform/store/ddb"
)

type options struct {
	log logger.Logger
	api ddb.API
}

// Option mutates store open options
type Option func(*options)

// WithLogger sets the logger used for store lifecycle messages
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithDynamoAPI injects a pre-built DynamoDB API, bypassing AWS client
// construction. Intended for tests.
func WithDynamoAPI(api ddb.API) Option {
	return func(o *options) { o.api = api }
}

func applyOptions(opts []Option) options {
	o := options{log: *logger.Named("store")}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
