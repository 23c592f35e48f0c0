package ddb

import "errors"

// Options holds optional Client configuration.
type Options struct {
	api      API
	endpoint string
}

// Option mutates Options.
type Option func(*Options)

func newOptions() *Options { return &Options{} }

// WithAPI injects a pre-built DynamoDB API, bypassing client construction.
// Intended for tests.
func WithAPI(api API) Option {
	return func(o *Options) { o.api = api }
}

// WithEndpoint points the client at a custom DynamoDB endpoint, e.g. a local
// instance during development.
func WithEndpoint(url string) Option {
	return func(o *Options) { o.endpoint = url }
}

func (o *Options) validate() error {
	if o.api != nil && o.endpoint != "" {
		return errors.New("WithAPI and WithEndpoint are mutually exclusive")
	}
	return nil
}
