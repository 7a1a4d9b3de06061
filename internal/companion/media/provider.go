// Package media searches, scores, and selects externally hosted media for a
// conversation turn across a priority-ordered set of provider clients.
package media

import "net/http"

type providerOpts struct {
	endpoint string
	client   *http.Client
}

// Option customises a provider client, mainly so tests can point it at a
// local server.
type Option func(*providerOpts)

func WithEndpoint(endpoint string) Option {
	return func(o *providerOpts) {
		o.endpoint = endpoint
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *providerOpts) {
		o.client = client
	}
}

func applyOpts(defaultEndpoint string, client *http.Client, opts []Option) providerOpts {
	o := providerOpts{endpoint: defaultEndpoint, client: client}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
