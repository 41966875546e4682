package health

import "context"

// UpstreamPinger checks upstream data provider availability.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}
