package output

import "time"

// Metrics receives application-level counters.
type Metrics interface {
	DetailsSlotFailed(slot string)
	DetailsCache(hit bool)
	ChatPolled(result string)
}

// UpstreamMetrics receives one observation per backend API call. status is
// the HTTP status code, or "error" when no response came back.
type UpstreamMetrics interface {
	UpstreamObserved(method, endpoint, status string, elapsed time.Duration)
}
