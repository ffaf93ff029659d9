package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

// Add Prometheus metrics
var (
	fetchAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trending_feed_fetch_attempts_total",
		Help: "The total number of fetch attempts per feed URL",
	}, []string{"url"})

	fetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trending_feed_fetch_errors_total",
		Help: "The total number of failed fetch attempts per feed URL",
	}, []string{"url"})

	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trending_feed_fetch_duration_seconds",
		Help:    "Duration of feed fetches including retries",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // Start at 50ms, double each bucket, 10 buckets
	})
)

const (
	fetchTimeout = 20 * time.Second
	maxRetries   = 3
)

// HTTPFetcher retrieves feed documents over plain HTTP(S) GET. Transient
// failures are retried with exponential backoff; a non-2xx status below
// 500 is treated as permanent.
type HTTPFetcher struct {
	client *http.Client
}

func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch performs the GET request and returns the response body. The
// caller owns the body and must close it after parsing.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	start := time.Now()
	defer func() {
		fetchDuration.Observe(time.Since(start).Seconds())
	}()

	// Set up exponential backoff for transient fetch failures
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 250 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.Multiplier = 2

	var body io.ReadCloser
	operation := func() error {
		fetchAttempts.WithLabelValues(url).Inc()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := f.client.Do(req)
		if err != nil {
			fetchErrors.WithLabelValues(url).Inc()
			return err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			fetchErrors.WithLabelValues(url).Inc()
			err := fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, url)
			if resp.StatusCode < http.StatusInternalServerError {
				return backoff.Permanent(err)
			}
			return err
		}
		body = resp.Body
		return nil
	}

	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.WithContext(policy, ctx), maxRetries))
	if err != nil {
		log.WithFields(log.Fields{
			"url":   url,
			"error": err,
		}).Error("Feed fetch failed")
		return nil, err
	}

	return body, nil
}
