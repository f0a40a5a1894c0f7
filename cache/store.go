/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package cache layers a lazily-populated object cache over a
// client.Conn: per-number caches for uconferences, conferences,
// persons, text stats and subjects, kept consistent by async handlers
// installed on the underlying connection. See package cache/usercache for
// the tighter per-user membership/unread extension.
package cache

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

// Store is a generic lazy cache: Get fetches and inserts on miss via
// fetch, Set installs an externally computed value, Invalidate drops
// an entry (tolerant of misses). There is no negative caching and no
// TTL — staleness is managed purely by explicit invalidation, driven
// in practice by the async handlers installed in Connection.
type Store[K comparable, V any] struct {
	mtx   sync.RWMutex
	vals  map[K]V
	fetch func(K) (V, error)
	group singleflight.Group

	name           string
	cachedCount    prometheus.Counter
	uncachedCount  prometheus.Counter
}

// NewStore builds a Store backed by fetch. name is used only to name
// the Store's Prometheus hit/miss counters, which Report returns.
func NewStore[K comparable, V any](name string, fetch func(K) (V, error)) *Store[K, V] {
	return &Store[K, V]{
		vals:  make(map[K]V),
		fetch: fetch,
		name:  name,
		cachedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "komclient", Subsystem: "cache", Name: name + "_hits_total",
		}),
		uncachedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "komclient", Subsystem: "cache", Name: name + "_misses_total",
		}),
	}
}

// Get returns the cached value for k, fetching and inserting on miss.
// Concurrent misses for the same key collapse into a single fetch
// call via singleflight, so a burst of callers asking for the same
// conference doesn't issue N redundant requests.
func (s *Store[K, V]) Get(k K) (V, error) {
	s.mtx.RLock()
	v, ok := s.vals[k]
	s.mtx.RUnlock()
	if ok {
		s.cachedCount.Inc()
		return v, nil
	}
	s.uncachedCount.Inc()
	res, err, _ := s.group.Do(fmt.Sprintf("%v", k), func() (any, error) {
		v, err := s.fetch(k)
		if err != nil {
			return v, err
		}
		s.mtx.Lock()
		s.vals[k] = v
		s.mtx.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Peek returns the cached value for k without fetching on miss; safe
// to call from an async handler running on the connection's own read
// goroutine, where a blocking Get could deadlock.
func (s *Store[K, V]) Peek(k K) (V, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	v, ok := s.vals[k]
	return v, ok
}

// Set installs an externally computed value, bypassing fetch.
func (s *Store[K, V]) Set(k K, v V) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.vals[k] = v
}

// Invalidate drops k if present; invalidating a missing key is a
// no-op, matching the protocol's "caches are forgiving on
// invalidate-miss" policy.
func (s *Store[K, V]) Invalidate(k K) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.vals, k)
}

// Report returns the cached/uncached counters for instrumentation.
func (s *Store[K, V]) Report() (cached, uncached prometheus.Counter) {
	return s.cachedCount, s.uncachedCount
}

func (s *Store[K, V]) collectors() []prometheus.Collector {
	return []prometheus.Collector{s.cachedCount, s.uncachedCount}
}
