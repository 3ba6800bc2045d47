// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ErrUnknownName is returned (wrapped) when looking up an unknown
// observer, illuminant, colourspace, model or method name.
var ErrUnknownName = errors.New("unknown name")

// minSuggestSimilarity is the similarity above which a known name is
// suggested in the error for an unknown one.
const minSuggestSimilarity = 0.5

// unknownName returns an error for an unknown name of the given kind,
// suggesting the most similar known name when there is one.
func unknownName(kind, name string, known []string) error {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, score := "", 0.0
	for _, k := range known {
		s := strutil.Similarity(name, k, lev)
		if s > score {
			best, score = k, s
		}
	}
	if score >= minSuggestSimilarity {
		return fmt.Errorf("%w: %s %q, did you mean %q?", ErrUnknownName, kind, name, best)
	}
	return fmt.Errorf("%w: %s %q, must be one of: %s", ErrUnknownName, kind, name, strings.Join(known, ", "))
}

// enumNames returns the names of enum values.
func enumNames[T fmt.Stringer](values []T) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return names
}

// UnknownNameError returns an [ErrUnknownName] error for an unknown name
// of the given kind, suggesting the closest of the known names.
func UnknownNameError(kind, name string, known []string) error {
	return unknownName(kind, name, known)
}

// registry is a case-insensitive, ordered name lookup table.
type registry[T any] struct {
	kind  string
	mu    sync.RWMutex
	items map[string]T
	names []string
}

func newRegistry[T any](kind string) *registry[T] {
	return &registry[T]{kind: kind, items: map[string]T{}}
}

// add adds or replaces the named item.
func (r *registry[T]) add(name string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(name)
	if _, has := r.items[key]; !has {
		r.names = append(r.names, name)
	}
	r.items[key] = v
}

// get returns the named item or an [ErrUnknownName] error.
func (r *registry[T]) get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[strings.ToLower(name)]
	if !ok {
		return v, unknownName(r.kind, name, r.names)
	}
	return v, nil
}

// list returns the registered names, sorted.
func (r *registry[T]) list() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := slices.Clone(r.names)
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return names
}
