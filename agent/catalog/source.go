package catalog

import "context"

// Filter is an open field=value constraint set. A scalar filter value must
// equal the entity field; when either side is a list, matching is by
// containment (the scalar must appear in the list). All filter entries must
// hold for a record to pass. Unknown field names match nothing.
type Filter map[string]any

// Source is the read-only query contract over the catalog. Every operation
// narrows by the entity's availability predicate after the caller's filters:
// courses and jobs need availability=true, properties need open beds or
// units. Result order is the catalog's own order; callers apply their own
// sorts.
type Source interface {
	Individuals(ctx context.Context, f Filter) ([]Individual, error)
	Courses(ctx context.Context, f Filter) ([]MicroCourse, error)
	Properties(ctx context.Context, f Filter) ([]Property, error)
	Jobs(ctx context.Context, f Filter) ([]Job, error)
}

func matchesFilter(fields map[string]any, f Filter) bool {
	for key, want := range f {
		have, ok := fields[key]
		if !ok {
			return false
		}
		if !valueMatches(have, want) {
			return false
		}
	}
	return true
}

func valueMatches(have, want any) bool {
	if wantList, ok := asList(want); ok {
		for _, w := range wantList {
			if valueMatches(have, w) {
				return true
			}
		}
		return false
	}
	if haveList, ok := asList(have); ok {
		for _, h := range haveList {
			if scalarEqual(h, want) {
				return true
			}
		}
		return false
	}
	return scalarEqual(have, want)
}

func asList(v any) ([]any, bool) {
	switch vals := v.(type) {
	case []any:
		return vals, true
	case []string:
		out := make([]any, len(vals))
		for i, s := range vals {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func scalarEqual(a, b any) bool {
	// Numeric filter values often arrive as float64 after a JSON round trip.
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return af == bf
		}
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

// Availability predicates, one per entity kind.

func courseAvailable(c MicroCourse) bool {
	return c.Availability
}

func propertyAvailable(p Property) bool {
	return p.BedsAvailable > 0 || p.UnitsAvailable > 0
}

func jobAvailable(j Job) bool {
	return j.Availability
}
