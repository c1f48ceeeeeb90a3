package resolver

import (
	"context"
	"errors"
	"slices"
	"sort"

	"github.com/durack1/durolib/internal/naming"
	"github.com/durack1/durolib/internal/probe"
)

// DateReader supplies per-file creation dates. [*probe.Prober] is the
// production implementation.
type DateReader interface {
	CreationDate(ctx context.Context, path string) (probe.Date, error)
}

// Logger is the minimal logging interface the resolver needs.
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Warn(string, ...interface{})  {}

// Resolver holds the collaborators for resolution calls. It keeps no state
// between calls and may be reused.
type Resolver struct {
	dates DateReader
	log   Logger
	memo  bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger routes decision and warning messages to l.
func WithLogger(l Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMemo controls whether a creation date read once is reused for the
// same path within a single call. On by default.
func WithMemo(on bool) Option {
	return func(r *Resolver) { r.memo = on }
}

// New returns a Resolver reading creation dates from dates.
func New(dates DateReader, opts ...Option) *Resolver {
	r := &Resolver{dates: dates, log: NopLogger{}, memo: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is the outcome of one resolution call.
type Result struct {
	Inputs        int
	Selections    []Selection // ordered by winner path
	MetadataReads int
}

// Paths returns the winning paths in ascending order.
func (res *Result) Paths() []string {
	out := make([]string, len(res.Selections))
	for i, s := range res.Selections {
		out[i] = s.Winner.Path
	}
	return out
}

// Dropped is the number of input paths not selected.
func (res *Result) Dropped() int { return res.Inputs - len(res.Selections) }

// Resolve runs the full pipeline over paths: sort, parse, group and settle
// each group. On any error the returned Result is nil.
func (r *Resolver) Resolve(ctx context.Context, paths []string) (*Result, error) {
	if paths == nil {
		return nil, invalidArgf("path list is nil")
	}
	for i, p := range paths {
		if p == "" {
			return nil, invalidArgf("empty path at index %d", i)
		}
	}

	sorted := slices.Clone(paths)
	sort.Strings(sorted)

	records := make([]naming.FileRecord, 0, len(sorted))
	for _, p := range sorted {
		rec, err := naming.Parse(p)
		if err != nil {
			var pe *naming.ParseError
			kind := naming.ErrUnknownDialect
			if errors.As(err, &pe) {
				kind = pe.Kind
			}
			return nil, &Error{Kind: kind, Path: p, Err: err}
		}
		records = append(records, rec)
	}

	res := &Result{Inputs: len(sorted)}
	dates := r.dateFunc(res)
	for _, g := range GroupByIdentity(records) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sel, err := r.resolveGroup(ctx, g, dates)
		if err != nil {
			return nil, err
		}
		r.log.Debug("%s: kept %s (%s, %d candidate(s))",
			sel.Identity, sel.Winner.Path, sel.Reason, len(sel.Candidates))
		res.Selections = append(res.Selections, sel)
	}

	sort.Slice(res.Selections, func(i, j int) bool {
		return res.Selections[i].Winner.Path < res.Selections[j].Winner.Path
	})
	return res, nil
}

// TrimModelList returns one path per distinct identity in paths, sorted
// ascending. It returns a nil slice and an [*Error] when the call aborts.
func (r *Resolver) TrimModelList(ctx context.Context, paths []string) ([]string, error) {
	res, err := r.Resolve(ctx, paths)
	if err != nil {
		return nil, err
	}
	return res.Paths(), nil
}

// TrimAny accepts untyped input such as a decoded JSON document. See
// [PathsFromAny] for what is accepted.
func (r *Resolver) TrimAny(ctx context.Context, v any) ([]string, error) {
	paths, err := PathsFromAny(v)
	if err != nil {
		return nil, err
	}
	return r.TrimModelList(ctx, paths)
}

// PathsFromAny converts a []string or a []any of strings into a path list.
// Anything else is [ErrInvalidArgument].
func PathsFromAny(v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		if t == nil {
			return nil, invalidArgf("path list is nil")
		}
		return t, nil
	case []any:
		if t == nil {
			return nil, invalidArgf("path list is nil")
		}
		paths := make([]string, len(t))
		for i, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, invalidArgf("element %d is %T, not a string", i, e)
			}
			paths[i] = s
		}
		return paths, nil
	}
	return nil, invalidArgf("expected a list of paths, got %T", v)
}

// TrimModelList is a convenience wrapper around New(dates).TrimModelList.
func TrimModelList(ctx context.Context, dates DateReader, paths []string) ([]string, error) {
	return New(dates).TrimModelList(ctx, paths)
}

// dateFunc returns the per-call date lookup, memoised when enabled. Every
// real read is counted in res.MetadataReads.
func (r *Resolver) dateFunc(res *Result) dateFunc {
	read := func(ctx context.Context, path string) (probe.Date, error) {
		res.MetadataReads++
		return r.dates.CreationDate(ctx, path)
	}
	if !r.memo {
		return read
	}
	seen := make(map[string]probe.Date)
	return func(ctx context.Context, path string) (probe.Date, error) {
		if d, ok := seen[path]; ok {
			return d, nil
		}
		d, err := read(ctx, path)
		if err != nil {
			return 0, err
		}
		seen[path] = d
		return d, nil
	}
}
