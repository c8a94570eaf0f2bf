package route

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/movies-api/internal/logger"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// Entry is a mounted route: the full path it answers on plus the group it
// came from.
type Entry struct {
	Method  string
	Path    string
	Group   string
	Handler http.HandlerFunc
}

// Table maps (method, path) pairs to handlers. It is filled once during
// startup and must not be mounted into concurrently.
type Table struct {
	entries []Entry
	keys    map[string]string // collision key -> owning group
	sealed  bool

	logger *logger.Logger
}

func NewTable(logger *logger.Logger) *Table {
	return &Table{
		keys:   make(map[string]string),
		logger: logger,
	}
}

// Mount registers every route of g under prefix. Either all routes of the
// group are added or, on error, none are.
//
// OPTIONS routes declared by the group are skipped: preflight requests are
// answered uniformly for every mounted path.
func (t *Table) Mount(prefix string, g Group) error {
	if t.sealed {
		return fmt.Errorf("%w: cannot mount group %q", ErrTableSealed, g.Name)
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("%w: %q must start with '/'", ErrInvalidPrefix, prefix)
	}

	pending := make([]Entry, 0, len(g.Routes))
	pendingKeys := make(map[string]struct{}, len(g.Routes))

	for _, r := range g.Routes {
		method := strings.ToUpper(r.Method)
		if !slices.Contains(knownMethods, method) {
			return fmt.Errorf("%w: %q in group %q", ErrInvalidMethod, r.Method, g.Name)
		}
		if r.Path != "" && !strings.HasPrefix(r.Path, "/") {
			return fmt.Errorf("%w: %q in group %q must start with '/'", ErrInvalidPath, r.Path, g.Name)
		}
		if r.Handler == nil {
			return fmt.Errorf("%w: %s %s in group %q", ErrNilHandler, method, r.Path, g.Name)
		}

		path := joinPath(prefix, r.Path)

		if method == http.MethodOptions {
			t.logger.Warn().
				Str("group", g.Name).
				Str("path", path).
				Msg("explicit OPTIONS route ignored, preflight is answered by the CORS layer")
			continue
		}

		key := collisionKey(method, path)
		if owner, ok := t.keys[key]; ok {
			return fmt.Errorf("%w: %s %s (group %q, first registered by %q)",
				ErrRouteCollision, method, path, g.Name, owner)
		}
		if _, ok := pendingKeys[key]; ok {
			return fmt.Errorf("%w: %s %s declared twice in group %q",
				ErrRouteCollision, method, path, g.Name)
		}
		pendingKeys[key] = struct{}{}

		pending = append(pending, Entry{Method: method, Path: path, Group: g.Name, Handler: r.Handler})
	}

	for _, e := range pending {
		t.keys[collisionKey(e.Method, e.Path)] = g.Name
		t.entries = append(t.entries, e)
	}

	t.logger.Debug().
		Str("group", g.Name).
		Str("prefix", prefix).
		Int("routes", len(pending)).
		Msg("route group mounted")

	return nil
}

// Seal freezes the table. Further Mount calls fail with ErrTableSealed.
func (t *Table) Seal() {
	t.sealed = true
}

func (t *Table) Sealed() bool {
	return t.sealed
}

// Routes returns the mounted entries in registration order.
func (t *Table) Routes() []Entry {
	return slices.Clone(t.entries)
}

// Paths returns every distinct mounted path in first-registration order.
func (t *Table) Paths() []string {
	paths := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if !slices.Contains(paths, e.Path) {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// Lookup reports whether method is mounted on path. Paths are compared by
// their pattern, so "/movies/{id}" matches only itself.
func (t *Table) Lookup(method, path string) (Entry, bool) {
	key := collisionKey(strings.ToUpper(method), path)
	for _, e := range t.entries {
		if collisionKey(e.Method, e.Path) == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of mounted routes.
func (t *Table) Len() int {
	return len(t.entries)
}

// joinPath concatenates prefix and sub-path. Trailing slashes are dropped
// because the router strips them from incoming requests.
func joinPath(prefix, sub string) string {
	p := strings.TrimRight(prefix, "/")
	s := strings.TrimRight(sub, "/")

	if p+s == "" {
		return "/"
	}
	return p + s
}

// collisionKey identifies a route independently of URL parameter names:
// "/movies/{id}" and "/movies/{movieID:[0-9]+}" occupy the same slot.
func collisionKey(method, path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segments[i] = "{}"
		}
	}
	return method + " " + strings.Join(segments, "/")
}
