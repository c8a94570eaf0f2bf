package cors

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// Options is the user-facing policy configuration.
type Options struct {
	// Origins lists allowed origins. "*" allows any origin; entries of the
	// form "https://*.example.com" allow every subdomain of example.com.
	Origins []string
	// Methods lists permitted HTTP methods, announced on preflight.
	Methods []string
	// AllowHeaders lists permitted request headers, announced on preflight.
	// "*" echoes whatever the browser asks for.
	AllowHeaders []string
	// ExposeHeaders lists response headers readable by browser scripts.
	ExposeHeaders []string
	// MaxAge is the preflight cache lifetime in seconds; 0 omits the header.
	MaxAge int
	// SupportsCredentials emits Access-Control-Allow-Credentials.
	SupportsCredentials bool
	// SendWildcard answers "*" instead of echoing the origin when any
	// origin is allowed. Ignored when credentials are supported.
	SendWildcard bool
}

// Policy is a validated, immutable CORS policy.
type Policy struct {
	anyOrigin bool
	origins   originSet

	methods   []string
	methodSet map[string]struct{}

	allowHeaders   []string
	anyHeader      bool
	exposeHeaders  []string
	maxAge         int
	credentials    bool
	sendWildcard   bool
	configOrigins  []string
	allowMethods   string
	allowHeaderVal string
	exposeVal      string
}

// Request is the metadata a policy decision depends on.
type Request struct {
	// Origin is the value of the Origin header, empty for same-origin or
	// non-browser callers.
	Origin string
	// Method is the HTTP method of the request itself.
	Method string
	// RequestMethod is Access-Control-Request-Method of a preflight.
	RequestMethod string
	// RequestHeaders is Access-Control-Request-Headers of a preflight.
	RequestHeaders []string
}

// Decision is the outcome of evaluating a request against a policy.
type Decision struct {
	// Headers are the response headers to attach.
	Headers http.Header
	// Preflight reports whether the request was an OPTIONS preflight.
	Preflight bool
	// OriginAllowed reports whether Access-Control-Allow-Origin was granted.
	OriginAllowed bool
	// MethodAllowed reports whether the (requested) method is in the policy.
	MethodAllowed bool
}

// NewPolicy validates opts and returns the resolved policy. Every field must
// resolve: no origins, no methods or no allowed headers is an error, as is
// an invalid method or header token or a negative max age.
func NewPolicy(opts Options) (*Policy, error) {
	anyOrigin, origins, err := parseOrigins(opts.Origins)
	if err != nil {
		return nil, err
	}

	methods, err := normalizeMethods(opts.Methods)
	if err != nil {
		return nil, err
	}

	allowHeaders, anyHeader, err := normalizeHeaders(opts.AllowHeaders, true)
	if err != nil {
		return nil, err
	}
	if len(allowHeaders) == 0 && !anyHeader {
		return nil, fmt.Errorf("%w: at least one allowed header is required", ErrInvalidPolicy)
	}

	exposeHeaders, _, err := normalizeHeaders(opts.ExposeHeaders, false)
	if err != nil {
		return nil, err
	}

	if opts.MaxAge < 0 {
		return nil, fmt.Errorf("%w: max age %d is negative", ErrInvalidPolicy, opts.MaxAge)
	}

	p := &Policy{
		anyOrigin:     anyOrigin,
		origins:       origins,
		methods:       methods,
		methodSet:     make(map[string]struct{}, len(methods)),
		allowHeaders:  allowHeaders,
		anyHeader:     anyHeader,
		exposeHeaders: exposeHeaders,
		maxAge:        opts.MaxAge,
		credentials:   opts.SupportsCredentials,
		sendWildcard:  opts.SendWildcard,
		configOrigins: slices.Clone(opts.Origins),
	}
	for _, m := range methods {
		p.methodSet[m] = struct{}{}
	}
	p.allowMethods = strings.Join(methods, ", ")
	p.allowHeaderVal = strings.Join(allowHeaders, ", ")
	p.exposeVal = strings.Join(exposeHeaders, ", ")

	return p, nil
}

// Options returns the normalized configuration the policy was built from.
func (p *Policy) Options() Options {
	allow := slices.Clone(p.allowHeaders)
	if p.anyHeader {
		allow = append(allow, wildcard)
	}

	return Options{
		Origins:             slices.Clone(p.configOrigins),
		Methods:             slices.Clone(p.methods),
		AllowHeaders:        allow,
		ExposeHeaders:       slices.Clone(p.exposeHeaders),
		MaxAge:              p.maxAge,
		SupportsCredentials: p.credentials,
		SendWildcard:        p.sendWildcard,
	}
}

// Methods returns the permitted methods in configured order.
func (p *Policy) Methods() []string {
	return slices.Clone(p.methods)
}

// AllowsMethod reports whether method is in the policy.
func (p *Policy) AllowsMethod(method string) bool {
	_, ok := p.methodSet[strings.ToUpper(method)]
	return ok
}

// AllowsOrigin reports whether a request from origin would be granted
// Access-Control-Allow-Origin.
func (p *Policy) AllowsOrigin(origin string) bool {
	if p.anyOrigin {
		return true
	}
	return origin != "" && p.origins.contains(origin)
}

// Evaluate computes the CORS response headers for req.
func (p *Policy) Evaluate(req Request) Decision {
	d := Decision{
		Headers:   make(http.Header),
		Preflight: req.Method == http.MethodOptions,
	}

	if p.variesByOrigin() {
		d.Headers.Add(HeaderVary, HeaderOrigin)
	}

	allowOrigin := p.allowOriginValue(req.Origin)
	if allowOrigin == "" {
		return d
	}
	d.OriginAllowed = true
	d.Headers.Set(HeaderAccessControlAllowOrigin, allowOrigin)

	if p.credentials {
		d.Headers.Set(HeaderAccessControlAllowCredentials, "true")
	}

	if !d.Preflight {
		d.MethodAllowed = p.AllowsMethod(req.Method)
		if p.exposeVal != "" {
			d.Headers.Set(HeaderAccessControlExposeHeaders, p.exposeVal)
		}
		return d
	}

	// a preflight asking for a verb outside the policy gets no method or
	// header grants, which makes the browser fail the actual request
	if req.RequestMethod != "" && !p.AllowsMethod(req.RequestMethod) {
		return d
	}
	d.MethodAllowed = true

	d.Headers.Set(HeaderAccessControlAllowMethods, p.allowMethods)
	if v := p.allowHeadersValue(req.RequestHeaders); v != "" {
		d.Headers.Set(HeaderAccessControlAllowHeaders, v)
	}
	if p.maxAge > 0 {
		d.Headers.Set(HeaderAccessControlMaxAge, strconv.Itoa(p.maxAge))
	}

	return d
}

// Handler attaches the evaluated headers to every response of next. It does
// not short-circuit: preflights are answered by the router so that unknown
// paths still produce 404.
func (p *Policy) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := p.Evaluate(RequestFrom(r))

		header := w.Header()
		for key, values := range d.Headers {
			if key == HeaderVary {
				for _, v := range values {
					header.Add(key, v)
				}
				continue
			}
			header[key] = values
		}

		next.ServeHTTP(w, r)
	})
}

// RequestFrom extracts the policy-relevant metadata from r.
func RequestFrom(r *http.Request) Request {
	req := Request{
		Origin:        r.Header.Get(HeaderOrigin),
		Method:        r.Method,
		RequestMethod: r.Header.Get(HeaderAccessControlRequestMethod),
	}

	for _, line := range r.Header.Values(HeaderAccessControlRequestHeaders) {
		for _, h := range strings.Split(line, ",") {
			if h = strings.TrimSpace(h); h != "" {
				req.RequestHeaders = append(req.RequestHeaders, h)
			}
		}
	}

	return req
}

func (p *Policy) variesByOrigin() bool {
	return !(p.anyOrigin && p.sendWildcard && !p.credentials)
}

func (p *Policy) allowOriginValue(origin string) string {
	if p.anyOrigin {
		switch {
		case origin == "" && p.credentials:
			// "*" together with credentials is refused by browsers
			return ""
		case origin == "":
			return wildcard
		case p.sendWildcard && !p.credentials:
			return wildcard
		default:
			return origin
		}
	}

	if origin != "" && p.origins.contains(origin) {
		return origin
	}
	return ""
}

func (p *Policy) allowHeadersValue(requested []string) string {
	if !p.anyHeader {
		return p.allowHeaderVal
	}

	if len(requested) == 0 {
		return p.allowHeaderVal
	}

	echoed := make([]string, 0, len(requested))
	for _, h := range requested {
		if isToken(h) {
			echoed = append(echoed, http.CanonicalHeaderKey(h))
		}
	}
	return strings.Join(echoed, ", ")
}

func normalizeMethods(methods []string) ([]string, error) {
	if len(methods) == 0 {
		return nil, fmt.Errorf("%w: at least one method is required", ErrInvalidPolicy)
	}

	out := make([]string, 0, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if !isToken(m) {
			return nil, fmt.Errorf("%w: invalid method %q", ErrInvalidPolicy, m)
		}
		if !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	return out, nil
}

func normalizeHeaders(headers []string, wildcardAllowed bool) ([]string, bool, error) {
	out := make([]string, 0, len(headers))
	anyHeader := false

	for _, h := range headers {
		h = strings.TrimSpace(h)
		if h == wildcard && wildcardAllowed {
			anyHeader = true
			continue
		}
		if !isToken(h) {
			return nil, false, fmt.Errorf("%w: invalid header name %q", ErrInvalidPolicy, h)
		}
		h = http.CanonicalHeaderKey(h)
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out, anyHeader, nil
}

// isToken reports whether s is a non-empty RFC 9110 token.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0:
		default:
			return false
		}
	}
	return true
}
