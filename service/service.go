// Package service implements an HTTP service that renders request bodies as
// hashmoji fingerprints.
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/creachadair/hashmoji"
	"github.com/creachadair/hashmoji/digests"
	"github.com/creachadair/hashmoji/source"
	"github.com/creachadair/hashmoji/symtab"
	"github.com/rs/zerolog"
	"github.com/valyala/bytebufferpool"
)

// A HostFilter is a slice of CIDR masks defining a set of addresses allowed to
// make requests of the service.
type HostFilter []*net.IPNet

// NewHostFilter constructs a host filter from the specified CIDR strings.
func NewHostFilter(masks []string) (HostFilter, error) {
	m := make(HostFilter, len(masks))
	for i, cidr := range masks {
		_, ipnet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, err
		}
		m[i] = ipnet
	}
	return m, nil
}

// Contains reports whether any of the masks in the filter covers host, which
// must be an IPv4 or IPv6 address without a port.  If the filter is empty,
// this is true by default.
func (h HostFilter) Contains(host string) bool {
	if len(h) == 0 {
		return true
	}
	ip := net.ParseIP(host)
	for _, m := range h {
		if m.Contains(ip) {
			return true
		}
	}
	return false
}

// CheckAllow reports an error if the host from req.RemoteAddr is invalid or
// does not match any of the masks in h.
func (h HostFilter) CheckAllow(req *http.Request) error {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return errors.New("invalid host address")
	} else if h.Contains(host) {
		return nil
	}
	return errors.New("caller is not allowed")
}

// DefaultMaxBytes is the request body limit used when Server.MaxBytes is 0.
const DefaultMaxBytes = 16 << 20

// Server carries the settings for a fingerprint service. It implements
// http.Handler.
type Server struct {
	// Callers whose addresses are not admitted by Allow get
	// http.StatusForbidden. An empty filter admits everyone.
	Allow HostFilter

	// The hash algorithm used when a request does not name one.
	// If empty, digests.Default is used.
	Algorithm string

	// The maximum accepted request body size in bytes.
	// If zero, DefaultMaxBytes is used.
	MaxBytes int64

	// Log receives a record of each request. The zero value discards them.
	Log zerolog.Logger
}

// Result is the JSON response for a fingerprint request.
type Result struct {
	Algorithm   string   `json:"algorithm,omitempty"`
	Mode        string   `json:"mode"`
	Bytes       int64    `json:"bytes"`
	Fingerprint string   `json:"fingerprint"`
	Symbols     []string `json:"symbols"`
}

// TableEntry is one row of the symbol table as served by /table.
type TableEntry struct {
	Index  int    `json:"index" yaml:"index"`
	Refs   string `json:"refs" yaml:"refs"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// AlgorithmInfo describes a registered algorithm as served by /algorithms.
type AlgorithmInfo struct {
	Name       string `json:"name"`
	Size       int    `json:"size"`
	Compatible bool   `json:"compatible"`
}

// httpError is an error carrying an HTTP status code.
type httpError struct {
	code int
	err  error
}

func (h httpError) Error() string { return h.err.Error() }
func (h httpError) Unwrap() error { return h.err }

func errorf(code int, msg string, args ...any) error {
	return httpError{code: code, err: fmt.Errorf(msg, args...)}
}

// ServeHTTP implements http.Handler for the fingerprint service.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	err := s.serveInternal(w, req)
	if err == nil {
		s.Log.Debug().Str("method", req.Method).Str("path", req.URL.Path).Msg("ok")
		return
	}
	code := statusCode(err)
	s.Log.Info().Err(err).Int("code", code).Str("method", req.Method).Str("path", req.URL.Path).Msg("request failed")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	fmt.Fprintln(w, err.Error())
}

func statusCode(err error) int {
	var he httpError
	switch {
	case errors.As(err, &he):
		return he.code
	case errors.Is(err, hashmoji.ErrIncompatibleDigest):
		return http.StatusUnprocessableEntity
	case errors.Is(err, hashmoji.ErrInvalidByteLength),
		errors.Is(err, source.ErrTextNoHash),
		errors.Is(err, source.ErrUnknownEncoding),
		errors.Is(err, source.ErrInvalidText):
		return http.StatusBadRequest
	case errors.Is(err, digests.ErrUnknownAlgorithm):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) serveInternal(w http.ResponseWriter, req *http.Request) error {
	if err := s.Allow.CheckAllow(req); err != nil {
		return errorf(http.StatusForbidden, "request forbidden: %w", err)
	}
	route, ok := routes[req.URL.Path]
	if !ok {
		return errorf(http.StatusNotFound, "unknown path %q", req.URL.Path)
	} else if req.Method != route.method {
		return errorf(http.StatusMethodNotAllowed, "unsupported method %q", req.Method)
	}
	return route.serve(s, w, req)
}

type route struct {
	method string
	serve  func(*Server, http.ResponseWriter, *http.Request) error
}

var routes = map[string]route{
	"/":            {http.MethodGet, (*Server).serveMenu},
	"/algorithms":  {http.MethodGet, (*Server).serveAlgorithms},
	"/table":       {http.MethodGet, (*Server).serveTable},
	"/table.html":  {http.MethodGet, (*Server).serveTableHTML},
	"/fingerprint": {http.MethodPost, (*Server).serveFingerprint},
}

func (s *Server) serveMenu(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, `Routes:
  GET  /algorithms   -- the available hash algorithms (JSON)
  GET  /table        -- the symbol table (JSON)
  GET  /table.html   -- the symbol table (HTML)
  POST /fingerprint  -- fingerprint the request body (JSON)

Fingerprint parameters:
  algorithm=name     -- hash algorithm (default `+s.algorithm()+`)
  mode=text          -- read the body as text, binary, or hex
  nohash=true        -- use binary body bytes as the digest
  encoding=utf-8     -- text encoding for text mode
`)
	return nil
}

func (s *Server) serveAlgorithms(w http.ResponseWriter, _ *http.Request) error {
	var out []AlgorithmInfo
	for _, a := range digests.All() {
		out = append(out, AlgorithmInfo{Name: a.Name, Size: a.Size, Compatible: a.Compatible()})
	}
	return writeJSON(w, out)
}

func (s *Server) serveTable(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, Table())
}

func (s *Server) serveTableHTML(w http.ResponseWriter, _ *http.Request) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := tableHTML.Execute(buf, Table()); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

func (s *Server) serveFingerprint(w http.ResponseWriter, req *http.Request) error {
	// Parameters come from the URL only; the body is the data to fingerprint.
	q := req.URL.Query()
	opts := source.Options{
		Algorithm: q.Get("algorithm"),
		Encoding:  q.Get("encoding"),
	}
	if opts.Algorithm == "" {
		opts.Algorithm = s.algorithm()
	}
	if m := q.Get("mode"); m != "" {
		if err := opts.Mode.Set(m); err != nil {
			return errorf(http.StatusBadRequest, "%w", err)
		}
	}
	if nh := parseBool(q.Get("nohash")); nh != nil {
		opts.NoHash = *nh
	}

	body := &countReader{r: http.MaxBytesReader(w, req.Body, s.maxBytes())}
	in, err := opts.Read(body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return errorf(http.StatusRequestEntityTooLarge, "request body exceeds %d bytes", mbe.Limit)
		}
		return err
	}
	syms, err := hashmoji.Symbols(in)
	if err != nil {
		return err
	}
	res := Result{
		Mode:        opts.Mode.String(),
		Bytes:       body.n,
		Fingerprint: hashmoji.Join(syms),
		Symbols:     syms,
	}
	if opts.Hashed() {
		res.Algorithm = opts.Algorithm
	}
	return writeJSON(w, res)
}

func (s *Server) algorithm() string {
	if s.Algorithm == "" {
		return digests.Default
	}
	return s.Algorithm
}

func (s *Server) maxBytes() int64 {
	if s.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return s.MaxBytes
}

// Table returns the symbol table in display order.
func Table() []TableEntry {
	out := make([]TableEntry, symtab.Len)
	for i := range out {
		out[i] = TableEntry{Index: i, Refs: symtab.Refs(i), Symbol: symtab.At(i)}
	}
	return out
}

// writeJSON encodes v as JSON into a pooled buffer and writes it to w. A
// value that fails to encode writes nothing.
func writeJSON(w http.ResponseWriter, v any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, err := buf.WriteTo(w)
	return err
}

func parseBool(s string) *bool {
	if s != "" {
		v, err := strconv.ParseBool(s)
		if err == nil {
			return &v
		}
	}
	return nil
}

// countReader counts the bytes read through it.
type countReader struct {
	r io.Reader
	n int64
}

func (c *countReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
