package service_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/creachadair/hashmoji/service"
	"github.com/creachadair/hashmoji/symtab"
	"github.com/google/go-cmp/cmp"
)

func do(t *testing.T, s *service.Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestFingerprint(t *testing.T) {
	s := &service.Server{}
	tests := []struct {
		target, body string
		want         service.Result
	}{
		{"/fingerprint", "This is my test string.", service.Result{
			Algorithm:   "sha1",
			Mode:        "text",
			Bytes:       23,
			Fingerprint: "📱 🔢 📩 🚦📲",
			Symbols:     []string{"📱", "🔢", "📩", "🚦", "📲"},
		}},
		{"/fingerprint?mode=hex", "8dc102c3edef79cd0bc080c18b18a2e5637c64c3\n", service.Result{
			Mode:        "hex",
			Bytes:       41,
			Fingerprint: "📱 🔢 📩 🚦📲",
			Symbols:     []string{"📱", "🔢", "📩", "🚦", "📲"},
		}},
		{"/fingerprint?mode=binary&nohash=true", "\x00\x00\x00\x00\xff\xff\xff\xff", service.Result{
			Mode:        "binary",
			Bytes:       8,
			Fingerprint: symtab.At(1) + symtab.At(symtab.Len-1),
			Symbols:     []string{symtab.At(1), symtab.At(symtab.Len - 1)},
		}},
	}
	for _, test := range tests {
		rec := do(t, s, http.MethodPost, test.target, test.body)
		if rec.Code != http.StatusOK {
			t.Errorf("POST %s: got status %d, want %d (%s)", test.target, rec.Code, http.StatusOK, rec.Body)
			continue
		}
		var got service.Result
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Errorf("POST %s: decode: %v", test.target, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("POST %s (-want, +got):\n%s", test.target, diff)
		}
	}
}

func TestDefaultAlgorithm(t *testing.T) {
	s := &service.Server{Algorithm: "md5"}
	rec := do(t, s, http.MethodPost, "/fingerprint?mode=binary", "abc")
	var got service.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Decode: %v (%s)", err, rec.Body)
	}
	if got.Algorithm != "md5" || got.Fingerprint != "👛 💮 🏈🎣" {
		t.Errorf("Result: got %+v, want md5 👛 💮 🏈🎣", got)
	}
}

func TestErrors(t *testing.T) {
	s := &service.Server{MaxBytes: 64}
	tests := []struct {
		method, target, body string
		code                 int
	}{
		{"GET", "/nonesuch", "", http.StatusNotFound},
		{"GET", "/fingerprint", "", http.StatusMethodNotAllowed},
		{"POST", "/table", "", http.StatusMethodNotAllowed},
		{"POST", "/fingerprint?mode=octal", "", http.StatusBadRequest},
		{"POST", "/fingerprint?nohash=true", "abcd", http.StatusBadRequest},
		{"POST", "/fingerprint?mode=binary&nohash=1", "abc", http.StatusBadRequest},
		{"POST", "/fingerprint?algorithm=nonesuch", "abc", http.StatusNotFound},
		{"POST", "/fingerprint?algorithm=blake2b:30", "abc", http.StatusUnprocessableEntity},
		{"POST", "/fingerprint?encoding=klingon", "abc", http.StatusBadRequest},
		{"POST", "/fingerprint?mode=hex", "8dc1zz", http.StatusBadRequest},
		{"POST", "/fingerprint?mode=binary", strings.Repeat("x", 65), http.StatusRequestEntityTooLarge},
	}
	for _, test := range tests {
		rec := do(t, s, test.method, test.target, test.body)
		if rec.Code != test.code {
			t.Errorf("%s %s: got status %d, want %d (%s)", test.method, test.target, rec.Code, test.code, rec.Body)
		}
	}
}

func TestHostFilter(t *testing.T) {
	hf, err := service.NewHostFilter([]string{"10.0.0.0/8", "::1/128"})
	if err != nil {
		t.Fatalf("NewHostFilter: unexpected error: %v", err)
	}
	s := &service.Server{Allow: hf}
	tests := []struct {
		remote string
		code   int
	}{
		{"10.1.2.3:5555", http.StatusOK},
		{"[::1]:5555", http.StatusOK},
		{"192.0.2.1:1234", http.StatusForbidden},
		{"bogus", http.StatusForbidden},
	}
	for _, test := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = test.remote
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		if rec.Code != test.code {
			t.Errorf("GET / from %q: got status %d, want %d", test.remote, rec.Code, test.code)
		}
	}

	if _, err := service.NewHostFilter([]string{"not-a-cidr"}); err == nil {
		t.Error("NewHostFilter(not-a-cidr): got nil error, want error")
	}
	if !(service.HostFilter{}).Contains("192.0.2.1") {
		t.Error("Empty filter does not contain 192.0.2.1")
	}
}

func TestTable(t *testing.T) {
	s := &service.Server{}
	rec := do(t, s, http.MethodGet, "/table", "")
	var got []service.TableEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != symtab.Len {
		t.Fatalf("Table: got %d entries, want %d", len(got), symtab.Len)
	}
	want := service.TableEntry{Index: 136, Refs: "U+1F1E9 U+1F1EA", Symbol: "\U0001F1E9\U0001F1EA"}
	if diff := cmp.Diff(want, got[136]); diff != "" {
		t.Errorf("Table[136] (-want, +got):\n%s", diff)
	}

	html := do(t, s, http.MethodGet, "/table.html", "")
	if html.Code != http.StatusOK {
		t.Fatalf("GET /table.html: got status %d, want %d", html.Code, http.StatusOK)
	}
	// The template escapes "+" in code point references.
	for _, want := range []string{"U&#43;1F1E9 U&#43;1F1EA", "\U0001F1E9\U0001F1EA"} {
		if !strings.Contains(html.Body.String(), want) {
			t.Errorf("GET /table.html: body missing %q", want)
		}
	}
}

func TestAlgorithms(t *testing.T) {
	rec := do(t, &service.Server{}, http.MethodGet, "/algorithms", "")
	var got []service.AlgorithmInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	found := false
	for _, a := range got {
		if a.Name == "sha1" {
			found = true
			if a.Size != 20 || !a.Compatible {
				t.Errorf("Algorithm sha1: got %+v", a)
			}
		}
	}
	if !found {
		t.Errorf("Algorithms: sha1 not listed in %+v", got)
	}
}
