package cmdserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/creachadair/command"
	"github.com/creachadair/hashmoji/cmd/hashmoji/config"
	hmconfig "github.com/creachadair/hashmoji/config"
	"github.com/creachadair/hashmoji/service"
	"github.com/creachadair/mds/mtest"
)

func testEnv(t *testing.T, cfg *hmconfig.Config) *command.Env {
	t.Helper()
	mtest.Swap(t, &serverFlags, serverFlags)
	mtest.Swap(t, &config.Flags, config.Flags)
	env := (&command.C{Name: "test"}).NewEnv(nil)
	env.Log = io.Discard
	env.Config = &config.Settings{File: cfg, LogOutput: io.Discard}
	return env
}

func TestNewServer(t *testing.T) {
	file := &hmconfig.Config{
		Algorithm: "md5",
		Server: hmconfig.Server{
			Addr:  "localhost:8080",
			Allow: []string{"127.0.0.1/32"},
		},
	}
	tests := []struct {
		name              string
		addr, allow, algo string
		wantAddr          string
		wantAlgo          string
		remote            string
		wantCode          int
	}{
		{"settings", "", "", "", "localhost:8080", "md5", "127.0.0.1:5555", http.StatusOK},
		{"settings deny", "", "", "", "localhost:8080", "md5", "10.0.0.1:5555", http.StatusForbidden},
		{"flags", ":9999", "10.0.0.0/8,::1/128", "sha256", ":9999", "sha256", "10.0.0.1:5555", http.StatusOK},
		{"flags deny", ":9999", "10.0.0.0/8", "", ":9999", "md5", "127.0.0.1:5555", http.StatusForbidden},
	}
	for _, test := range tests {
		env := testEnv(t, file)
		serverFlags.Addr = test.addr
		serverFlags.Allow = test.allow
		config.Flags.Algorithm = test.algo

		srv, err := newServer(env)
		if err != nil {
			t.Fatalf("newServer %s: unexpected error: %v", test.name, err)
		}
		if srv.Addr != test.wantAddr {
			t.Errorf("newServer %s: addr is %q, want %q", test.name, srv.Addr, test.wantAddr)
		}
		if got := srv.Handler.(*service.Server).Algorithm; got != test.wantAlgo {
			t.Errorf("newServer %s: algorithm is %q, want %q", test.name, got, test.wantAlgo)
		}

		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = test.remote
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)
		if rec.Code != test.wantCode {
			t.Errorf("newServer %s: GET / from %s: got status %d, want %d", test.name, test.remote, rec.Code, test.wantCode)
		}
	}
}

func TestNewServerErrors(t *testing.T) {
	tests := []struct {
		name              string
		addr, allow, algo string
	}{
		{"no address", "", "", ""},
		{"bad allow", ":9999", "not-a-cidr", ""},
		{"bad algorithm", ":9999", "", "nonesuch"},
	}
	for _, test := range tests {
		env := testEnv(t, &hmconfig.Config{})
		serverFlags.Addr = test.addr
		serverFlags.Allow = test.allow
		config.Flags.Algorithm = test.algo
		if srv, err := newServer(env); err == nil {
			t.Errorf("newServer %s: got %+v, want error", test.name, srv)
		}
	}
}
