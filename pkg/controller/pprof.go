package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// at the root.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}

// PprofHandler mounts PprofMux under prefix, e.g. "/debug/pprof/". pprof.Index
// resolves named profiles from the full request path, so only the routing is
// done on the stripped path.
func PprofHandler(prefix string) http.Handler {
	prefix = strings.TrimSuffix(prefix, "/")
	mux := PprofMux()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, prefix)
		switch rest {
		case "/cmdline", "/profile", "/symbol", "/trace":
			http.StripPrefix(prefix, mux).ServeHTTP(w, r)
		default:
			pprof.Index(w, r)
		}
	})
}
