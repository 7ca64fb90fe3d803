//go:build ignore

// ====================================================
// serves the wasm build of the page
//
// usage :
// 	go run build.go web
// 	go run run_web.go
//
// When the folder has no index.html, a page that
// loads firstx.wasm is served instead, and
// wasm_exec.js is taken from GOROOT.
// ====================================================

package main

import (
	"flag"
	"fmt"
	"math"
	"net/http"
	"path/filepath"
	"runtime"
	"time"

	"firstx/misc"
)

var (
	TargetFolder string
	Port         uint
)

func init() {
	flag.StringVar(&TargetFolder, "folder", "./web_build", "folder to serve")
	flag.UintVar(&Port, "port", 6969, "port")
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>FIRSTX</title>
<style>html, body { margin: 0; background: #050505; overflow: hidden; }</style>
</head>
<body>
<script src="wasm_exec.js"></script>
<script>
const go = new Go();
WebAssembly.instantiateStreaming(fetch("firstx.wasm"), go.importObject).then(result => {
	go.run(result.instance);
});
</script>
</body>
</html>
`

func main() {
	flag.Parse()

	if Port > math.MaxUint16 {
		misc.ErrLogger.Fatalf("port %v is bigger than max port value", Port)
	}

	if !filepath.IsLocal(TargetFolder) {
		misc.ErrLogger.Fatalf("%s is not a local folder", TargetFolder)
	}

	wasmPath := filepath.Join(TargetFolder, "firstx.wasm")
	if !fileExists(wasmPath) {
		misc.WarnLogger.Printf("%s does not exist, run \"go run build.go web\" first", wasmPath)
	}

	mux := http.NewServeMux()
	mux.Handle("/", ServeIndex(http.FileServer(http.Dir(TargetFolder))))
	mux.HandleFunc("/wasm_exec.js", ServeWasmExec)

	misc.InfoLogger.Printf("serving %s", TargetFolder)
	misc.InfoLogger.Printf("listening to http://localhost:%v", Port)

	err := http.ListenAndServe(fmt.Sprintf(":%v", Port), NoCache(mux))
	if err != nil {
		misc.ErrLogger.Fatal(err)
	}
}

// ServeIndex answers "/" with indexPage unless the folder has its own.
func ServeIndex(files http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			if !fileExists(filepath.Join(TargetFolder, "index.html")) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				fmt.Fprint(w, indexPage)
				return
			}
		}
		if filepath.Ext(r.URL.Path) == ".wasm" {
			w.Header().Set("Content-Type", "application/wasm")
		}
		files.ServeHTTP(w, r)
	})
}

func fileExists(path string) bool {
	exists, err := misc.CheckFileExists(path)
	if err != nil {
		misc.WarnLogger.Printf("failed to check %s: %v", path, err)
	}
	return exists
}

func ServeWasmExec(w http.ResponseWriter, r *http.Request) {
	local := filepath.Join(TargetFolder, "wasm_exec.js")
	if fileExists(local) {
		http.ServeFile(w, r, local)
		return
	}

	// moved from misc/wasm to lib/wasm in go 1.24
	for _, dir := range []string{"lib/wasm", "misc/wasm"} {
		path := filepath.Join(runtime.GOROOT(), dir, "wasm_exec.js")
		if fileExists(path) {
			http.ServeFile(w, r, path)
			return
		}
	}

	http.Error(w, "wasm_exec.js not found in GOROOT", http.StatusNotFound)
}

// copied from https://stackoverflow.com/questions/33880343/go-webserver-dont-cache-files-using-timestamp

var epoch = time.Unix(0, 0).Format(time.RFC1123)

var noCacheHeaders = map[string]string{
	"Expires":         epoch,
	"Cache-Control":   "no-cache, private, max-age=0",
	"Pragma":          "no-cache",
	"X-Accel-Expires": "0",
}

var etagHeaders = []string{
	"ETag",
	"If-Modified-Since",
	"If-Match",
	"If-None-Match",
	"If-Range",
	"If-Unmodified-Since",
}

func NoCache(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		for _, v := range etagHeaders {
			if r.Header.Get(v) != "" {
				r.Header.Del(v)
			}
		}

		for k, v := range noCacheHeaders {
			w.Header().Set(k, v)
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
