package mobile

import (
	"net/http"

	"xiangqi/internal/logx"
	httpserver "xiangqi/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2999"
func StartServer(webDir string, port string) {
	log := logx.NewLogger()

	mux := http.NewServeMux()
	mux.Handle("/api/", httpserver.NewHandler(log))
	mux.Handle("/", http.FileServer(http.Dir(webDir)))

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}()
}
