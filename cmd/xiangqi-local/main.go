package main

import (
	"flag"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"xiangqi/internal/config"
	"xiangqi/internal/logx"
	httpserver "xiangqi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（服务器环境可能没有图形界面）
}

func main() {
	log := logx.NewLogger()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	addr := flag.String("addr", cfg.Server.Addr, "listen address")
	webDir := flag.String("web", cfg.Server.WebDir, "directory with index.html / js / svg")
	mobileDir := flag.String("web-mobile", cfg.Server.MobileWebDir, "directory with mobile assets")
	noBrowser := flag.Bool("no-browser", !cfg.Server.OpenBrowser, "do not open the default browser")
	flag.Parse()

	mux := http.NewServeMux()
	mux.Handle("/api/", httpserver.NewHandler(log))
	httpserver.RegisterStaticRoutes(mux, *webDir, *mobileDir)

	log.Info().Str("addr", *addr).Str("web", *webDir).Msg("listening")

	if !*noBrowser {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
