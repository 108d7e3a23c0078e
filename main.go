package main

import (
	"flag"
	"time"

	"neoncity/config"
	"neoncity/engine"
	"neoncity/game"
	"neoncity/host"
	"neoncity/logging"
	"neoncity/render"
)

// Neon City 入口：读取配置、初始化日志，构建会话并交给窗口宿主运行
func main() {
	var (
		debug bool
		fps   int
	)
	flag.BoolVar(&debug, "debug", false, "show the FPS readout")
	flag.IntVar(&fps, "fps", 0, "target frames per second, overrides NEONCITY_TARGET_FPS")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if fps > 0 {
		cfg.TargetFPS = fps
	}
	if debug {
		cfg.Debug = true
	}

	// 使用 zap 写入日志文件（带滚动）
	if err := logging.InitLogger(logging.Options{
		FilePath: cfg.LogFile,
		Level:    cfg.LogLevel,
		Console:  cfg.LogConsole,
	}); err != nil {
		panic(err)
	}
	defer logging.SyncLogger()

	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	st, err := game.New(game.Options{Seed: seed})
	if err != nil {
		logging.Log.Fatalf("build game state: %v", err)
	}
	st.ShowDebug = cfg.Debug

	r, err := render.New()
	if err != nil {
		logging.Log.Fatalf("build renderer: %v", err)
	}
	defer r.Close()

	frames := engine.NewFrameBuffer()
	session := engine.NewSession(st, r, frames, engine.Options{
		FPS:       cfg.TargetFPS,
		QueueSize: cfg.InputQueue,
	})

	logging.Log.Infof("Neon City starting; fps=%d seed=%d", cfg.TargetFPS, seed)
	session.Resume()
	err = host.Run(host.New(session, frames), host.Options{
		Title:  "Neon City",
		Width:  cfg.WindowWidth,
		Height: cfg.WindowHeight,
	})
	session.Pause()
	if err != nil {
		logging.Log.Fatalf("run: %v", err)
	}
	logging.Log.Info("Shutting down...")
}
