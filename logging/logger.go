package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 全局 SugaredLogger；未初始化前为 no-op，测试与库代码可直接调用
var Log = zap.NewNop().Sugar()

// rotator 当前的滚动文件，由 SyncLogger 关闭
var rotator *lumberjack.Logger

// Options 日志初始化参数
type Options struct {
	FilePath string // 日志文件路径，如 "neoncity.log"
	Level    string // debug/info/warn/error
	Console  bool   // 同时输出到 stderr
}

// InitLogger 初始化 zap 日志到本地文件（支持滚动）
func InitLogger(opts Options) error {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		lv, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return err
		}
		level = lv
	}

	// 文件滚动策略：10MB 每文件，保留3个备份
	lj := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   false,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewConsoleEncoder(encCfg)
	core := zapcore.NewCore(encoder, zapcore.AddSync(lj), level)
	if opts.Console {
		core = zapcore.NewTee(core, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
	}

	rotator = lj
	Log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

// SyncLogger 退出前刷新缓冲并关闭当前日志文件；之后的写入会重新打开文件
func SyncLogger() {
	_ = Log.Sync()
	if rotator != nil {
		_ = rotator.Close()
	}
}
