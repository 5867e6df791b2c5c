package logger

import "log/slog"

type Backend string

const (
	BackendStd Backend = "std" // text handler; fine for dev
	BackendZap Backend = "zap" // sampled JSON via slog-zap
)

type Config struct {
	// Identity attrs attached to every record
	Service    string
	Version    string
	InstanceID string

	Level   slog.Level
	Env     Env
	Backend Backend // default: zap outside dev
	Debug   bool

	// Zap sampling
	SampleInitial    int
	SampleThereafter int

	AddSource bool
}
