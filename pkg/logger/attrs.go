package logger

import (
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
)

const defaultService = "emo-backend"

func ensureService(v string) string {
	if v == "" {
		return defaultService
	}
	return v
}

// An explicit instance id wins so deployments can inject their own;
// otherwise hostname plus a short random suffix keeps replicas apart.
func ensureInstanceID(v string) string {
	if v != "" {
		return v
	}

	hn, _ := os.Hostname()
	return hn + "-" + uuid.New().String()[:8]
}

// commonAttrs is attached to every record emitted by the process.
func commonAttrs(cfg Config) []slog.Attr {
	return []slog.Attr{
		slog.String("service", cfg.Service),
		slog.String("env", string(cfg.Env)),
		slog.String("version", cfg.Version),
		slog.String("instance_id", cfg.InstanceID),
		slog.String("runtime", runtime.Version()),
		slog.Time("started_at", time.Now()),
	}
}
