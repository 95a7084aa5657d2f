package emit

import (
	"context"
	"log/slog"
)

// LogEmitter writes events as structured slog records. Step events are
// logged at the configured level; run-level events at Info.
type LogEmitter struct {
	logger    *slog.Logger
	stepLevel slog.Level
}

// NewLogEmitter returns a LogEmitter writing step events at stepLevel.
// A nil logger falls back to slog.Default.
func NewLogEmitter(logger *slog.Logger, stepLevel slog.Level) *LogEmitter {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogEmitter{logger: logger, stepLevel: stepLevel}
}

// Emit logs event with its metadata as attributes.
func (l *LogEmitter) Emit(event Event) {
	level := slog.LevelInfo
	if event.Msg == MsgStep {
		level = l.stepLevel
	}
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, 4+len(event.Meta))
	attrs = append(attrs,
		slog.String("run_id", event.RunID),
		slog.String("algo", event.Algo),
	)
	if event.Step >= 0 {
		attrs = append(attrs, slog.Int("step", event.Step))
	}
	if event.NodeID != "" {
		attrs = append(attrs, slog.String("node", event.NodeID))
	}
	for _, k := range sortedKeys(event.Meta) {
		attrs = append(attrs, slog.Any(k, event.Meta[k]))
	}
	l.logger.LogAttrs(ctx, level, event.Msg, attrs...)
}
