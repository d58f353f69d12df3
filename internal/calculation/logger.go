package calculation

// Logger is a minimal logging interface for the projection engine. The CLI
// backs it with logrus; library callers get NopLogger unless they set one.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// prefixedLogger tags every message with the snapshot it belongs to.
type prefixedLogger struct {
	base   Logger
	prefix string
}

func withPrefix(l Logger, name string) Logger {
	if l == nil {
		l = NopLogger{}
	}
	if name == "" {
		return l
	}
	return prefixedLogger{base: l, prefix: "[" + name + "] "}
}

func (p prefixedLogger) Debugf(format string, args ...any) { p.base.Debugf(p.prefix+format, args...) }
func (p prefixedLogger) Infof(format string, args ...any)  { p.base.Infof(p.prefix+format, args...) }
func (p prefixedLogger) Warnf(format string, args ...any)  { p.base.Warnf(p.prefix+format, args...) }
func (p prefixedLogger) Errorf(format string, args ...any) { p.base.Errorf(p.prefix+format, args...) }
