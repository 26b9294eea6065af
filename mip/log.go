package mip

// Logger receives solver progress messages. The default is a no-op;
// pass WithLogger to NewModel to capture output.
type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}
