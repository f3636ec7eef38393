package bytebuffer

import (
	"io"
	"os"

	"github.com/performancecopilot/bitcursor/hexdump"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// diagnosticContext is how many bytes before a failure the diagnostic dump starts
const diagnosticContext = 32

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stderr}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

func init() {
	logging = false
	initializeLogger()
}

// EnableLogging turns failure diagnostics on if true is passed
// and off if false is passed.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing
// logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.DebugLevel,
	))
}

// fail logs a failed operation along with a dump of the bytes around the
// position and hands err back unchanged
func (b *ByteBuffer) fail(op string, err error) error {
	if !logging {
		return err
	}

	start := b.pos - diagnosticContext
	if start < 0 {
		start = 0
	}

	logger.Error("operation failed",
		zap.String("op", op),
		zap.Int("offset", b.pos),
		zap.Int("bitOffset", b.bit),
		zap.Int("length", len(b.buffer)),
		zap.Bool("strict", b.strict),
		zap.Error(err),
	)
	logger.Debug("buffer at failure\n" + hexdump.Dump(b.buffer, hexdump.Options{Start: start, Mark: b.pos, Marked: true}))

	return err
}

// HexDump renders the buffer without moving the position, marking the current
// offset unless opts already marks one
func (b *ByteBuffer) HexDump(opts hexdump.Options) string {
	if b.closed {
		return ""
	}
	if !opts.Marked {
		opts.Mark, opts.Marked = b.pos, true
	}
	return hexdump.Dump(b.buffer, opts)
}
