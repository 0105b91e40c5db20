package pulse

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger writes "[pulse]" prefixed lines. Debug lines are dropped unless
// debug output is enabled. A nil *Logger discards everything.
type Logger struct {
	out   io.Writer
	debug bool
}

// NewLogger returns a logger writing to out. A nil out means os.Stderr.
func NewLogger(out io.Writer, debug bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, debug: debug}
}

// SetDebug enables or disables debug lines.
func (l *Logger) SetDebug(enabled bool) {
	if l != nil {
		l.debug = enabled
	}
}

// Debugf logs a line when debug output is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.debug {
		return
	}
	_, _ = fmt.Fprintf(l.out, "[pulse] "+format+"\n", args...)
}

// Warnf always logs.
func (l *Logger) Warnf(format string, args ...any) {
	if l == nil {
		return
	}
	_, _ = fmt.Fprintf(l.out, "[pulse] warning: "+format+"\n", args...)
}

// frameStats accumulates update and draw timings between reports.
// Only populated when the game runs in debug mode.
type frameStats struct {
	frames     int
	updateTime time.Duration
	drawTime   time.Duration
}

// debugStatsInterval is how many frames are averaged per stats line.
const debugStatsInterval = 300

// record adds one frame and reports averages every debugStatsInterval frames.
func (st *frameStats) record(log *Logger, update, draw time.Duration) {
	st.frames++
	st.updateTime += update
	st.drawTime += draw
	if st.frames < debugStatsInterval {
		return
	}
	n := time.Duration(st.frames)
	log.Debugf("update: %v | draw: %v | frames: %d",
		st.updateTime/n, st.drawTime/n, st.frames)
	*st = frameStats{}
}
