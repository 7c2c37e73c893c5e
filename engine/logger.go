package engine

import (
	"fmt"
	"os"
	"time"
)

// LogInfo is one structured log line: either a turn applied to the live
// game or a completed search level.
type LogInfo struct {
	Timestamp     time.Time
	Event         string // "turn", "search", "undo", "reset", ...
	TurnText      string
	Score         string
	Level         int
	StatesVisited int64
	Duration      time.Duration
}

// Logger writes LogInfo lines to a file from a single background goroutine,
// so a slow disk never blocks the rules engine or the search hot path.
type Logger struct {
	file  *os.File
	queue chan LogInfo
	done  chan struct{}
}

// NewLogger opens (appending/creating) filename and starts its writer.
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		file:  file,
		queue: make(chan LogInfo, 256),
		done:  make(chan struct{}),
	}
	go l.writer()
	return l, nil
}

// Log enqueues info; if the queue is full the line is dropped rather than
// blocking the caller.
func (l *Logger) Log(info LogInfo) {
	if l == nil {
		return
	}
	select {
	case l.queue <- info:
	default:
		fmt.Fprintln(os.Stderr, "kdl: log queue full, dropping entry")
	}
}

// Close drains the queue and closes the file. Safe to call once.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	close(l.queue)
	<-l.done
	return l.file.Close()
}

func (l *Logger) writer() {
	for info := range l.queue {
		line := fmt.Sprintf("%s | %-6s | turn=%-24s | score=%-10s | level=%-3d | states=%-10d | dur=%s\n",
			info.Timestamp.Format("2006-01-02 15:04:05.000"),
			info.Event,
			info.TurnText,
			info.Score,
			info.Level,
			info.StatesVisited,
			info.Duration.Round(time.Millisecond),
		)
		if _, err := l.file.WriteString(line); err != nil {
			fmt.Fprintln(os.Stderr, "kdl: log write failed:", err)
		}
	}
	close(l.done)
}
