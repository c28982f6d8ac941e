// Package report carries diagnostics and presentation output for callers of
// the ladder and dijkstra engines. A Reporter is always passed explicitly;
// nothing in this module writes to a process-wide stream.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Reporter writes human-readable results to out, diagnostic lines to diag,
// and mirrors every diagnostic to a structured logger.
type Reporter struct {
	out  io.Writer
	diag io.Writer
	log  *slog.Logger
}

// New builds a Reporter. A nil writer discards its output; a nil logger
// discards structured records.
func New(out, diag io.Writer, logger *slog.Logger) *Reporter {
	if out == nil {
		out = io.Discard
	}
	if diag == nil {
		diag = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Reporter{out: out, diag: diag, log: logger}
}

// Discard returns a Reporter that drops everything.
func Discard() *Reporter {
	return New(nil, nil, nil)
}

// Logger exposes the structured logger for callers that add their own records.
func (r *Reporter) Logger() *slog.Logger {
	return r.log
}

// Error reports a problem involving two words:
//
//	Error: <msg> (<word1>, <word2>)
func (r *Reporter) Error(word1, word2, msg string) {
	fmt.Fprintf(r.diag, "Error: %s (%s, %s)\n", msg, word1, word2)
	r.log.Error(msg, "word1", word1, "word2", word2)
}

// Errorf reports a free-form problem as "Error: <formatted message>".
func (r *Reporter) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.diag, "Error: %s\n", msg)
	r.log.Error(msg)
}

// PrintLadder writes "No word ladder found." for an empty ladder, otherwise
// "Word ladder found: " followed by the space-separated words.
func (r *Reporter) PrintLadder(ladder []string) {
	if len(ladder) == 0 {
		fmt.Fprintln(r.out, "No word ladder found.")
		return
	}
	fmt.Fprintf(r.out, "Word ladder found: %s\n", strings.Join(ladder, " "))
}

// PrintPath writes the vertex ids of path separated by spaces, then
// "Total cost is <total>" on its own line.
func (r *Reporter) PrintPath(path []int, total int64) {
	ids := make([]string, len(path))
	for i, v := range path {
		ids[i] = strconv.Itoa(v)
	}
	fmt.Fprintf(r.out, "%s\nTotal cost is %d\n", strings.Join(ids, " "), total)
}

// PrintUnreachable writes "No path from <source> to <target>." for a target
// the shortest-path search never reached.
func (r *Reporter) PrintUnreachable(source, target int) {
	fmt.Fprintf(r.out, "No path from %d to %d.\n", source, target)
}
