package tinyjson

import (
	"context"
	"log/slog"
)

// NoopLogger returns a logger that discards every record.
func NoopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// logParseFailure records a failed parse at debug level with the input
// around the failure point.
func (c *Codec) logParseFailure(text string, code ErrorCode, offset int) {
	ctx := context.Background()
	if !c.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "JSON parse failed",
		slog.String("code", code.String()),
		slog.Int("offset", offset),
		slog.Int("input_len", len(text)),
		slog.String("near", snippet(text, offset, MaxLoggedSnippet)),
	)
}

func (c *Codec) logStringify(v *Value, n int) {
	ctx := context.Background()
	if !c.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "JSON stringify completed",
		slog.String("type", v.Type().String()),
		slog.Int("bytes", n),
	)
}

// snippet returns at most maxLen bytes of text starting at offset, with an
// ellipsis when cut.
func snippet(text string, offset, maxLen int) string {
	if offset >= len(text) {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	return truncateString(text[offset:], maxLen)
}

// truncateString truncates s to maxLen bytes, ending in "..." when cut
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
