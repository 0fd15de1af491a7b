package tinyjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{"nil", nil, true},
		{"default", DefaultConfig(), false},
		{"zero sizes", &Config{}, false},
		{"negative initial", &Config{InitialStackSize: -1}, true},
		{"negative element", &Config{ElementStackSize: -1}, true},
		{"negative stringify", &Config{StringifyStackSize: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				var opErr *OperationError
				assert.True(t, errors.As(err, &opErr))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfigAppliesDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, DefaultInitialStackSize, cfg.InitialStackSize)
	assert.Equal(t, DefaultElementStackSize, cfg.ElementStackSize)
	assert.Equal(t, DefaultStringifyStackSize, cfg.StringifyStackSize)
}

func TestNewWithConfig(t *testing.T) {
	_, err := NewWithConfig(&Config{ElementStackSize: -4})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg := DefaultConfig()
	c, err := NewWithConfig(cfg)
	require.NoError(t, err)

	// the codec keeps its own copy
	cfg.RawStrings = true
	assert.False(t, c.Config().RawStrings)
}

func TestNewPanicsOnInvalidConfig(t *testing.T) {
	assert.Panics(t, func() {
		New(&Config{InitialStackSize: -1})
	})
	assert.NotPanics(t, func() {
		New()
		New(nil)
	})
}

func TestCodecUnmarshalNil(t *testing.T) {
	err := New().Unmarshal([]byte("1"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilValue)
	_, ok := CodeOf(err)
	assert.False(t, ok)
}

func TestCodecUnmarshalReplaces(t *testing.T) {
	c := New()
	v := mustParse(t, `{"old":[1,2,3]}`)
	require.NoError(t, c.Unmarshal([]byte(`"new"`), &v))
	assert.Equal(t, "new", string(v.StringBytes()))
}

func TestCodeOf(t *testing.T) {
	code, ok := CodeOf(nil)
	assert.True(t, ok)
	assert.Equal(t, CodeOK, code)

	wrapped := fmt.Errorf("reading config: %w", newParseError(CodeMissColon, 4))
	code, ok = CodeOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeMissColon, code)
	assert.ErrorIs(t, wrapped, ErrMissColon)
	assert.ErrorIs(t, wrapped, &ParseError{Code: CodeMissColon})
	assert.NotErrorIs(t, wrapped, &ParseError{Code: CodeMissKey})

	_, ok = CodeOf(errors.New("other"))
	assert.False(t, ok)
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "ok", CodeOK.String())
	assert.Equal(t, "miss comma or curly bracket", CodeMissCommaOrCurlyBracket.String())
	assert.Equal(t, "ErrorCode(99)", ErrorCode(99).String())
	assert.Nil(t, CodeOK.Err())
	assert.Nil(t, ErrorCode(99).Err())

	err := newParseError(CodeInvalidValue, 12)
	assert.Equal(t, "JSON parse failed at offset 12: invalid value", err.Error())

	out, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"code":2,"offset":12}`, string(out))
}

func TestCodecConcurrentParse(t *testing.T) {
	c := New()
	docs := []string{
		`{"a":[1,2,3],"b":{"c":"d"}}`,
		`[true,false,null,"é"]`,
		`{"a":1,}`,
		`[1,2`,
		`"plain"`,
	}

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				doc := docs[(i+j)%len(docs)]
				v, err := c.Parse(doc)
				valid := c.Valid(doc)
				if (err == nil) != valid {
					return fmt.Errorf("Parse and Valid disagree on %q", doc)
				}
				if err != nil {
					continue
				}
				out := c.Stringify(&v)
				back, err := c.ParseBytes(out)
				if err != nil {
					return fmt.Errorf("reparse %q: %w", out, err)
				}
				if !bytes.Equal(out, c.Stringify(&back)) {
					return fmt.Errorf("unstable output for %q", doc)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestCodecLogsParseFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := DefaultConfig()
	cfg.Logger = logger
	c := New(cfg)

	_, err := c.Parse(`{"key" 1}`)
	require.Error(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "JSON parse failed", rec["msg"])
	assert.Equal(t, "tinyjson", rec["component"])
	assert.Equal(t, "miss colon", rec["code"])
	assert.Equal(t, float64(7), rec["offset"])
	assert.Equal(t, "1}", rec["near"])
}

func TestCodecLoggingRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New()
	c.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	_, err := c.Parse("nul")
	require.Error(t, err)
	v := mustParse(t, "[1]")
	c.Stringify(&v)
	assert.Empty(t, buf.String())

	c.SetLogger(NoopLogger())
	assert.False(t, c.Valid("]"))
}

func TestCodecStringifyLogs(t *testing.T) {
	var buf bytes.Buffer
	c := New()
	c.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	v := mustParse(t, `{"a":1}`)
	c.Stringify(&v)
	assert.Contains(t, buf.String(), "JSON stringify completed")
	assert.Contains(t, buf.String(), "type=object")
	assert.Contains(t, buf.String(), "bytes=7")
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "", snippet("abc", 3, 10))
	assert.Equal(t, "abc", snippet("abc", -1, 10))
	assert.Equal(t, "bc", snippet("abc", 1, 10))
	assert.Equal(t, "ab...", snippet(strings.Repeat("ab", 10), 0, 5))
	assert.Equal(t, "ab", truncateString("abcd", 2))
}

func TestCodecMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	cfg := DefaultConfig()
	cfg.Metrics = m
	c := New(cfg)

	v, err := c.Parse("[1,2]")
	require.NoError(t, err)
	_, err = c.Parse("[1,2")
	require.Error(t, err)
	c.Valid("true")
	c.Stringify(&v)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.parses.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parses.WithLabelValues("miss comma or square bracket")))
	assert.Equal(t, 13.0, testutil.ToFloat64(m.parsedBytes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stringifies))

	count, err := testutil.GatherAndCount(reg, "tinyjson_stringify_bytes")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilMetricsRecordsNothing(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.recordParse(CodeOK, 10)
		m.recordStringify(10)
	})
}

func TestSetDefaultCodec(t *testing.T) {
	prev := defaultCodec()
	t.Cleanup(func() { SetDefaultCodec(prev) })

	cfg := DefaultConfig()
	cfg.RawStrings = true
	SetDefaultCodec(New(cfg))
	SetDefaultCodec(nil)

	v, err := Parse(`"a\nb"`)
	require.NoError(t, err)
	assert.Equal(t, "\"a\nb\"", string(Stringify(&v)))

	// encoding/json output is escaped even with RawStrings
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"a\nb"`, string(out))
}

func TestPutContextDropsOversizedStacks(t *testing.T) {
	c := New()
	ctx := c.getContext()
	ctx.bytes.Push(MaxPooledStackSize + 1)
	ctx.bytes.Reset()
	c.putContext(ctx)

	// a fresh context comes back from the pool
	next := c.getContext()
	assert.LessOrEqual(t, next.bytes.Cap(), MaxPooledStackSize)
	c.putContext(next)
}
