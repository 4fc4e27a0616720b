package config

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupTracing configures tracing from c. Trace levels are taken from keys
// tracelevel.<selector>, the adapter from key tracing.adapter.
//
// If log.file is set, trace output goes to this file, which is rotated by
// size. The returned Closer closes the file.
func SetupTracing(c *Conf) (io.Closer, error) {
	goAdapter := gologadapter.GetAdapter()
	logrusAdapter := logrusadapter.GetAdapter()
	var closer io.Closer = nopCloser{}
	if file := c.GetString("log.file"); file != "" {
		out := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    c.GetInt("log.maxsize"),
			MaxBackups: c.GetInt("log.maxbackups"),
		}
		goAdapter = pinnedTo(out, goAdapter)
		logrusAdapter = pinnedTo(out, logrusAdapter)
		closer = out
	}
	tracing.RegisterTraceAdapter("go", goAdapter, true)
	tracing.RegisterTraceAdapter("logrus", logrusAdapter, true)
	if err := trace2go.ConfigureRoot(c, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		closer.Close()
		return nil, err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("tracing configured with adapter %q", c.GetString("tracing.adapter"))
	return closer, nil
}

// pinnedOutput is a tracer with a fixed output. trace2go sets the output of
// each tracer it creates, which would override our log file.
type pinnedOutput struct {
	tracing.Trace
}

func (pinnedOutput) SetOutput(io.Writer) {}

func pinnedTo(w io.Writer, adapter tracing.Adapter) tracing.Adapter {
	return func() tracing.Trace {
		t := adapter()
		t.SetOutput(w)
		return pinnedOutput{t}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
