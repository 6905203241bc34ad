package logger

import (
	"bytes"
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPrefixedLogger_Warning(t *testing.T) {
	var buf bytes.Buffer
	l := NewPrefixed(NewSimpleWriter(&buf), "Net")

	l.Warning("timeout")

	assert.Equal(t, "[WARNING] [Net] timeout\n", buf.String())
}

func TestPrefixedLogger_SeverityMethodsUseOwnLog(t *testing.T) {
	for _, sc := range severityCalls {
		t.Run(sc.level.String(), func(t *testing.T) {
			var viaMethod, viaLog bytes.Buffer

			// Called through the interface to make sure dispatch does not
			// depend on the static type.
			var l Logger = NewPrefixed(NewSimpleWriter(&viaMethod), "Net")
			sc.call(l, "hello")
			NewPrefixed(NewSimpleWriter(&viaLog), "Net").Log(sc.level, "hello")

			assert.Equal(t, viaLog.String(), viaMethod.String())
			assert.Contains(t, viaMethod.String(), "] [Net] hello")
		})
	}
}

func TestPrefixedLogger_LogExceptionSkipsPrefix(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		trace string
	}{
		{"plain", errors.New("boom"), ""},
		{"explicit trace", errors.New("boom"), "frame 1"},
		{"carried stack", pkgerrors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var direct, wrapped bytes.Buffer

			NewSimpleWriter(&direct).LogException(tt.err, tt.trace)
			NewPrefixed(NewSimpleWriter(&wrapped), "Net").LogException(tt.err, tt.trace)

			assert.Equal(t, direct.String(), wrapped.String())
			assert.NotContains(t, wrapped.String(), "[Net]")
		})
	}
}

func TestPrefixedLogger_SetPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewPrefixed(NewSimpleWriter(&buf), "Net")
	assert.Equal(t, "Net", l.Prefix())

	l.SetPrefix("Disk")
	l.Info("mounted")

	assert.Equal(t, "Disk", l.Prefix())
	assert.Equal(t, "[INFO] [Disk] mounted\n", buf.String())
}

func TestPrefixedLogger_Nested(t *testing.T) {
	var buf bytes.Buffer
	inner := NewPrefixed(NewSimpleWriter(&buf), "Inner")
	outer := NewPrefixed(inner, "Outer")

	outer.Notice("x")

	assert.Equal(t, "[NOTICE] [Inner] [Outer] x\n", buf.String())
	assert.Same(t, inner, outer.Delegate())
}
