package lightcycle

import (
	"bytes"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	ring := New()
	ring.Observe(LogObserver(log.NewLogfmtLogger(&buf)))

	ring.Add(&testShard{name: "b"})
	ring.Add(&testShard{name: "a"})

	out := buf.String()
	require.Contains(t, out, `level=debug`)
	require.Contains(t, out, `msg="ring changed"`)
	require.Contains(t, out, `nodes=2`)
	require.Contains(t, out, `ids=a,b`)
}

func TestLogObserver_NilLogger(t *testing.T) {
	ring := New()
	ring.Observe(LogObserver(nil))

	require.NotPanics(t, func() {
		ring.Add(&testShard{name: "a"})
		_, _ = ring.Remove("a")
	})
}
