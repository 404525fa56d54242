package lightcycle

import (
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// LogObserver returns an Observer which logs ring membership changes to l
// at debug level. A nil l falls back to a no-op logger.
func LogObserver(l log.Logger) Observer {
	if l == nil {
		l = log.NewNopLogger()
	}

	return FuncObserver(func(nodes []Node) {
		ids := make([]string, len(nodes))
		for i, n := range nodes {
			ids[i] = n.ID()
		}
		level.Debug(l).Log("msg", "ring changed", "nodes", len(ids), "ids", strings.Join(ids, ","))
	})
}
