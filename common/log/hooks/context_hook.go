package hooks

import (
	"runtime/debug"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Adds the file:line of the logging call site to every entry.
type contextHook struct {
}

func NewContextHook() contextHook {
	return contextHook{}
}

func (hook contextHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook contextHook) Fire(entry *log.Entry) error {
	if src := callSite(string(debug.Stack())); src != "" {
		entry.Data["file:line"] = src
	}
	return nil
}

// callSite returns the first frame of ours below logrus in a goroutine stack dump,
// trimmed to the path inside this module.
func callSite(stack string) string {
	lines := strings.Split(stack, "\n")
	foundLoggerBlock := false
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if strings.Contains(line, "context_hook.go:") {
			foundLoggerBlock = true
			continue
		}
		if !foundLoggerBlock || !strings.HasPrefix(line, "/") {
			continue
		}
		if strings.Contains(line, "sirupsen/logrus") {
			continue
		}
		ctx := strings.Split(line, "taskscaler/")
		src := ctx[len(ctx)-1]
		if j := strings.Index(src, " +0x"); j >= 0 {
			src = src[:j]
		}
		return src
	}
	return ""
}
