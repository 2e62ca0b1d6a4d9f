// internal/pkg/notify/notify.go
package notify

import "github.com/sirupsen/logrus"

// Level classifies a user-facing notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
)

// Notice is one user-facing message produced while handling a request.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier is the capability the cart and order flows use to talk to the
// user. It is injected by the caller; domain code never touches a global
// toast channel.
type Notifier interface {
	Success(message string)
	Info(message string)
	Warn(message string)
	Error(message string)
}

// Collector gathers notices for a single request so the handler can return
// them in the response body. It mirrors each notice into the structured log.
type Collector struct {
	log     logrus.FieldLogger
	notices []Notice
}

// NewCollector creates a request-scoped collector. The logger may be nil.
func NewCollector(log logrus.FieldLogger) *Collector {
	return &Collector{log: log}
}

func (c *Collector) Success(message string) { c.add(LevelSuccess, message) }
func (c *Collector) Info(message string)    { c.add(LevelInfo, message) }
func (c *Collector) Warn(message string)    { c.add(LevelWarn, message) }
func (c *Collector) Error(message string)   { c.add(LevelError, message) }

// Notices returns everything collected so far, never nil.
func (c *Collector) Notices() []Notice {
	if c.notices == nil {
		return []Notice{}
	}
	return c.notices
}

func (c *Collector) add(level Level, message string) {
	c.notices = append(c.notices, Notice{Level: level, Message: message})
	if c.log == nil {
		return
	}
	entry := c.log.WithField("notice_level", string(level))
	switch level {
	case LevelError:
		entry.Error(message)
	case LevelWarn:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}

// Discard is a Notifier that drops everything. Useful for flows where the
// caller has no user to talk to.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Info(string)    {}
func (Discard) Warn(string)    {}
func (Discard) Error(string)   {}
