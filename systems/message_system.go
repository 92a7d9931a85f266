package systems

import (
	"fmt"
	"strings"
	"sync"
)

// MessageLog stores recent status lines shown by the viewers.
// It implements io.Writer so a logger can write straight into it.
type MessageLog struct {
	mu          sync.Mutex
	messages    []string
	maxMessages int
}

// Global message log instance (singleton)
var (
	globalMessageLog *MessageLog
	globalOnce       sync.Once
)

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	globalOnce.Do(func() {
		globalMessageLog = NewMessageLog(100)
	})
	return globalMessageLog
}

// NewMessageLog creates a message log keeping the last maxMessages lines
func NewMessageLog(maxMessages int) *MessageLog {
	return &MessageLog{
		messages:    []string{},
		maxMessages: max(maxMessages, 1),
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.messages = append(ml.messages, message)

	// Truncate if we have too many messages
	if len(ml.messages) > ml.maxMessages {
		ml.messages = ml.messages[len(ml.messages)-ml.maxMessages:]
	}
}

// Addf formats and adds a message
func (ml *MessageLog) Addf(format string, args ...any) {
	ml.Add(fmt.Sprintf(format, args...))
}

// Write adds each non-empty line of p as a message
func (ml *MessageLog) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			ml.Add(line)
		}
	}
	return len(p), nil
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	n = min(max(n, 0), len(ml.messages))
	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.messages[len(ml.messages)-1-i]
	}
	return result
}

// Latest returns the newest message, or "" when the log is empty
func (ml *MessageLog) Latest() string {
	if recent := ml.RecentMessages(1); len(recent) == 1 {
		return recent[0]
	}
	return ""
}

// Len returns how many messages are stored
func (ml *MessageLog) Len() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return len(ml.messages)
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.messages = []string{}
}
