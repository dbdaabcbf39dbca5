// Package idgen generates identifiers shaped like the ones ClickUp assigns.
package idgen

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	// TaskPrefix starts every generated task ID.
	TaskPrefix = "86"
	// TaskIDLength is the number of random characters after the prefix.
	TaskIDLength = 7

	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// TaskID creates a short lowercase alphanumeric task ID such as "86b1x9zqa".
func TaskID() (string, error) {
	buf := make([]byte, TaskIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return TaskPrefix + string(buf), nil
}

// MustTaskID creates a new task ID, panicking on error.
func MustTaskID() string {
	id, err := TaskID()
	if err != nil {
		panic(err)
	}
	return id
}

// FieldID creates a custom field ID. ClickUp uses UUIDs for these.
func FieldID() string {
	return uuid.NewString()
}

// Sequence hands out increasing numeric string IDs, as ClickUp uses for
// workspaces, spaces, folders and lists. It is safe for concurrent use.
type Sequence struct {
	next atomic.Int64
}

// NewSequence creates a sequence whose first ID is start.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.next.Store(start)
	return s
}

// Next returns the next ID.
func (s *Sequence) Next() string {
	return strconv.FormatInt(s.next.Add(1)-1, 10)
}
