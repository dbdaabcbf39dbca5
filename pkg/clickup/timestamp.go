package clickup

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// ParseMillis converts a ClickUp timestamp (milliseconds since the Unix epoch,
// as a string) to a UTC time. It reports false for empty or malformed input.
func ParseMillis(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}

// Millis converts t to the millisecond timestamp ClickUp expects in requests.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

func parseMillisPtr(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	return ParseMillis(*s)
}

// Created returns the task creation time.
func (t *Task) Created() (time.Time, bool) {
	return parseMillisPtr(t.DateCreated)
}

// Updated returns the time of the last task update.
func (t *Task) Updated() (time.Time, bool) {
	return parseMillisPtr(t.DateUpdated)
}

// Due returns the task due date.
func (t *Task) Due() (time.Time, bool) {
	return parseMillisPtr(t.DueDate)
}

// DecodeTypeConfig decodes the field's untyped type_config.
// A field without type_config yields a nil config and no error.
func (f *TaskCustomField) DecodeTypeConfig() (*CustomFieldTypeConfig, error) {
	if f.TypeConfig == nil {
		return nil, nil
	}

	var cfg CustomFieldTypeConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(f.TypeConfig); err != nil {
		return nil, fmt.Errorf("failed to decode type_config of field %s: %w", f.ID, err)
	}
	return &cfg, nil
}
