package store

import (
	"fmt"
	"strings"

	"github.com/modelingevolution/clickup/internal/domain"
	"github.com/modelingevolution/clickup/pkg/clickup"
	"github.com/modelingevolution/clickup/pkg/idgen"
)

// AddField defines a custom field on a list. An empty ID is generated.
func (s *Store) AddField(listID string, field clickup.CustomFieldDefinition) (clickup.CustomFieldDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[listID]; !ok {
		return clickup.CustomFieldDefinition{}, domain.NewListNotFoundError(listID)
	}
	if strings.TrimSpace(field.Name) == "" || field.Type == "" {
		return clickup.CustomFieldDefinition{}, domain.NewValidationError("Custom field name and type are required")
	}
	if field.ID == "" {
		field.ID = idgen.FieldID()
	}
	if _, taken := s.fields[field.ID]; taken {
		return clickup.CustomFieldDefinition{}, domain.NewValidationError("Custom field " + field.ID + " already exists")
	}
	if field.DateCreated == nil {
		field.DateCreated = clickup.String(s.timestamp())
	}
	if field.TypeConfig != nil {
		for i := range field.TypeConfig.Options {
			opt := &field.TypeConfig.Options[i]
			if opt.ID == "" {
				opt.ID = idgen.FieldID()
			}
			opt.OrderIndex = i
		}
	}

	s.fields[field.ID] = &fieldRecord{record: s.nextRecord(), listID: listID, field: field}
	return field, nil
}

// Fields returns the custom fields accessible on a list.
func (s *Store) Fields(listID string) ([]clickup.CustomFieldDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.lists[listID]; !ok {
		return nil, domain.NewListNotFoundError(listID)
	}
	records := s.listFields(listID)
	out := make([]clickup.CustomFieldDefinition, 0, len(records))
	for _, r := range records {
		out = append(out, r.field)
	}
	return out, nil
}

func (s *Store) listFields(listID string) []*fieldRecord {
	var records []*fieldRecord
	for _, r := range s.fields {
		if r.listID == listID {
			records = append(records, r)
		}
	}
	return sortedBySeq(records, func(r *fieldRecord) int { return r.seq })
}

// SetFieldValue sets the value of a custom field on a task.
func (s *Store) SetFieldValue(taskID, fieldID string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return domain.NewTaskNotFoundError(taskID)
	}
	if err := s.checkField(task.listID, fieldID, value); err != nil {
		return err
	}
	task.values[fieldID] = value
	task.task.DateUpdated = clickup.String(s.timestamp())
	return nil
}

// RemoveFieldValue clears the value of a custom field on a task.
func (s *Store) RemoveFieldValue(taskID, fieldID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return domain.NewTaskNotFoundError(taskID)
	}
	field, ok := s.fields[fieldID]
	if !ok || field.listID != task.listID {
		return domain.NewFieldNotFoundError(fieldID)
	}
	delete(task.values, fieldID)
	task.task.DateUpdated = clickup.String(s.timestamp())
	return nil
}

// checkField verifies that the field is defined on the list and that value
// fits its type.
func (s *Store) checkField(listID, fieldID string, value interface{}) error {
	field, ok := s.fields[fieldID]
	if !ok || field.listID != listID {
		return domain.NewFieldNotFoundError(fieldID)
	}
	if value == nil {
		return domain.NewValidationError("Value is required")
	}

	def := field.field
	switch def.Type {
	case "number", "currency", "rating":
		if _, ok := value.(float64); !ok {
			return invalidValue(def, value)
		}
	case "text", "short_text", "email", "url", "phone":
		if _, ok := value.(string); !ok {
			return invalidValue(def, value)
		}
	case "checkbox":
		if _, ok := value.(bool); !ok {
			return invalidValue(def, value)
		}
	case "drop_down":
		if !hasOption(def.TypeConfig, value) {
			return invalidValue(def, value)
		}
	}
	return nil
}

func invalidValue(def clickup.CustomFieldDefinition, value interface{}) error {
	return domain.NewValidationError(fmt.Sprintf("Value %v is not valid for %s field %q", value, def.Type, def.Name))
}

// hasOption accepts an option ID or an option orderindex.
func hasOption(cfg *clickup.CustomFieldTypeConfig, value interface{}) bool {
	if cfg == nil {
		return false
	}
	for _, opt := range cfg.Options {
		switch v := value.(type) {
		case string:
			if v == opt.ID {
				return true
			}
		case float64:
			if int(v) == opt.OrderIndex && float64(opt.OrderIndex) == v {
				return true
			}
		}
	}
	return false
}

// taskFields renders every field of the task's list with the task's value.
func (s *Store) taskFields(r *taskRecord) []clickup.TaskCustomField {
	records := s.listFields(r.listID)
	out := make([]clickup.TaskCustomField, 0, len(records))
	for _, f := range records {
		tf := clickup.TaskCustomField{
			ID:             f.field.ID,
			Name:           f.field.Name,
			Type:           f.field.Type,
			DateCreated:    f.field.DateCreated,
			HideFromGuests: f.field.HideFromGuests,
			Required:       f.field.Required,
			Value:          r.values[f.field.ID],
		}
		if f.field.TypeConfig != nil {
			tf.TypeConfig = f.field.TypeConfig
		}
		out = append(out, tf)
	}
	return out
}
