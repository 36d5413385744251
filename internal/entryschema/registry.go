package entryschema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/validation"
)

// ErrUnknownEntryType is returned for a section whose stored type has no schema.
var ErrUnknownEntryType = errors.New("unknown entry type")

// Registry selects and applies the schema for an entry type.
type Registry struct {
	validate *validator.Validate
}

// NewRegistry creates a registry validating with v.
func NewRegistry(v *validator.Validate) *Registry {
	return &Registry{validate: v}
}

func newDraft(entryType model.EntryType) (Draft, error) {
	if !entryType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntryType, entryType)
	}
	switch entryType {
	case model.EntryTypeSkill:
		return &SkillDraft{}, nil
	case model.EntryTypeProject:
		return &ProjectDraft{}, nil
	case model.EntryTypeProfessionalExperience:
		return &ProfessionalExperienceDraft{}, nil
	case model.EntryTypeEducation:
		return &EducationDraft{}, nil
	case model.EntryTypeCourse:
		return &CourseDraft{}, nil
	case model.EntryTypeCustom:
		return &CustomDraft{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEntryType, entryType)
}

// Parse decodes payload against the schema of entryType only. Every violation
// is reported in a single *errors.ValidationError; a body shaped for another
// entry type fails here instead of being coerced.
func (r *Registry) Parse(entryType model.EntryType, payload []byte) (Draft, error) {
	draft, err := newDraft(entryType)
	if err != nil {
		return nil, err
	}

	var issues []validation.Issue
	if err := json.Unmarshal(payload, draft); err != nil {
		// A field-level type mismatch leaves the rest of the draft decoded, so
		// the schema still runs over it. Anything else aborts here.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return nil, apperrors.NewValidationError(validation.Issues(err))
		}
		issues = validation.Issues(err)
	}
	if err := r.validate.Struct(draft); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil, err
		}
		issues = mergeIssues(issues, validation.Issues(err))
	}
	if len(issues) > 0 {
		return nil, apperrors.NewValidationError(issues)
	}
	return draft, nil
}

// mergeIssues appends extra to base, dropping issues on a path base already
// reports.
func mergeIssues(base, extra []validation.Issue) []validation.Issue {
	seen := make(map[string]struct{}, len(base))
	for _, issue := range base {
		seen[issue.Path] = struct{}{}
	}
	for _, issue := range extra {
		if _, ok := seen[issue.Path]; ok {
			continue
		}
		base = append(base, issue)
	}
	return base
}
