package feed

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mkovari/costline/internal/domain"
)

// Mutation is one client edit, already dispatched to a concrete variant.
// The operation kind and target kind are decided once here at the boundary,
// never re-sniffed per field downstream.
type Mutation interface {
	mutation()
}

// TaskInsert creates a free-standing line item.
type TaskInsert struct {
	Description string
	StartDate   *time.Time
	Duration    *int
	Responsible string
	Owner       string
}

// TaskUpdate carries a partial edit: only non-nil fields are written.
// StartDate and Duration writes become the item's manual override and are
// never re-derived afterward.
type TaskUpdate struct {
	ID          string
	StartDate   *time.Time
	Duration    *int
	Progress    *float64 // 0..1, client convention
	Responsible *string
	Owner       *string
}

// TaskDelete removes a line item.
type TaskDelete struct {
	ID string
}

// LinkInsert creates a dependency link.
type LinkInsert struct {
	SourceID string
	TargetID string
	Type     string
}

// LinkUpdate changes a link's type code.
type LinkUpdate struct {
	ID   string
	Type string
}

// LinkDelete removes a link.
type LinkDelete struct {
	ID string
}

func (TaskInsert) mutation() {}
func (TaskUpdate) mutation() {}
func (TaskDelete) mutation() {}
func (LinkInsert) mutation() {}
func (LinkUpdate) mutation() {}
func (LinkDelete) mutation() {}

var validStatuses = []any{"inserted", "updated", "deleted"}

// ParseMutation decodes one client edit from form values. The same keys work
// for JSON bodies; the HTTP layer flattens them into url.Values first.
//
// A mutation is a link edit when both source and target are supplied (or the
// client tagged it with kind=link); otherwise it targets a task. Group rows
// (grp_ ids) reject edits outright.
func ParseMutation(form url.Values) (Mutation, error) {
	id := form.Get("id")
	status := form.Get("status")
	if status == "" {
		// dhtmlxGantt posts the operation under this key.
		status = form.Get("!nativeeditor_status")
	}

	if err := validation.Validate(status, validation.Required, validation.In(validStatuses...)); err != nil {
		return nil, fmt.Errorf("status %q: %w", status, err)
	}
	if IsGroupID(id) {
		return nil, fmt.Errorf("record %s is a project group and cannot be edited", id)
	}

	isLink := form.Get("kind") == "link" ||
		(form.Has("source") && form.Has("target"))

	if isLink {
		return parseLinkMutation(form, id, status)
	}
	return parseTaskMutation(form, id, status)
}

func parseLinkMutation(form url.Values, id, status string) (Mutation, error) {
	linkType := form.Get("type")
	if linkType == "" {
		linkType = domain.DefaultLinkType
	}
	switch status {
	case "inserted":
		source, target := form.Get("source"), form.Get("target")
		if source == "" || target == "" {
			return nil, fmt.Errorf("link insert needs source and target")
		}
		if IsGroupID(source) || IsGroupID(target) {
			return nil, fmt.Errorf("links cannot attach to project groups")
		}
		return LinkInsert{SourceID: source, TargetID: target, Type: linkType}, nil
	case "updated":
		if id == "" {
			return nil, fmt.Errorf("link update needs an id")
		}
		return LinkUpdate{ID: id, Type: linkType}, nil
	default:
		if id == "" {
			return nil, fmt.Errorf("link delete needs an id")
		}
		return LinkDelete{ID: id}, nil
	}
}

func parseTaskMutation(form url.Values, id, status string) (Mutation, error) {
	switch status {
	case "inserted":
		m := TaskInsert{
			Description: form.Get("text"),
			Responsible: form.Get("responsible"),
			Owner:       form.Get("owner"),
		}
		if form.Has("start_date") {
			t, err := parseDate(form.Get("start_date"))
			if err != nil {
				return nil, err
			}
			m.StartDate = &t
		}
		if form.Has("duration") {
			d, err := parseDuration(form.Get("duration"))
			if err != nil {
				return nil, err
			}
			m.Duration = &d
		}
		return m, nil

	case "updated":
		if id == "" {
			return nil, fmt.Errorf("task update needs an id")
		}
		m := TaskUpdate{ID: id}
		if form.Has("start_date") {
			t, err := parseDate(form.Get("start_date"))
			if err != nil {
				return nil, err
			}
			m.StartDate = &t
		}
		if form.Has("duration") {
			d, err := parseDuration(form.Get("duration"))
			if err != nil {
				return nil, err
			}
			m.Duration = &d
		}
		if form.Has("progress") {
			p, err := strconv.ParseFloat(form.Get("progress"), 64)
			if err != nil {
				return nil, fmt.Errorf("parsing progress: %w", err)
			}
			if err := validation.Validate(p, validation.Min(0.0), validation.Max(1.0)); err != nil {
				return nil, fmt.Errorf("progress %v: %w", p, err)
			}
			m.Progress = &p
		}
		if form.Has("responsible") {
			v := form.Get("responsible")
			m.Responsible = &v
		}
		if form.Has("owner") {
			v := form.Get("owner")
			m.Owner = &v
		}
		return m, nil

	default:
		if id == "" {
			return nil, fmt.Errorf("task delete needs an id")
		}
		return TaskDelete{ID: id}, nil
	}
}

// parseDate accepts the client's date strings, which may carry a time part
// ("2025-06-16 00:00"); only the leading date is kept.
func parseDate(s string) (time.Time, error) {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

func parseDuration(s string) (int, error) {
	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing duration: %w", err)
	}
	if err := validation.Validate(d, validation.Min(0)); err != nil {
		return 0, fmt.Errorf("duration %d: %w", d, err)
	}
	return d, nil
}
