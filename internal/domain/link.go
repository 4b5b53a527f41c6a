package domain

// DependencyLink connects two line items on the timeline. Links are
// advisory: the Gantt client draws them, but computed start/finish dates are
// driven purely by ordinal order, never by links.
type DependencyLink struct {
	ID       string
	SourceID string
	TargetID string
	Type     string // short client code, "0" = finish-to-start
}
