package domain

type ProjectStatus string

// Project pipeline stages, in lifecycle order. A project flagged for
// deletion is excluded from the global timeline but keeps its data until an
// administrator confirms the removal.
const (
	ProjectLead            ProjectStatus = "lead"
	ProjectSurvey          ProjectStatus = "survey"
	ProjectQuote           ProjectStatus = "quote"
	ProjectPreparation     ProjectStatus = "preparation"
	ProjectExecution       ProjectStatus = "execution"
	ProjectHandover        ProjectStatus = "handover"
	ProjectClosed          ProjectStatus = "closed"
	ProjectRejected        ProjectStatus = "rejected"
	ProjectPendingDeletion ProjectStatus = "pending_deletion"
)

// ValidProjectStatuses is the canonical set of accepted status strings.
var ValidProjectStatuses = map[string]bool{
	"lead": true, "survey": true, "quote": true, "preparation": true,
	"execution": true, "handover": true, "closed": true,
	"rejected": true, "pending_deletion": true,
}

// DefaultLinkType is the finish-to-start link code used when a client
// supplies none.
const DefaultLinkType = "0"
