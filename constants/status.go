package constants

// ApplicationStatus is the canonical status for rows in applications.
type ApplicationStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending     ApplicationStatus = "PENDING"      // initial state at creation
	StatusUnderReview ApplicationStatus = "UNDER_REVIEW" // admin picked it up
	StatusApproved    ApplicationStatus = "APPROVED"     // terminal
	StatusRejected    ApplicationStatus = "REJECTED"     // terminal
	StatusDocsNeeded  ApplicationStatus = "DOCS_NEEDED"  // waiting on documents
)

// ApplicationStatuses holds the allowed status strings for schema validation.
var ApplicationStatuses = []string{
	string(StatusPending),
	string(StatusUnderReview),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusDocsNeeded),
}

// statusTransitions is the allowed transition table. Terminal states
// (APPROVED, REJECTED) have no outgoing edges.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:     {StatusUnderReview, StatusApproved, StatusRejected, StatusDocsNeeded},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusDocsNeeded:  {StatusApproved, StatusRejected},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseApplicationStatus validates a raw status string.
func ParseApplicationStatus(input string) (ApplicationStatus, bool) {
	for _, s := range ApplicationStatuses {
		if input == s {
			return ApplicationStatus(input), true
		}
	}
	return "", false
}

// NotificationType labels rows in notifications.
type NotificationType string

const (
	NotifyApplication  NotificationType = "APPLICATION"
	NotifyStatusChange NotificationType = "STATUS_CHANGE"
	NotifyScheme       NotificationType = "SCHEME"
)

// ApplicationSource records how an application was created.
type ApplicationSource string

const (
	SourceAuto   ApplicationSource = "AUTO"
	SourceManual ApplicationSource = "MANUAL"
)
