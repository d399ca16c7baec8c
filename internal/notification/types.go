package notification

import "rentdesk-srv/pkg/paginator"

// Read states accepted by the status filter.
const (
	StatusRead   = "read"
	StatusUnread = "unread"
)

type ListInput struct {
	Query  paginator.PageQuery
	Search string
	Status string
}

type MarkReadInput struct {
	ID string
}

// BroadcastInput targets every user of Role, or every user when Role is empty.
type BroadcastInput struct {
	Title string
	Body  string
	Role  string
}
