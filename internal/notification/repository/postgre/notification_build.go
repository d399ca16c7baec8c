package postgre

import (
	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/notification"
	"rentdesk-srv/internal/notification/repository"
	"rentdesk-srv/pkg/sqlbuilder"
)

// notificationFrom refers to $1, which buildScope always binds to the caller id.
const notificationFrom = ` FROM notifications n
	LEFT JOIN notification_reads nr ON nr.notification_id = n.id AND nr.user_id = $1`

const notificationColumns = `n.id, n.recipient_id, n.role, n.title, n.body, n.created_at, nr.user_id IS NOT NULL`

// buildScope keeps notifications addressed to the caller and broadcasts to their role or to everyone.
func buildScope(w *sqlbuilder.Where, sc model.Scope) {
	w.Add("(n.recipient_id = ? OR (n.recipient_id IS NULL AND (n.role IS NULL OR n.role = ?)))", sc.UserID, sc.Role)
}

func buildListWhere(opt repository.ListOptions) *sqlbuilder.Where {
	w := &sqlbuilder.Where{}
	buildScope(w, opt.Scope)
	switch opt.Status {
	case notification.StatusRead:
		w.Add("nr.user_id IS NOT NULL")
	case notification.StatusUnread:
		w.Add("nr.user_id IS NULL")
	}
	w.Search(opt.Search, "n.title", "n.body")
	return w
}
