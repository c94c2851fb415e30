package push

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/notice-pusher/internal/model"
)

const (
	// DefaultTitle replaces an empty notice title in the message body.
	DefaultTitle = "general notice"
	// DefaultCategory replaces an empty category in the message title.
	DefaultCategory = "all"

	// Topic is the broadcast topic every notice is sent to.
	Topic = "notice"

	// ClickAction tells the mobile client which handler opens the notification.
	ClickAction = "FLUTTER_NOTIFICATION_CLICK"

	titleFormat = "[%s] 새 공지"
)

// Compose builds the broadcast message for a notice, falling back to the
// default title and category when the notice leaves them empty.
func Compose(n model.Notice) model.NotificationMessage {
	title := orDefault(n.Title, DefaultTitle)
	category := orDefault(n.Category, DefaultCategory)

	return model.NotificationMessage{
		Title: fmt.Sprintf(titleFormat, category),
		Body:  title,
		Data: map[string]string{
			"noticeId":     n.ID,
			"category":     category,
			"click_action": ClickAction,
		},
		Topic: Topic,
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}

	return v
}
