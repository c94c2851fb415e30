package push

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/notice-pusher/internal/model"
)

func TestCompose(t *testing.T) {
	n := model.Notice{ID: "n1", Title: "Server maintenance", Category: "System", PushRequested: true}

	msg := Compose(n)

	assert.Equal(t, "[System] 새 공지", msg.Title)
	assert.Equal(t, "Server maintenance", msg.Body)
	assert.Equal(t, "notice", msg.Topic)
	assert.Equal(t, map[string]string{
		"noticeId":     "n1",
		"category":     "System",
		"click_action": "FLUTTER_NOTIFICATION_CLICK",
	}, msg.Data)
}

func TestCompose_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category string
	}{
		{name: "empty", title: "", category: ""},
		{name: "whitespace", title: "   ", category: "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Compose(model.Notice{ID: "n2", Title: tt.title, Category: tt.category})

			assert.Equal(t, "[all] 새 공지", msg.Title)
			assert.Equal(t, DefaultTitle, msg.Body)
			assert.Equal(t, DefaultCategory, msg.Data["category"])
			assert.Equal(t, "n2", msg.Data["noticeId"])
		})
	}
}
