package push

import "github.com/aliskhannn/notice-pusher/internal/model"

// ShouldDispatch reports whether the update is a rising edge of push_requested:
// the flag is set after the write and was not set before it. A missing flag
// decodes as false, so an absent field never triggers a broadcast.
func ShouldDispatch(before, after model.Notice) bool {
	return after.PushRequested && !before.PushRequested
}
