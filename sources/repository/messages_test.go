package repository

import "testing"

func TestWindowKeyScopedPerUserAndChat(t *testing.T) {
	if got := windowKey(42, 1001); got != "window:42:1001" {
		t.Errorf("windowKey(42, 1001) = %q, expected %q", got, "window:42:1001")
	}
	if windowKey(1, 1001) == windowKey(2, 1001) {
		t.Error("two users in one chat must not share a window key")
	}
	if windowKey(1, 1001) == windowKey(1, 1002) {
		t.Error("one user across two chats must not share a window key")
	}
}
