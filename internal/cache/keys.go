package cache

import (
	"strconv"
	"strings"
)

const GlobalKeyPrefix = "lingua"

// Key joins the global prefix and parts with ":".
func Key(parts ...string) string {
	return strings.Join(append([]string{GlobalKeyPrefix}, parts...), ":")
}

// UserLockKey is the key guarding progress updates of one user.
func UserLockKey(userID int64) string {
	return Key("progress", "lock", "user", strconv.FormatInt(userID, 10))
}
