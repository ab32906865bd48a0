// Package ident generates the prefixed record identifiers used across all
// collections. Uniqueness comes from the UUID token; the prefix only aids
// debugging and is not part of any contract.
package ident

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	PrefixEmployee     = "emp"
	PrefixAttendance   = "att"
	PrefixTask         = "task"
	PrefixLeave        = "leave"
	PrefixPayroll      = "pay"
	PrefixNotification = "notif"
	PrefixNetwork      = "net"
)

func New(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
