// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comparator

import "strings"

// Role is an instructor permission level. The numeric value is the rank, so
// roles compare with the ordinary integer operators.
type Role int

// Ranks from lowest to highest. RoleUnknown sits below every real role.
const (
	RoleUnknown Role = iota
	RoleTutor
	RoleObserver
	RoleCustom
	RoleManager
	RoleCoowner
)

const rolePrefix = "INSTRUCTOR_PERMISSION_ROLE_"

var roleNames = map[Role]string{
	RoleCoowner:  "COOWNER",
	RoleManager:  "MANAGER",
	RoleCustom:   "CUSTOM",
	RoleObserver: "OBSERVER",
	RoleTutor:    "TUTOR",
}

// roleDisplayNames holds the labels shown in the instructor tables.
var roleDisplayNames = map[Role]string{
	RoleCoowner:  "Co-owner",
	RoleManager:  "Manager",
	RoleCustom:   "Custom",
	RoleObserver: "Observer",
	RoleTutor:    "Tutor",
}

// String returns the full constant name, e.g. INSTRUCTOR_PERMISSION_ROLE_TUTOR.
func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return rolePrefix + n
	}
	return "UNKNOWN"
}

// DisplayName returns the label used in tables, e.g. "Co-owner".
func (r Role) DisplayName() string {
	if n, ok := roleDisplayNames[r]; ok {
		return n
	}
	return ""
}

// ParseRole accepts the constant name, the short name or the display name of a
// role in any case. Anything else is RoleUnknown.
func ParseRole(s string) Role {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, rolePrefix)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)

	for r, n := range roleNames {
		if n == key {
			return r
		}
	}
	return RoleUnknown
}
