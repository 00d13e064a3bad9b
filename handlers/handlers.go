// ABOUTME: Shared helpers for MCP tool handlers
// ABOUTME: Translates validation violations into tool errors
package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trellis-crm/trellis/validation"
)

// violationError flattens a violations map into a single deterministic
// error message so tool callers see every problem at once.
func violationError(v validation.Violations) error {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, "; "))
}
