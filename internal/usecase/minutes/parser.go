package minutes

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

// actionItemPattern matches one "N. **Issue:** ...\n   - **Assigned to:** Name" fragment.
// The description stops at the first line break and the assignee is a single
// word token, so "Jane Doe" is captured as "Jane".
var actionItemPattern = regexp.MustCompile(
	`\d+\.\s+\*\*Issue:\*\*\s+(.*?)\s*\n\s*-\s+\*\*Assigned to:\*\*\s+([\p{L}\p{N}_]+)`,
)

// ExtractActionItems parses generated minutes into action items in document order.
// Text that does not follow the grammar is skipped; no match yields an empty slice.
func ExtractActionItems(minutes string) []entities.ActionItem {
	matches := actionItemPattern.FindAllStringSubmatch(minutes, -1)

	items := make([]entities.ActionItem, 0, len(matches))
	for _, m := range matches {
		item := entities.ActionItem{
			Description:  strings.TrimSpace(m[1]),
			AssigneeName: m[2],
		}
		if !item.Valid() {
			continue
		}
		items = append(items, item)
	}
	return items
}
