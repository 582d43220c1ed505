// Package filter selects catalog records matching the explorer's filter controls.
package filter

import (
	"fmt"
	"strings"

	"monastery/internal/catalog"
)

// Any is the selector value that matches every tag.
const Any = "all"

type Criteria struct {
	Category   string `json:"category" form:"category"`
	Region     string `json:"region" form:"region"`
	SearchText string `json:"search" form:"search"`
}

// Normalize trims the selectors and maps empty ones to Any. SearchText is
// kept as typed; only the empty string disables the text predicate.
func (c Criteria) Normalize() Criteria {
	c.Category = strings.TrimSpace(c.Category)
	c.Region = strings.TrimSpace(c.Region)
	if c.Category == "" {
		c.Category = Any
	}
	if c.Region == "" {
		c.Region = Any
	}
	return c
}

// IsWildcard reports whether c matches every record.
func (c Criteria) IsWildcard() bool {
	n := c.Normalize()
	return n.Category == Any && n.Region == Any && n.SearchText == ""
}

// Result is the output of Apply. The zero Result means no filter has been
// applied yet, which is distinct from an applied filter with no matches.
type Result struct {
	Applied  bool
	Criteria Criteria
	Records  []catalog.LocationRecord
}

func (r Result) Count() int { return len(r.Records) }

// Feedback is the sentence shown under the filter controls.
func (r Result) Feedback() string {
	return FeedbackText(len(r.Records))
}

func FeedbackText(n int) string {
	return fmt.Sprintf("Found %d monasteries matching your criteria.", n)
}

// Apply returns the records of c matching criteria, in catalog order.
func Apply(c *catalog.Catalog, criteria Criteria) Result {
	criteria = criteria.Normalize()
	needle := strings.ToLower(criteria.SearchText)

	out := make([]catalog.LocationRecord, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		r := c.At(i)
		if Matches(r, criteria.Category, criteria.Region, needle) {
			out = append(out, r)
		}
	}

	return Result{Applied: true, Criteria: criteria, Records: out}
}

// Matches evaluates the three predicates against one record. needle must
// already be lower-cased.
func Matches(r catalog.LocationRecord, category, region, needle string) bool {
	if category != Any && r.Category != category {
		return false
	}
	if region != Any && r.Region != region {
		return false
	}
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Region), needle)
}
