package modal

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	leadPolicyOnce sync.Once
	leadPolicy     *bluemonday.Policy
)

// sanitizeLead cleans the optional lead-in fragment before it is embedded
// unescaped in the dialog body. Descriptor fields are escaped elsewhere;
// the lead is the only place callers may hand us markup.
func (w *Widget) sanitizeLead(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	policy := w.sanitizer
	if policy == nil {
		policy = defaultLeadPolicy()
	}
	return strings.TrimSpace(policy.Sanitize(trimmed))
}

func defaultLeadPolicy() *bluemonday.Policy {
	leadPolicyOnce.Do(func() {
		leadPolicy = bluemonday.UGCPolicy()
	})
	return leadPolicy
}
