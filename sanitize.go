package htmltree

import (
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// sanitizedView renders its content into a buffer and emits the
// policy-filtered result.
type sanitizedView struct {
	policy  *bluemonday.Policy
	content any
}

// Sanitized wraps content in a view that pipes the rendered markup through
// policy before emitting it. The core renderer never escapes or validates;
// this is the opt-in path for untrusted subtrees.
func Sanitized(policy *bluemonday.Policy, content any) View {
	return &sanitizedView{policy: policy, content: content}
}

// Render implements View.
func (s *sanitizedView) Render(w io.Writer) error {
	var buf strings.Builder
	if err := RenderTo(&buf, s.content); err != nil {
		return err
	}
	_, err := io.WriteString(w, s.policy.Sanitize(buf.String()))
	return err
}
