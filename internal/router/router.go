package router

import (
	"context"
	"strings"
)

// Classify determines the intent of message and extracts its arguments.
// Unmatched input falls back to IntentUnknown.
func (r *PatternRouter) Classify(ctx context.Context, message string) RouterOutput {
	text := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(message), ".!?"))
	if text == "" {
		return RouterOutput{Intent: IntentUnknown, Rule: RuleEmpty}
	}

	for _, rl := range r.rules {
		m := rl.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		out := RouterOutput{Intent: rl.intent, Rule: rl.name}
		if rl.extract != nil {
			for i := range m {
				m[i] = strings.TrimSpace(m[i])
			}
			rl.extract(m, &out)
		}
		r.l.Debugf(ctx, "%s: %q classified as %s by %s", LogPrefixClassify, text, out.Intent, out.Rule)
		return out
	}

	r.l.Debugf(ctx, "%s: %q matched no rule", LogPrefixClassify, text)
	return RouterOutput{Intent: IntentUnknown, Rule: RuleFallback}
}
