package rawparser

import (
	"regexp"
	"strings"

	"github.com/K-Mistele/jsonish-sub001/value"
)

// fencedBlock matches a fenced code block with an optional language tag,
// the shape a model produces when it wraps its answer in ```json ... ```.
var fencedBlock = regexp.MustCompile("(?s)```([A-Za-z0-9_+-]*)\\s*\\n?(.*?)```")

// extractMarkdown implements §4.1.1 strategy 2: pull fenced code blocks out
// of input and recover each one's contents with the rest of the cascade
// (markdown extraction itself disabled on the recursive call, since a code
// fence does not nest). Leftover, non-fence text that is not just
// whitespace becomes a plain string candidate alongside the fenced ones, so
// a reply like `Sure, here you go:\n\n\`\`\`json\n{...}\n\`\`\`` doesn't
// silently drop the preamble.
func extractMarkdown(input string, depth int) (*value.Value, error) {
	matches := fencedBlock.FindAllStringSubmatchIndex(input, -1)
	if len(matches) == 0 {
		return nil, errNoMatch
	}

	var candidates []*value.Value
	cursor := 0
	for _, m := range matches {
		fullStart, fullEnd := m[0], m[1]
		langStart, langEnd := m[2], m[3]
		bodyStart, bodyEnd := m[4], m[5]

		if leftover := strings.TrimSpace(input[cursor:fullStart]); leftover != "" {
			candidates = append(candidates, value.String(leftover))
		}

		lang := strings.TrimSpace(input[langStart:langEnd])
		body := input[bodyStart:bodyEnd]

		inner, err := parseCascade(body, Options{
			AllowMarkdown:    false,
			AllowMultiObject: true,
			AllowFixes:       true,
			AllowAsString:    true,
			IsDone:           true,
		}, depth+1)
		if err != nil {
			var depthErr *DepthExceededError
			if asDepthExceeded(err, &depthErr) {
				return nil, err
			}
			inner = value.String(body)
		}
		candidates = append(candidates, value.Markdown(lang, inner))
		cursor = fullEnd
	}

	if leftover := strings.TrimSpace(input[cursor:]); leftover != "" {
		candidates = append(candidates, value.String(leftover))
	}

	if len(candidates) == 0 {
		return nil, errNoMatch
	}
	return value.AnyOf(candidates, input), nil
}
