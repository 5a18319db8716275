// Package fence extracts a JSON document from model output that may be
// wrapped in a Markdown code fence or surrounded by prose.
package fence

import "strings"

// Strip removes a surrounding Markdown code fence (```json ... ```) and
// any prose around the JSON document. Fences inside JSON strings are left
// alone.
func Strip(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return s
	}
	if start := strings.Index(s, "```"); start >= 0 {
		s = s[start+3:]
		if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "{[") {
			s = s[nl+1:]
		}
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}
	if !strings.HasPrefix(s, "{") {
		lo, hi := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}')
		if lo >= 0 && hi > lo {
			s = s[lo : hi+1]
		}
	}
	return s
}
