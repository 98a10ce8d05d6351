package llm

import "strings"

// StripCodeFences はLLM応答からマークダウンのコードフェンスを除去
// モデルはJSONを```json ... ```で囲んで返すことがある
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
