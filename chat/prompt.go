package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Generated is a parsed model response.
type Generated struct {
	Title            string
	Answer           string
	UseCases         string
	RealTimeUseCases string
	CodeSnippet      string
}

// BuildPrompt builds the generation prompt for query with prior turns.
func BuildPrompt(query string, history []jobready.Message) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful coding assistant for an interview preparation site.\n\n")

	if len(history) > 0 {
		sb.WriteString("<conversation>\n")
		for _, m := range history {
			role := "user"
			if m.Role != jobready.RoleUser {
				role = "assistant"
			}
			fmt.Fprintf(&sb, "<%s>%s</%s>\n", role, m.Content, role)
		}
		sb.WriteString("</conversation>\n")
		sb.WriteString("Use the conversation to resolve references in the question.\n\n")
	}

	fmt.Fprintf(&sb, "User Question: %q\n\n", query)
	sb.WriteString(`Provide a concise, clear technical answer (max 3-4 sentences).
Format content with Markdown if needed.
Also provide 1-2 "Real Time Use Cases" if applicable.
Include a short code example in codeSnippet only if the question asks for code.

Output format (JSON):
{
  "title": "Refined Question Title",
  "answer": "The answer body...",
  "useCases": "Bullet point 1...",
  "realTimeUseCases": "Bullet point 1...",
  "codeSnippet": ""
}`)
	return sb.String()
}

// ParseResponse extracts a Generated answer from raw model output. It never
// fails: output that is not a JSON object becomes the answer verbatim, and
// missing fields fall back to the query and the raw text.
func ParseResponse(text, query string) Generated {
	raw := strings.TrimSpace(text)
	gen := Generated{Title: query, Answer: raw}

	var resp response
	if !decodeResponse(raw, &resp) {
		return gen
	}

	if title := strings.TrimSpace(resp.Title); title != "" {
		gen.Title = title
	}
	if answer := strings.TrimSpace(resp.Answer); answer != "" {
		gen.Answer = answer
	}
	gen.UseCases = string(resp.UseCases)
	gen.RealTimeUseCases = string(resp.RealTimeUseCases)
	gen.CodeSnippet = resp.CodeSnippet
	return gen
}

type response struct {
	Title            string   `json:"title"`
	Answer           string   `json:"answer"`
	UseCases         flexText `json:"useCases"`
	RealTimeUseCases flexText `json:"realTimeUseCases"`
	CodeSnippet      string   `json:"codeSnippet"`
}

// decodeResponse tries the text with an outer code fence removed, then the
// outermost brace-delimited span.
func decodeResponse(raw string, resp *response) bool {
	body := stripFence(raw)
	if json.Unmarshal([]byte(body), resp) == nil {
		return true
	}

	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end <= start {
		return false
	}
	*resp = response{}
	return json.Unmarshal([]byte(body[start:end+1]), resp) == nil
}

// stripFence removes a surrounding ``` or ```json fence. Fences inside the
// body are left alone.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	body := strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && !strings.ContainsAny(body[:nl], "{[\"") {
		body = body[nl+1:]
	}
	return strings.TrimSpace(body)
}

// flexText decodes a JSON string or an array of strings. Arrays become a
// bulleted list.
type flexText string

func (f *flexText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexText(s)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*f = flexText(jobready.BulletList(items))
	return nil
}
