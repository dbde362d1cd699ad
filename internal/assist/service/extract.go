package service

// The upstream completion API is "OpenAI-compatible", which in practice means
// one of several envelope shapes depending on provider and API generation.
// Extraction is an ordered list of shape probes; the first one that yields a
// string wins.

type extractor struct {
	name string
	fn   func(map[string]any) (string, bool)
}

var extractors = []extractor{
	{name: "output_text", fn: fromOutputText},
	{name: "output_content", fn: fromOutputContent},
	{name: "chat_choices", fn: fromChatChoices},
}

// ExtractText pulls the model's text out of a decoded upstream payload.
// The second return value names the shape that matched, for logging.
func ExtractText(payload map[string]any) (string, string, bool) {
	for _, e := range extractors {
		if text, ok := e.fn(payload); ok {
			return text, e.name, true
		}
	}
	return "", "", false
}

// Responses API convenience field: {"output_text": "..."}
func fromOutputText(payload map[string]any) (string, bool) {
	s, ok := payload["output_text"].(string)
	return s, ok && s != ""
}

// Responses API full form: {"output": [{"content": [{"text": "..."}]}]}
func fromOutputContent(payload map[string]any) (string, bool) {
	output, ok := payload["output"].([]any)
	if !ok || len(output) == 0 {
		return "", false
	}
	first, ok := output[0].(map[string]any)
	if !ok {
		return "", false
	}
	content, ok := first["content"].([]any)
	if !ok || len(content) == 0 {
		return "", false
	}
	part, ok := content[0].(map[string]any)
	if !ok {
		return "", false
	}
	s, ok := part["text"].(string)
	return s, ok && s != ""
}

// Chat Completions: {"choices": [{"message": {"content": "..."}}]}
func fromChatChoices(payload map[string]any) (string, bool) {
	choices, ok := payload["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", false
	}
	first, ok := choices[0].(map[string]any)
	if !ok {
		return "", false
	}
	msg, ok := first["message"].(map[string]any)
	if !ok {
		return "", false
	}
	s, ok := msg["content"].(string)
	return s, ok && s != ""
}
