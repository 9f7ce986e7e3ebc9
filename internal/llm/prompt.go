package llm

import (
	"encoding/json"
	"fmt"
)

func BuildDescriptionPrompt(name string) string {
	return `
You are a restaurant menu writer.

Write ONLY a short description (5 to 7 words).
No punctuation.
No emojis.
No quotes.

Food item: ` + name
}

// promptMenuItem is the menu snapshot shape embedded in the search prompt.
type promptMenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

func BuildSearchPrompt(query string, menu []promptMenuItem) (string, error) {
	menuJSON, err := json.Marshal(menu)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`
You are a restaurant recommendation AI.

User query: %q

Menu items: %s

Select dishes matching user's intention.
Consider:
- spice level
- veg / non-veg
- dessert / sweet
- keywords like 'ice cream', 'biryani', 'light food'

Return ONLY valid JSON list of items:
[
  {"id": 1, "name": "...", "price": 200, "image": "..."}
]

If nothing matches return [] exactly.
`, query, menuJSON), nil
}
