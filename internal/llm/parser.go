package llm

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SearchHit is one dish the model picked. Every other field the model
// echoes back is ignored; the menu snapshot supplies them.
type SearchHit struct {
	ID json.RawMessage `json:"id"`
}

// MenuID reports the hit's id when it is an integer, given as a JSON
// number or a numeric string.
func (h SearchHit) MenuID() (int64, bool) {
	raw := strings.TrimSpace(string(h.ID))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(h.ID, &s); err != nil {
			return 0, false
		}
		raw = strings.TrimSpace(s)
	}

	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

var ErrMalformedOutput = errors.New("model output is not a JSON list")

// stripCodeFence removes a surrounding markdown fence such as ```json ... ```.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = ""
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func ParseSearchHits(text string) ([]SearchHit, error) {
	var hits []SearchHit
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &hits); err != nil {
		return nil, errors.Wrap(ErrMalformedOutput, err.Error())
	}
	return hits, nil
}
