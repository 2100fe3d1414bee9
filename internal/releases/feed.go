package releases

import (
	"encoding/json"
	"fmt"
)

// feedRecord is one release cycle from the endoflife.date API.
type feedRecord struct {
	Cycle  string   `json:"cycle"`
	Latest string   `json:"latest"`
	EOL    eolField `json:"eol"`
}

// eolField accepts the feed's eol value, which is either a bool or a date.
// Any date counts as end-of-life.
type eolField bool

func (e *eolField) UnmarshalJSON(data []byte) error {
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*e = eolField(flag)

		return nil
	}

	var date string
	if err := json.Unmarshal(data, &date); err != nil {
		return fmt.Errorf("eol must be a bool or a date, got %s", data)
	}

	*e = date != ""

	return nil
}

// ParseFeed decodes an endoflife.date release feed and returns the latest
// version of every cycle that is not end-of-life, in feed order.
func ParseFeed(data []byte) ([]string, error) {
	var records []feedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Input: truncate(string(data)), Err: err}
	}

	var latest []string

	for _, r := range records {
		if r.EOL {
			continue
		}

		if r.Latest == "" {
			return nil, &ParseError{Input: r.Cycle, Err: fmt.Errorf("missing latest version")}
		}

		latest = append(latest, r.Latest)
	}

	return latest, nil
}

func truncate(s string) string {
	const limit = 64
	if len(s) <= limit {
		return s
	}

	return s[:limit] + "..."
}
