// Package kickstarter defines the crowdfunding project record served by the
// remote feed and decodes feed payloads into it.
package kickstarter

import (
	"encoding/json"

	"kickview/internal/jsonutil"
)

// envelopeField is the object key holding the records when the feed wraps them.
const envelopeField = "projects"

// Project is one crowdfunding campaign as returned by the feed.
// Only SerialNo, Title, PercentageFunded and AmountPledged are rendered; the
// remaining fields are carried through unchanged.
type Project struct {
	SerialNo         int     `json:"s.no"`
	AmountPledged    float64 `json:"amt.pledged"`
	PercentageFunded float64 `json:"percentage.funded"`
	Title            string  `json:"title"`
	Blurb            string  `json:"blurb"`
	By               string  `json:"by"`
	Country          string  `json:"country"`
	Currency         string  `json:"currency"`
	EndTime          string  `json:"end.time"`
	Location         string  `json:"location"`
	Backers          Backers `json:"num.backers"`
	State            string  `json:"state"`
	Type             string  `json:"type"`
	URL              string  `json:"url"`
}

// Backers is the backer count. The feed sends it as a string, but numbers are
// accepted as well.
type Backers string

// UnmarshalJSON implements json.Unmarshaler.
func (b *Backers) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = Backers(jsonutil.ToString(v))
	return nil
}

// Decode parses a feed payload: either a bare array of projects or an object
// with a "projects" array. The returned slice is never nil on success.
func Decode(data []byte) ([]Project, error) {
	return jsonutil.UnmarshalArrayOrField[Project](data, envelopeField, "decode projects")
}
