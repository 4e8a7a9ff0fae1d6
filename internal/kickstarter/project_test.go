package kickstarter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRecord = `{
	"s.no": 0,
	"amt.pledged": 15823,
	"blurb": "Test project 1",
	"by": "Creator 1",
	"country": "US",
	"currency": "usd",
	"end.time": "2016-11-01T23:59:00-04:00",
	"location": "Washington, DC",
	"percentage.funded": 186,
	"num.backers": "219382",
	"state": "DC",
	"title": "Project 1",
	"type": "Town",
	"url": "/projects/1"
}`

func TestDecode_BareArray(t *testing.T) {
	projects, err := Decode([]byte("[" + sampleRecord + "]"))
	require.NoError(t, err)
	require.Len(t, projects, 1)

	p := projects[0]
	assert.Equal(t, 0, p.SerialNo)
	assert.Equal(t, 15823.0, p.AmountPledged)
	assert.Equal(t, 186.0, p.PercentageFunded)
	assert.Equal(t, "Project 1", p.Title)
	assert.Equal(t, "Creator 1", p.By)
	assert.Equal(t, "usd", p.Currency)
	assert.Equal(t, "2016-11-01T23:59:00-04:00", p.EndTime)
	assert.Equal(t, "Washington, DC", p.Location)
	assert.Equal(t, Backers("219382"), p.Backers)
	assert.Equal(t, "/projects/1", p.URL)
}

func TestDecode_Envelope(t *testing.T) {
	projects, err := Decode([]byte(`{"projects": [` + sampleRecord + `]}`))
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Project 1", projects[0].Title)
}

func TestDecode_EmptyArray(t *testing.T) {
	projects, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestDecode_NumericBackers(t *testing.T) {
	projects, err := Decode([]byte(`[{"s.no": 3, "num.backers": 42}]`))
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, Backers("42"), projects[0].Backers)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `<html>oops</html>`},
		{"wrong field type", `[{"s.no": "zero"}]`},
		{"object without projects", `{"items": []}`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "decode projects")
		})
	}
}
