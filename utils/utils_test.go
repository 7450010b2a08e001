package utils

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderID_Format(t *testing.T) {
	for i := 0; i < 200; i++ {
		id, err := GenerateOrderID(nil)
		require.NoError(t, err)
		assert.Len(t, id, OrderIDLength)
		assert.Regexp(t, `^[A-Z0-9]{6}$`, id)
	}
}

func TestGenerateOrderID_SkipsTaken(t *testing.T) {
	old := randIndex
	defer func() { randIndex = old }()

	// First attempt yields AAAAAA, second BBBBBB.
	calls := 0
	randIndex = func(int) int {
		calls++
		if calls <= OrderIDLength {
			return 0
		}
		return 1
	}

	id, err := GenerateOrderID(func(id string) bool { return id == "AAAAAA" })
	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", id)
}

func TestGenerateOrderID_GivesUp(t *testing.T) {
	_, err := GenerateOrderID(func(string) bool { return true })
	assert.Error(t, err)
}

func TestRenderEmail(t *testing.T) {
	tmpl := template.Must(template.New("note.html").Parse(`<p>Order {{.ID}} for {{.Name}}</p>`))

	body, err := renderEmail(tmpl, "note.html", map[string]string{"ID": "Q7X2KD", "Name": "<Aqidah>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Order Q7X2KD for &lt;Aqidah&gt;</p>", body)

	_, err = renderEmail(tmpl, "missing.html", nil)
	assert.Error(t, err)
}
