package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awaaz/internal/domain"
)

func TestCSVWriter_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteSignatures([]domain.Signature{
		{
			SignerName:   "Ravi Kumar",
			Constituency: "24",
			Comment:      "This affects my village directly.",
			SignedAt:     time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			SignerName: "Priya Sharma",
			SignedAt:   time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
		},
	}))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Signer Name", "Constituency", "Comment", "Signed At"}, records[0])
	assert.Equal(t, []string{"Ravi Kumar", "24", "This affects my village directly.", "2025-03-14T09:30:00Z"}, records[1])
	assert.Equal(t, []string{"Priya Sharma", "", "", "2025-03-15T18:00:00Z"}, records[2])
}

func TestCSVWriter_QuotesCommasInComments(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	require.NoError(t, w.WriteSignatures([]domain.Signature{
		{SignerName: "Ravi Kumar", Comment: `He said, "stop this"`, SignedAt: time.Now()},
	}))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, `He said, "stop this"`, records[0][2])
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Save the Lake!", "Save_the_Lake"},
		{"clean-name_1", "clean-name_1"},
		{"a  b//c", "a_b_c"},
		{"___trimmed___", "trimmed"},
		{strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in), tc.in)
	}
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("Save the Lake!", "csv")
	assert.True(t, strings.HasPrefix(name, "Save_the_Lake_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))

	date := time.Now().Format("2006-01-02")
	assert.Contains(t, name, date)
}
