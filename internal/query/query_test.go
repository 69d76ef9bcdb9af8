package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	conds := []Condition{
		Eq("client_id", "client_001"),
		Eq("status", "Pending"),
	}

	assert.Equal(t, "(client_id,eq,client_001)~and(status,eq,Pending)", Encode(conds))
	assert.Equal(t, "", Encode(nil))
}

func TestEncodeParseRoundTrip(t *testing.T) {
	conds := []Condition{
		Eq("client_id", "client_001"),
		Ge("created_date", "2024-01-01"),
		Le("created_date", "exactDate,2024-02-01"),
	}

	parsed := Parse(Encode(conds))
	require.Equal(t, conds, parsed)
}

func TestParseDropsMalformedClauses(t *testing.T) {
	parsed := Parse("(client_id,eq,client_001)~andgarbage~and(status,eq,Paid)")

	require.Len(t, parsed, 2)
	assert.Equal(t, "client_id", parsed[0].Field)
	assert.Equal(t, "status", parsed[1].Field)
}

func TestParsePreservesUnknownOps(t *testing.T) {
	parsed := Parse("(amount,gt,100)")

	require.Len(t, parsed, 1)
	assert.False(t, parsed[0].Known())
	assert.Equal(t, Op("gt"), parsed[0].Op)
}

func TestCleanValueStripsExactDatePrefix(t *testing.T) {
	c := Ge("timestamp", "exactDate,2024-01-15")
	assert.Equal(t, "2024-01-15", c.CleanValue())

	plain := Eq("status", "Paid")
	assert.Equal(t, "Paid", plain.CleanValue())
}

func TestParseEmpty(t *testing.T) {
	assert.Nil(t, Parse(""))
}
