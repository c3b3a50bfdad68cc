package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequirementsValidJSON(t *testing.T) {
	raw := `{"objective": "Customer Engagement", "industry": "Retail"}`

	req := ParseRequirements(raw)

	assert.Equal(t, map[string]string{
		"objective": "Customer Engagement",
		"industry":  "Retail",
	}, req)
}

func TestParseRequirementsCoercesNonStringValues(t *testing.T) {
	raw := `{"budget": 50000, "urgent": true}`

	req := ParseRequirements(raw)

	assert.Equal(t, "50000", req["budget"])
	assert.Equal(t, "true", req["urgent"])
}

func TestParseRequirementsPlainTextBecomesDescription(t *testing.T) {
	raw := "Need an AI solution for our call center"

	req := ParseRequirements(raw)

	assert.Equal(t, map[string]string{"description": raw}, req)
}

func TestParseRequirementsJSONArrayIsNotAnObject(t *testing.T) {
	// Valid JSON but not a key-value mapping, so it gets wrapped.
	raw := `["one", "two"]`

	req := ParseRequirements(raw)

	assert.Equal(t, map[string]string{"description": raw}, req)
}

func TestParseRequirementsEmpty(t *testing.T) {
	req := ParseRequirements("")

	assert.NotNil(t, req)
	assert.Empty(t, req)
}

func TestEncodeRequirementsRoundTrip(t *testing.T) {
	original := map[string]string{"objective": "Process Automation"}

	encoded := EncodeRequirements(original)
	decoded := ParseRequirements(encoded)

	assert.Equal(t, original, decoded)
}

func TestEncodeRequirementsEmptyMap(t *testing.T) {
	assert.Equal(t, "", EncodeRequirements(nil))
	assert.Equal(t, "", EncodeRequirements(map[string]string{}))
}
