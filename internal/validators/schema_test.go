package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addSchema() Schema {
	return Schema{
		Location: "body",
		Rules: []Rule{
			{Field: "a", Type: Number, Required: true},
			{Field: "b", Type: Number, Required: true},
		},
	}
}

func TestSchemaDecode_ValidNumbers(t *testing.T) {
	values, fieldErrors := addSchema().Decode([]byte(`{"a": 10.5, "b": 20.3}`))

	require.Empty(t, fieldErrors)
	assert.InDelta(t, 10.5, values.Numbers["a"], 1e-9)
	assert.InDelta(t, 20.3, values.Numbers["b"], 1e-9)
}

func TestSchemaDecode_Integers(t *testing.T) {
	values, fieldErrors := addSchema().Decode([]byte(`{"a": 0, "b": -7}`))

	require.Empty(t, fieldErrors)
	assert.Zero(t, values.Numbers["a"])
	assert.InDelta(t, -7, values.Numbers["b"], 1e-9)
}

func TestSchemaDecode_NumericStringCoerced(t *testing.T) {
	values, fieldErrors := addSchema().Decode([]byte(`{"a": "10.5", "b": 1}`))

	require.Empty(t, fieldErrors)
	assert.InDelta(t, 10.5, values.Numbers["a"], 1e-9)
}

func TestSchemaDecode_NonNumericString(t *testing.T) {
	_, fieldErrors := addSchema().Decode([]byte(`{"a": "invalid", "b": 20.3}`))

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, KindFloatParsing, fieldErrors[0].Type)
	assert.Equal(t, []string{"body", "a"}, fieldErrors[0].Loc)
	assert.NotEmpty(t, fieldErrors[0].Msg)
}

func TestSchemaDecode_WrongType(t *testing.T) {
	_, fieldErrors := addSchema().Decode([]byte(`{"a": true, "b": {}}`))

	require.Len(t, fieldErrors, 2)
	assert.Equal(t, KindFloatType, fieldErrors[0].Type)
	assert.Equal(t, []string{"body", "a"}, fieldErrors[0].Loc)
	assert.Equal(t, KindFloatType, fieldErrors[1].Type)
	assert.Equal(t, []string{"body", "b"}, fieldErrors[1].Loc)
}

func TestSchemaDecode_MissingFields(t *testing.T) {
	_, fieldErrors := addSchema().Decode([]byte(`{}`))

	require.Len(t, fieldErrors, 2)
	assert.Equal(t, KindMissing, fieldErrors[0].Type)
	assert.Equal(t, []string{"body", "a"}, fieldErrors[0].Loc)
	assert.Equal(t, "Field required", fieldErrors[0].Msg)
}

func TestSchemaDecode_NullIsMissing(t *testing.T) {
	_, fieldErrors := addSchema().Decode([]byte(`{"a": null, "b": 1}`))

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, KindMissing, fieldErrors[0].Type)
	assert.Equal(t, []string{"body", "a"}, fieldErrors[0].Loc)
}

func TestSchemaDecode_InvalidJSON(t *testing.T) {
	_, fieldErrors := addSchema().Decode([]byte(`{not json`))

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, KindJSONInvalid, fieldErrors[0].Type)
	assert.Equal(t, []string{"body"}, fieldErrors[0].Loc)
}

func TestSchemaDecode_OptionalField(t *testing.T) {
	schema := Schema{
		Location: "body",
		Rules: []Rule{
			{Field: "note", Type: String, Required: false},
		},
	}

	_, fieldErrors := schema.Decode([]byte(`{}`))
	assert.Empty(t, fieldErrors)

	values, fieldErrors := schema.Decode([]byte(`{"note": "hi"}`))
	require.Empty(t, fieldErrors)
	assert.Equal(t, "hi", values.Strings["note"])
}
