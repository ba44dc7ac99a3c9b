package validators

import (
	"encoding/json"
	"strconv"

	"github.com/ymatsuda/go-api-sample/models"
)

// FieldType is the expected primitive type of a body field.
type FieldType int

const (
	// Number accepts JSON numbers and numeric strings ("10.5").
	Number FieldType = iota

	// String accepts JSON strings.
	String
)

// Error kind tags carried in [models.FieldError.Type].
const (
	KindMissing      = "missing"
	KindFloatParsing = "float_parsing"
	KindFloatType    = "float_type"
	KindStringType   = "string_type"
	KindJSONInvalid  = "json_invalid"
)

// Rule describes one field of a request body.
type Rule struct {
	Field    string
	Type     FieldType
	Required bool
}

// Schema is a declarative description of a JSON request body.
// Location names the part of the request the schema covers (usually "body")
// and becomes the first element of every reported field path.
type Schema struct {
	Location string
	Rules    []Rule
}

// Values holds the decoded fields of a body that passed schema validation.
type Values struct {
	Numbers map[string]float64
	Strings map[string]string
}

// Decode parses data as a JSON object and validates it against the schema.
//
// Fields are checked in rule order. A required field that is absent or null
// reports KindMissing; a value of the wrong type reports a type-specific
// kind. Numeric strings are coerced to numbers, matching the lenient
// coercion of common serialization frameworks.
//
// Decode returns the decoded values and a list of field errors; the values
// are only meaningful when the list is empty.
func (s Schema) Decode(data []byte) (Values, []models.FieldError) {
	values := Values{
		Numbers: make(map[string]float64),
		Strings: make(map[string]string),
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return values, []models.FieldError{{
			Type: KindJSONInvalid,
			Loc:  []string{s.Location},
			Msg:  "JSON decode error",
		}}
	}

	var fieldErrors []models.FieldError
	for _, rule := range s.Rules {
		raw, ok := body[rule.Field]
		if !ok || string(raw) == "null" {
			if rule.Required {
				fieldErrors = append(fieldErrors, models.FieldError{
					Type: KindMissing,
					Loc:  []string{s.Location, rule.Field},
					Msg:  "Field required",
				})
			}
			continue
		}

		if fieldError := s.decodeField(rule, raw, &values); fieldError != nil {
			fieldErrors = append(fieldErrors, *fieldError)
		}
	}

	return values, fieldErrors
}

func (s Schema) decodeField(rule Rule, raw json.RawMessage, values *Values) *models.FieldError {
	switch rule.Type {
	case Number:
		var number float64
		if err := json.Unmarshal(raw, &number); err == nil {
			values.Numbers[rule.Field] = number
			return nil
		}

		// numeric strings coerce to numbers
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			number, parseErr := strconv.ParseFloat(str, 64)
			if parseErr != nil {
				return &models.FieldError{
					Type: KindFloatParsing,
					Loc:  []string{s.Location, rule.Field},
					Msg:  "Input should be a valid number, unable to parse string as a number",
				}
			}
			values.Numbers[rule.Field] = number
			return nil
		}

		return &models.FieldError{
			Type: KindFloatType,
			Loc:  []string{s.Location, rule.Field},
			Msg:  "Input should be a valid number",
		}

	case String:
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return &models.FieldError{
				Type: KindStringType,
				Loc:  []string{s.Location, rule.Field},
				Msg:  "Input should be a valid string",
			}
		}
		values.Strings[rule.Field] = str
		return nil
	}

	return nil
}
