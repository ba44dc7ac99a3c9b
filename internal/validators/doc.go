// Package validators checks inbound request payloads before any business
// logic runs.
//
// Two mechanisms are provided:
//
//   - [Schema] describes a JSON body declaratively (field name → expected
//     primitive type → required) and is consulted by a generic
//     decode-and-validate routine, keeping validation rules out of handler
//     bodies.
//   - [StructValidator] applies `validate` struct tags (go-playground/
//     validator) to request DTOs.
//
// Both report failures as [models.FieldError] values, which the HTTP layer
// serializes into a 422 response.
package validators
