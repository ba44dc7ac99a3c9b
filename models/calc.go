package models

// AddRequest carries the two operands of the add endpoint.
// The body is decoded through the schema validator, which also accepts
// numeric strings for either operand.
type AddRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// AddResponse echoes the operands along with the computed sum and a
// human-readable summary ("10.5 + 20.3 = 30.8").
type AddResponse struct {
	A       float64 `json:"a"`
	B       float64 `json:"b"`
	Result  float64 `json:"result"`
	Message string  `json:"message"`
}

// GreetingResponse is returned by the root endpoint.
type GreetingResponse struct {
	Message string `json:"message"`
}
