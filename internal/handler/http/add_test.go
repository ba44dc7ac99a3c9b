package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymatsuda/go-api-sample/models"
)

func TestAddNumbers_Integers(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/add", `{"a": 5, "b": 3}`)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[models.AddResponse](t, rec)
	assert.Equal(t, float64(5), body.A)
	assert.Equal(t, float64(3), body.B)
	assert.Equal(t, float64(8), body.Result)
	assert.Equal(t, "5 + 3 = 8", body.Message)
}

func TestAddNumbers_Decimals(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/add", `{"a": 10.5, "b": 20.3}`)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[models.AddResponse](t, rec)
	assert.InDelta(t, 30.8, body.Result, 1e-9)
	assert.Equal(t, "10.5 + 20.3 = 30.8", body.Message)
}

func TestAddNumbers_Zeros(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/add", `{"a": 0, "b": 0}`)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[models.AddResponse](t, rec)
	assert.Equal(t, float64(0), body.Result)
	assert.Equal(t, "0 + 0 = 0", body.Message)
}

func TestAddNumbers_NumericStringsCoerce(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/add", `{"a": "10.5", "b": 20.3}`)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[models.AddResponse](t, rec)
	assert.InDelta(t, 30.8, body.Result, 1e-9)
}

func TestAddNumbers_MissingField(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/add", `{"a": 5}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody[models.ValidationErrorResponse](t, rec)
	require.Len(t, body.Detail, 1)

	fe := fieldErrorFor(t, body.Detail, "b")
	assert.Equal(t, "missing", fe.Type)
	assert.Equal(t, []string{"body", "b"}, fe.Loc)
	assert.Equal(t, "Field required", fe.Msg)
}

func TestAddNumbers_BothFieldsMissing(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/add", `{}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody[models.ValidationErrorResponse](t, rec)
	require.Len(t, body.Detail, 2)
	fieldErrorFor(t, body.Detail, "a")
	fieldErrorFor(t, body.Detail, "b")
}

func TestAddNumbers_NullIsMissing(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/add", `{"a": null, "b": 1}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody[models.ValidationErrorResponse](t, rec)
	fe := fieldErrorFor(t, body.Detail, "a")
	assert.Equal(t, "missing", fe.Type)
}

func TestAddNumbers_NonNumericString(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/add", `{"a": "invalid", "b": 1}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody[models.ValidationErrorResponse](t, rec)
	require.Len(t, body.Detail, 1)

	fe := fieldErrorFor(t, body.Detail, "a")
	assert.Equal(t, "float_parsing", fe.Type)
	assert.Equal(t, []string{"body", "a"}, fe.Loc)
	assert.Contains(t, fe.Msg, "valid number")
}

func TestAddNumbers_WrongType(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/add", `{"a": [1, 2], "b": 1}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody[models.ValidationErrorResponse](t, rec)
	fe := fieldErrorFor(t, body.Detail, "a")
	assert.Equal(t, "float_type", fe.Type)
}

func TestAddNumbers_MalformedJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/add", `{"a": 5,`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody[models.ValidationErrorResponse](t, rec)
	require.Len(t, body.Detail, 1)
	assert.Equal(t, "json_invalid", body.Detail[0].Type)
	assert.Equal(t, []string{"body"}, body.Detail[0].Loc)
}
