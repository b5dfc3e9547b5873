package form_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"league/pkg/lib/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, body string) form.Values {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	values, err := form.Decode(r, 1<<20)
	require.NoError(t, err)
	return values
}

func TestDecode_URLEncoded(t *testing.T) {
	body := url.Values{"name": {"Ana"}, "height": {"185"}}.Encode()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	values, err := form.Decode(r, 1<<20)
	require.NoError(t, err)

	height, err := values.Float("height")
	require.NoError(t, err)
	assert.True(t, height.Valid)
	assert.Equal(t, 185.0, height.Value)
}

func TestDecode_Unsupported(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("<xml/>"))
	r.Header.Set("Content-Type", "application/xml")

	_, err := form.Decode(r, 1<<20)
	assert.ErrorIs(t, err, form.ErrUnsupportedContentType)

	status, _ := form.ErrorStatus(err)
	assert.Equal(t, http.StatusUnsupportedMediaType, status)
}

func TestDecode_MalformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	r.Header.Set("Content-Type", "application/json")

	_, err := form.Decode(r, 1<<20)
	assert.ErrorIs(t, err, form.ErrMalformedBody)
}

func TestDecodeLimited_TooLarge(t *testing.T) {
	body := `{"description":"` + strings.Repeat("x", 2048) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	_, err := form.DecodeLimited(httptest.NewRecorder(), r, 128)
	require.Error(t, err)
	status, _ := form.ErrorStatus(err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
}

func TestValues_String(t *testing.T) {
	values := decodeJSON(t, `{"name":"  <script>x</script>Ana  ","empty":"","nil":null,"num":10,"obj":{}}`)

	name, err := values.String("name")
	require.NoError(t, err)
	assert.Equal(t, "Ana", name.Value)

	empty, err := values.String("empty")
	require.NoError(t, err)
	assert.True(t, empty.Set)
	assert.False(t, empty.Valid)

	null, err := values.String("nil")
	require.NoError(t, err)
	assert.True(t, null.Set)
	assert.False(t, null.Valid)

	num, err := values.String("num")
	require.NoError(t, err)
	assert.Equal(t, "10", num.Value)

	missing, err := values.String("missing")
	require.NoError(t, err)
	assert.False(t, missing.Set)

	_, err = values.String("obj")
	var fieldErr *form.InvalidFieldError
	assert.True(t, errors.As(err, &fieldErr))
}

func TestValues_Numbers(t *testing.T) {
	values := decodeJSON(t, `{"height":"185","weight":"72,5","num":1.5,"team":"3","badTeam":"-1","zero":0,"word":"abc"}`)

	height, err := values.Float("height")
	require.NoError(t, err)
	assert.Equal(t, 185.0, height.Value)

	weight, err := values.Float("weight")
	require.NoError(t, err)
	assert.Equal(t, 72.5, weight.Value)

	num, err := values.Float("num")
	require.NoError(t, err)
	assert.Equal(t, 1.5, num.Value)

	team, err := values.Uint("team")
	require.NoError(t, err)
	assert.Equal(t, uint(3), team.Value)

	_, err = values.Uint("badTeam")
	assert.Error(t, err)
	_, err = values.Uint("zero")
	assert.Error(t, err)

	_, err = values.Float("word")
	require.Error(t, err)
	status, msg := form.ErrorStatus(err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, msg, "word")
}

func TestValues_Date(t *testing.T) {
	values := decodeJSON(t, `{"a":"1999-04-12","b":"12/04/1999","c":"","d":"yesterday"}`)

	a, err := values.Date("a")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1999, 4, 12, 0, 0, 0, 0, time.UTC), time.Time(a.Value))

	b, err := values.Date("b")
	require.NoError(t, err)
	assert.Equal(t, time.Time(a.Value), time.Time(b.Value))

	c, err := values.Date("c")
	require.NoError(t, err)
	assert.True(t, c.Set)
	assert.False(t, c.Valid)

	_, err = values.Date("d")
	assert.Error(t, err)
}

func TestFile_NoMultipart(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.Nil(t, form.File(r, "imagen"))
}
