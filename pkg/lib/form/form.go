// Package form читает тело запроса (multipart, urlencoded или JSON) в единый набор
// значений и приводит их к типам полей: числа из строк, пустые строки в null.
package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"league/pkg/lib/patch"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/datatypes"
)

var (
	ErrMalformedBody          = errors.New("malformed request body")
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("field '%s' %s", e.Field, e.Reason)
}

var textPolicy = bluemonday.StrictPolicy()

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "02/01/2006", "2006/01/02"}

// Values - сырые значения полей: string из форм, json-типы из JSON.
type Values map[string]interface{}

// Decode разбирает тело запроса. Для multipart файлы остаются доступны через r.MultipartForm.
func Decode(r *http.Request, maxMemory int64) (Values, error) {
	values := Values{}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil && r.Header.Get("Content-Type") != "" {
		return nil, ErrUnsupportedContentType
	}

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				return nil, err
			}
			return nil, ErrMalformedBody
		}
		for key, vs := range r.MultipartForm.Value {
			if len(vs) > 0 {
				values[key] = vs[0]
			}
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, ErrMalformedBody
		}
		for key, vs := range r.PostForm {
			if len(vs) > 0 {
				values[key] = vs[0]
			}
		}
	case "application/json", "":
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&values); err != nil && !errors.Is(err, io.EOF) {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				return nil, err
			}
			return nil, ErrMalformedBody
		}
	default:
		return nil, ErrUnsupportedContentType
	}

	return values, nil
}

// DecodeLimited ограничивает размер тела и разбирает его.
func DecodeLimited(w http.ResponseWriter, r *http.Request, maxBytes int64) (Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	return Decode(r, maxBytes)
}

// ErrorStatus подбирает HTTP статус и сообщение для ошибки разбора формы.
func ErrorStatus(err error) (int, string) {
	var fieldErr *InvalidFieldError
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &fieldErr):
		return http.StatusBadRequest, fieldErr.Error()
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, "request body too large"
	case errors.Is(err, ErrUnsupportedContentType):
		return http.StatusUnsupportedMediaType, err.Error()
	default:
		return http.StatusBadRequest, ErrMalformedBody.Error()
	}
}

// File возвращает первый найденный файл из перечисленных полей или nil.
func File(r *http.Request, fields ...string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	for _, field := range fields {
		if fhs := r.MultipartForm.File[field]; len(fhs) > 0 {
			return fhs[0]
		}
	}
	return nil
}

func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// String очищает текст от html и превращает пустую строку в null.
func (v Values) String(key string) (patch.Field[string], error) {
	raw, ok := v[key]
	if !ok {
		return patch.Field[string]{}, nil
	}

	var s string
	switch t := raw.(type) {
	case nil:
		return patch.Null[string](), nil
	case string:
		s = t
	case json.Number:
		s = t.String()
	default:
		return patch.Field[string]{}, &InvalidFieldError{Field: key, Reason: "must be a string"}
	}

	s = strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
	if s == "" {
		return patch.Null[string](), nil
	}
	return patch.Of(s), nil
}

// RawString отдает строку без очистки (пароли, email).
func (v Values) RawString(key string) (patch.Field[string], error) {
	raw, ok := v[key]
	if !ok {
		return patch.Field[string]{}, nil
	}
	switch t := raw.(type) {
	case nil:
		return patch.Null[string](), nil
	case string:
		if t == "" {
			return patch.Null[string](), nil
		}
		return patch.Of(t), nil
	default:
		return patch.Field[string]{}, &InvalidFieldError{Field: key, Reason: "must be a string"}
	}
}

func (v Values) Float(key string) (patch.Field[float64], error) {
	raw, ok := v[key]
	if !ok {
		return patch.Field[float64]{}, nil
	}

	switch t := raw.(type) {
	case nil:
		return patch.Null[float64](), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return patch.Field[float64]{}, &InvalidFieldError{Field: key, Reason: "must be a number"}
		}
		return patch.Of(f), nil
	case float64:
		return patch.Of(t), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return patch.Null[float64](), nil
		}
		f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		if err != nil {
			return patch.Field[float64]{}, &InvalidFieldError{Field: key, Reason: "must be a number"}
		}
		return patch.Of(f), nil
	default:
		return patch.Field[float64]{}, &InvalidFieldError{Field: key, Reason: "must be a number"}
	}
}

func (v Values) Uint(key string) (patch.Field[uint], error) {
	raw, ok := v[key]
	if !ok {
		return patch.Field[uint]{}, nil
	}

	var s string
	switch t := raw.(type) {
	case nil:
		return patch.Null[uint](), nil
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		s = strings.TrimSpace(t)
		if s == "" {
			return patch.Null[uint](), nil
		}
	default:
		return patch.Field[uint]{}, &InvalidFieldError{Field: key, Reason: "must be a positive integer"}
	}

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return patch.Field[uint]{}, &InvalidFieldError{Field: key, Reason: "must be a positive integer"}
	}
	return patch.Of(uint(id)), nil
}

func (v Values) Date(key string) (patch.Field[datatypes.Date], error) {
	raw, ok := v[key]
	if !ok {
		return patch.Field[datatypes.Date]{}, nil
	}

	s, isString := raw.(string)
	if raw == nil {
		return patch.Null[datatypes.Date](), nil
	}
	if !isString {
		return patch.Field[datatypes.Date]{}, &InvalidFieldError{Field: key, Reason: "must be a date (YYYY-MM-DD)"}
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return patch.Null[datatypes.Date](), nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return patch.Field[datatypes.Date]{}, &InvalidFieldError{Field: key, Reason: "must be a date (YYYY-MM-DD)"}
	}
	return patch.Of(datatypes.Date(t)), nil
}

func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
