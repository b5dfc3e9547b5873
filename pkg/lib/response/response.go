package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Response представляет общую структуру ответа API
type Response struct {
	Status  string       `json:"status" example:"success"`
	Error   string       `json:"error,omitempty" example:"Error message if status is 'error'"`
	Code    string       `json:"code,omitempty" example:"ERR_001"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
}

// FieldError описывает одну ошибку валидации поля.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// SuccessResponse используется для Swagger
type SuccessResponse struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
}

// ErrorResponse используется для Swagger
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  string `json:"error" example:"Error message"`
	Code   string `json:"code,omitempty" example:"ERR_001"`
}

type CountData struct {
	Count int64 `json:"count" example:"42"`
}

type MessageData struct {
	Message string `json:"message"`
}

const (
	StatusOK    = "success"
	StatusError = "error"
)

func Success(data interface{}) Response {
	return Response{Status: StatusOK, Data: data}
}

func Error(message string) Response {
	return Response{Status: StatusError, Error: message}
}

func SendSuccess(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, Success(data))
}

func SendError(w http.ResponseWriter, r *http.Request, statusCode int, errorMessage string) {
	if statusCode >= http.StatusInternalServerError {
		report(r, "", errorMessage)
	}
	render.Status(r, statusCode)
	render.JSON(w, r, Error(errorMessage))
}

// SendCodedError отправляет ошибку с внутренним кодом (ERR_001...).
func SendCodedError(w http.ResponseWriter, r *http.Request, statusCode int, code, errorMessage, details string) {
	if statusCode >= http.StatusInternalServerError {
		report(r, code, errorMessage+": "+details)
	}
	render.Status(r, statusCode)
	render.JSON(w, r, Response{
		Status:  StatusError,
		Error:   errorMessage,
		Code:    code,
		Details: details,
	})
}

func SendValidationError(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ValidationError(err))
}

func ValidationError(err error) Response {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return Error(err.Error())
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return Response{
		Status: StatusError,
		Error:  fmt.Sprintf("validation failed on %d field(s)", len(fields)),
		Fields: fields,
	}
}

// report отправляет внутреннюю ошибку в Sentry, если hub подключен middleware.
func report(r *http.Request, code, message string) {
	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("path", r.URL.Path)
		if code != "" {
			scope.SetTag("code", code)
		}
		hub.CaptureException(errors.New(message))
	})
}
