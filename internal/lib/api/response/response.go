// Package response holds the JSON error envelope every handler renders.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrResponse struct {
	Message string `json:"message"`
}

func Error(msg string) ErrResponse {
	return ErrResponse{Message: msg}
}

func ValidationError(errs validator.ValidationErrors) ErrResponse {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is below the allowed minimum", err.Field()))
		case "max":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is above the allowed maximum", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Error(strings.Join(errMsgs, ", "))
}
