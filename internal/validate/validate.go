package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "brnaccounts/internal/errors"
	"brnaccounts/internal/model"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	// report violations under the document field names
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("bson"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return val
}

// User builds a model.User from a normalized mapping and checks every field
// constraint. On failure it returns an *apperrors.ValidationError carrying
// one entry per violation; all violations are collected. No side effects.
func User(fields map[string]string) (*model.User, error) {
	u := &model.User{
		FirstName:  fields["firstName"],
		LastName:   fields["lastName"],
		Email:      fields["email"],
		Password:   fields["password"],
		MobileNo:   fields["mobileNo"],
		ProfilePic: fields["profilePic"],
	}

	var details []apperrors.FieldError
	ageInvalid := false
	if raw, ok := fields["age"]; ok && raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			ageInvalid = true
			details = append(details, apperrors.FieldError{
				Field:      "age",
				Constraint: "integer",
				Value:      raw,
			})
		} else {
			u.Age = age
		}
	}

	if err := v.Struct(u); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			if ageInvalid && fe.Field() == "age" {
				// already reported as non-integer
				continue
			}
			d := apperrors.FieldError{
				Field:      fe.Field(),
				Constraint: fe.Tag(),
				Param:      fe.Param(),
			}
			if fe.Field() != "password" {
				d.Value = fmt.Sprintf("%v", fe.Value())
			}
			details = append(details, d)
		}
	}

	if len(details) > 0 {
		return nil, &apperrors.ValidationError{Fields: details}
	}
	return u, nil
}
