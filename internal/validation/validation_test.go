package validation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type userBody struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type mealBody struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description" validate:"required"`
	IsOnDiet    *bool      `json:"is_on_diet" validate:"required"`
	Date        *Timestamp `json:"date" validate:"required,timestamp"`
}

func TestDecodeJSON_Valid(t *testing.T) {
	body := `{"name":"Lunch","description":"","is_on_diet":false,"date":"2024-03-01T12:30:00Z"}`

	req, err := DecodeJSON[mealBody](strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Name != "Lunch" {
		t.Fatalf("expected name Lunch, got %q", req.Name)
	}
	if req.Description == nil || *req.Description != "" {
		t.Fatalf("expected empty description to be kept")
	}
	if req.IsOnDiet == nil || *req.IsOnDiet {
		t.Fatalf("expected is_on_diet false to be kept")
	}
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	if !req.Date.Time.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, req.Date.Time)
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{"missing name", `{"description":"d","is_on_diet":true,"date":"2024-01-01"}`, "name", "name is required"},
		{"empty name", `{"name":"","description":"d","is_on_diet":true,"date":"2024-01-01"}`, "name", "name is required"},
		{"missing description", `{"name":"n","is_on_diet":true,"date":"2024-01-01"}`, "description", "description is required"},
		{"missing flag", `{"name":"n","description":"d","date":"2024-01-01"}`, "is_on_diet", "is_on_diet is required"},
		{"flag wrong type", `{"name":"n","description":"d","is_on_diet":"yes","date":"2024-01-01"}`, "is_on_diet", "is_on_diet must be a boolean"},
		{"name wrong type", `{"name":1,"description":"d","is_on_diet":true,"date":"2024-01-01"}`, "name", "name must be a string"},
		{"missing date", `{"name":"n","description":"d","is_on_diet":true}`, "date", "date is required"},
		{"bad date", `{"name":"n","description":"d","is_on_diet":true,"date":"yesterday"}`, "date", "date must be a valid date"},
		{"date out of range", `{"name":"n","description":"d","is_on_diet":true,"date":1e300}`, "date", "date must be a valid date"},
		{"malformed", `{"name":`, "", "invalid request body"},
		{"empty body", ``, "", "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON[mealBody](strings.NewReader(tt.body))
			if err == nil {
				t.Fatalf("expected error")
			}

			var ve *Error
			if !errors.As(err, &ve) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if ve.Issues[0].Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, ve.Issues[0].Field)
			}
			if ve.Error() != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, ve.Error())
			}
		})
	}
}

func TestDecodeJSON_Email(t *testing.T) {
	_, err := DecodeJSON[userBody](strings.NewReader(`{"name":"Ana","email":"not-an-email"}`))
	if err == nil || err.Error() != "email must be a valid email" {
		t.Fatalf("expected email error, got %v", err)
	}

	if _, err := DecodeJSON[userBody](strings.NewReader(`{"name":"Ana","email":"ana@x.com"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTimestamp_Layouts(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{`"2024-03-01T12:30:00Z"`, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{`"2024-03-01T12:30:00-03:00"`, time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)},
		{`"2024-03-01T12:30:00"`, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{`"2024-03-01 12:30:00"`, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{`"2024-03-01"`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{`1709296200000`, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{`253402300799000`, time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		var ts Timestamp
		if err := ts.UnmarshalJSON([]byte(tt.input)); err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.input, err)
		}
		if !ts.Valid() {
			t.Fatalf("%s: expected valid timestamp", tt.input)
		}
		if !ts.Time.Equal(tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.input, tt.want, ts.Time)
		}
	}
}

func TestTimestamp_Invalid(t *testing.T) {
	inputs := []string{
		`"03/01/2024"`,
		`true`,
		`{}`,
		`1e300`,
		`-1e300`,
		`9e15`,
		`253402300800000`,
		`"10000-01-01"`,
	}
	for _, input := range inputs {
		var ts Timestamp
		if err := ts.UnmarshalJSON([]byte(input)); err != nil {
			t.Fatalf("%s: unexpected error: %v", input, err)
		}
		if ts.Valid() {
			t.Fatalf("%s: expected invalid timestamp", input)
		}
	}
}
