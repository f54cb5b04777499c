package client

import (
	"regexp"
	"unicode/utf8"

	"github.com/finrecords/financial-records-api/internal/validators"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	codeRe  = regexp.MustCompile(`^[A-Z0-9]+$`)
	nameRe  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

// check is one predicate in a field's rule chain.
type check struct {
	ok      func(v string) bool
	message string
}

// fieldRules is an ordered chain for one field. Evaluation bails on the
// first failing check of a field but keeps collecting across fields.
type fieldRules struct {
	field    string
	required string // message when the field is missing; empty = optional
	checks   []check
}

var rules = []fieldRules{
	{
		field:    "client_code",
		required: "Client code is required",
		checks: []check{
			{lengthBetween(3, 20), "Client code must be between 3 and 20 characters"},
			{codeRe.MatchString, "Client code must contain only uppercase letters and numbers"},
		},
	},
	{
		field:    "first_name",
		required: "First name is required",
		checks: []check{
			{lengthBetween(2, 100), "First name must be between 2 and 100 characters"},
			{nameRe.MatchString, "First name must contain only letters and spaces"},
		},
	},
	{
		field:    "last_name",
		required: "Last name is required",
		checks: []check{
			{lengthBetween(2, 100), "Last name must be between 2 and 100 characters"},
			{nameRe.MatchString, "Last name must contain only letters and spaces"},
		},
	},
	{
		field: "email",
		checks: []check{
			{validators.IsValidEmail, "Email must be a valid email address"},
		},
	},
	{
		field: "phone",
		checks: []check{
			{phoneRe.MatchString, "Phone number must contain only numbers, spaces, hyphens, and parentheses"},
		},
	},
	{
		field: "address",
		checks: []check{
			{maxLength(250), "Address must not exceed 250 characters"},
		},
	},
	{
		field: "city",
		checks: []check{
			{maxLength(100), "City must not exceed 100 characters"},
		},
	},
	{
		field: "department",
		checks: []check{
			{maxLength(100), "Department must not exceed 100 characters"},
		},
	},
}

// Validate runs the rule chain against an already sanitized input and
// returns one error per failing field, nil when everything passes.
func Validate(in Input) []FieldError {
	values := map[string]*string{
		"client_code": in.ClientCode,
		"first_name":  in.FirstName,
		"last_name":   in.LastName,
		"email":       in.Email,
		"phone":       in.Phone,
		"address":     in.Address,
		"city":        in.City,
		"department":  in.Department,
	}

	var errs []FieldError
	for _, fr := range rules {
		v := values[fr.field]
		if v == nil {
			if fr.required != "" {
				errs = append(errs, FieldError{Field: fr.field, Message: fr.required})
			}
			continue
		}
		for _, ch := range fr.checks {
			if !ch.ok(*v) {
				errs = append(errs, FieldError{Field: fr.field, Message: ch.message})
				break
			}
		}
	}
	return errs
}

func lengthBetween(min, max int) func(string) bool {
	return func(v string) bool {
		n := utf8.RuneCountInString(v)
		return n >= min && n <= max
	}
}

func maxLength(max int) func(string) bool {
	return func(v string) bool {
		return utf8.RuneCountInString(v) <= max
	}
}
