package client

import (
	"strings"

	"github.com/finrecords/financial-records-api/internal/models"
)

// Input carries the writable client fields. It doubles as the field
// whitelist: JSON binding drops anything not declared here, so a payload
// injecting is_active or other columns never reaches persistence.
type Input struct {
	ClientCode *string `json:"client_code"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	Department *string `json:"department"`
}

// SanitizeAndNormalize trims every string field, turns empty strings
// into nil, uppercases the client code and lowercases the email. Pure
// function, no I/O.
func SanitizeAndNormalize(in Input) Input {
	out := Input{
		ClientCode: cleanString(in.ClientCode),
		FirstName:  cleanString(in.FirstName),
		LastName:   cleanString(in.LastName),
		Email:      cleanString(in.Email),
		Phone:      cleanString(in.Phone),
		Address:    cleanString(in.Address),
		City:       cleanString(in.City),
		Department: cleanString(in.Department),
	}

	if out.ClientCode != nil {
		upper := strings.ToUpper(*out.ClientCode)
		out.ClientCode = &upper
	}
	if out.Email != nil {
		lower := strings.ToLower(*out.Email)
		out.Email = &lower
	}

	return out
}

func cleanString(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Materialize sanitizes once more and maps the input onto a Client row.
// The handler already sanitized; doing it again keeps the entity layer
// safe when called from elsewhere.
func Materialize(in Input) models.Client {
	in = SanitizeAndNormalize(in)

	c := models.Client{
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		City:       in.City,
		Department: in.Department,
		IsActive:   true,
	}
	if in.ClientCode != nil {
		c.ClientCode = *in.ClientCode
	}
	if in.FirstName != nil {
		c.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		c.LastName = *in.LastName
	}
	return c
}
