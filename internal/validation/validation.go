package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultPetImage is substituted when a pet is submitted without an image URL.
const DefaultPetImage = "https://bytegrad.com/course-assets/react-nextjs/pet-placeholder.png"

var validate = validator.New()

// Credentials is a validated signup/login form.
type Credentials struct {
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"required,max=100"`
}

// PetForm is a validated, normalized pet record form.
type PetForm struct {
	Name      string `validate:"required,max=100"`
	OwnerName string `validate:"required,max=100"`
	ImageURL  string `validate:"omitempty,url,max=512"`
	Age       int    `validate:"gt=0,lte=99999"`
	Notes     string `validate:"max=1000"`
}

// Auth checks credential shape. It never panics; ok is false on any violation.
func Auth(email, password string) (Credentials, bool) {
	creds := Credentials{Email: email, Password: password}
	if err := validate.Struct(creds); err != nil {
		return Credentials{}, false
	}
	return creds, true
}

// Pet normalizes and checks a pet form. Name, owner name, image URL and notes
// are trimmed; an empty image URL is replaced with DefaultPetImage after the
// shape check, so re-validating a normalized form is a no-op.
func Pet(form PetForm) (PetForm, bool) {
	form.Name = strings.TrimSpace(form.Name)
	form.OwnerName = strings.TrimSpace(form.OwnerName)
	form.ImageURL = strings.TrimSpace(form.ImageURL)
	form.Notes = strings.TrimSpace(form.Notes)

	if err := validate.Struct(form); err != nil {
		return PetForm{}, false
	}

	if form.ImageURL == "" {
		form.ImageURL = DefaultPetImage
	}
	return form, true
}

// PetID checks that s is a syntactically valid UUID.
func PetID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
