package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantOK   bool
	}{
		{name: "valid credentials", email: "al@example.com", password: "secret123", wantOK: true},
		{name: "invalid email", email: "not-an-email", password: "secret123", wantOK: false},
		{name: "empty email", email: "", password: "secret123", wantOK: false},
		{name: "empty password", email: "al@example.com", password: "", wantOK: false},
		{name: "email too long", email: strings.Repeat("a", 95) + "@example.com", password: "secret123", wantOK: false},
		{name: "password too long", email: "al@example.com", password: strings.Repeat("x", 101), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, ok := Auth(tt.email, tt.password)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.email, creds.Email)
				assert.Equal(t, tt.password, creds.Password)
			}
		})
	}
}

func TestPet(t *testing.T) {
	valid := PetForm{
		Name:      "Rex",
		OwnerName: "Al",
		ImageURL:  "https://example.com/rex.png",
		Age:       3,
		Notes:     "Allergic to peanuts",
	}

	tests := []struct {
		name   string
		form   PetForm
		wantOK bool
		want   PetForm
	}{
		{name: "valid form", form: valid, wantOK: true, want: valid},
		{
			name:   "empty image url gets placeholder",
			form:   PetForm{Name: "Rex", OwnerName: "Al", ImageURL: "", Age: 3},
			wantOK: true,
			want:   PetForm{Name: "Rex", OwnerName: "Al", ImageURL: DefaultPetImage, Age: 3},
		},
		{
			name:   "fields are trimmed",
			form:   PetForm{Name: "  Rex ", OwnerName: " Al ", ImageURL: " https://example.com/rex.png ", Age: 3, Notes: " fussy eater "},
			wantOK: true,
			want:   PetForm{Name: "Rex", OwnerName: "Al", ImageURL: "https://example.com/rex.png", Age: 3, Notes: "fussy eater"},
		},
		{name: "missing name", form: PetForm{OwnerName: "Al", Age: 3}, wantOK: false},
		{name: "whitespace-only name", form: PetForm{Name: "   ", OwnerName: "Al", Age: 3}, wantOK: false},
		{name: "name too long", form: PetForm{Name: strings.Repeat("x", 101), OwnerName: "Al", Age: 3}, wantOK: false},
		{name: "missing owner name", form: PetForm{Name: "Rex", Age: 3}, wantOK: false},
		{name: "invalid image url", form: PetForm{Name: "Rex", OwnerName: "Al", ImageURL: "not a url", Age: 3}, wantOK: false},
		{name: "zero age", form: PetForm{Name: "Rex", OwnerName: "Al", Age: 0}, wantOK: false},
		{name: "negative age", form: PetForm{Name: "Rex", OwnerName: "Al", Age: -1}, wantOK: false},
		{name: "age too large", form: PetForm{Name: "Rex", OwnerName: "Al", Age: 100000}, wantOK: false},
		{name: "notes too long", form: PetForm{Name: "Rex", OwnerName: "Al", Age: 3, Notes: strings.Repeat("x", 1001)}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pet(tt.form)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPetIdempotent(t *testing.T) {
	first, ok := Pet(PetForm{Name: " Rex ", OwnerName: "Al", ImageURL: "", Age: 3, Notes: " ok "})
	assert.True(t, ok)

	second, ok := Pet(first)
	assert.True(t, ok)
	assert.Equal(t, first, second)
}

func TestPetID(t *testing.T) {
	id, ok := PetID("7f9c24e5-2f31-4a33-9b1c-9d6e6a2f4d10")
	assert.True(t, ok)
	assert.Equal(t, "7f9c24e5-2f31-4a33-9b1c-9d6e6a2f4d10", id.String())

	for _, bad := range []string{"", "123", "not-a-uuid", "7f9c24e5-2f31-4a33-9b1c"} {
		_, ok := PetID(bad)
		assert.False(t, ok, bad)
	}
}
