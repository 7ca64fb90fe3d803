package firstx

import (
	"errors"
	"testing"
	"time"
)

func TestContactRequestValidate(t *testing.T) {
	valid := ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "Build me a copilot"}

	tests := []struct {
		name   string
		modify func(r *ContactRequest)
		field  ContactField
		err    error
	}{
		{"missing name", func(r *ContactRequest) { r.Name = "" }, FieldName, ErrMissingField},
		{"blank name", func(r *ContactRequest) { r.Name = "   " }, FieldName, ErrMissingField},
		{"missing email", func(r *ContactRequest) { r.Email = "" }, FieldEmail, ErrMissingField},
		{"missing message", func(r *ContactRequest) { r.Message = "\n" }, FieldMessage, ErrMissingField},
		{"email without at", func(r *ContactRequest) { r.Email = "ada.example.com" }, FieldEmail, ErrInvalidEmail},
		{"email with name", func(r *ContactRequest) { r.Email = "Ada <ada@example.com>" }, FieldEmail, ErrInvalidEmail},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.modify(&r)

			err := r.Validate()
			if !errors.Is(err, tt.err) {
				t.Fatalf("Validate() = %v, want %v", err, tt.err)
			}

			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("Validate() = %T, want *FieldError", err)
			}
			if fieldErr.Field != tt.field {
				t.Errorf("field = %v, want %v", fieldErr.Field, tt.field)
			}
		})
	}
}

func TestContactFormSubmit(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	f := NewContactForm(ContactEmail)
	f.Now = func() time.Time { return at }

	f.Request.SetField(FieldName, "  Ada ")
	f.Request.SetField(FieldEmail, "ada@example.com")
	f.Request.SetField(FieldMessage, "Build me a copilot")

	ack, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	if want := "Thanks! I'll get back to you soon at sayakdps@gmail.com"; ack.Message != want {
		t.Errorf("message = %q, want %q", ack.Message, want)
	}
	if ack.Request.Name != "Ada" {
		t.Errorf("name = %q, want it trimmed", ack.Request.Name)
	}
	if !ack.At.Equal(at) {
		t.Errorf("at = %v, want %v", ack.At, at)
	}
	if f.Request != (ContactRequest{}) {
		t.Errorf("form not reset: %+v", f.Request)
	}
}

func TestContactFormSubmitKeepsValuesOnError(t *testing.T) {
	f := NewContactForm(ContactEmail)
	f.Request = ContactRequest{Name: "Ada", Email: "nope", Message: "hi"}

	_, err := f.Submit()
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("Submit() = %v, want ErrInvalidEmail", err)
	}
	if f.Request.Email != "nope" || f.Request.Name != "Ada" {
		t.Errorf("form changed on error: %+v", f.Request)
	}
}

func TestFormViewSubmit(t *testing.T) {
	var timeouts TimeoutQueue
	v := NewFormView(NewContactForm(ContactEmail))

	v.Fields[FieldName].SetText("Ada")
	v.Fields[FieldEmail].SetText("ada@example.com")

	v.submit(&timeouts)

	if v.Error == "" {
		t.Fatalf("no error shown for a missing message")
	}
	if !v.Fields[FieldMessage].Invalid || v.Focused() != FieldMessage {
		t.Errorf("message field not flagged and focused")
	}

	v.Fields[FieldMessage].SetText("Build me a copilot")
	if v.Error != "" || v.Fields[FieldMessage].Invalid {
		t.Errorf("typing did not clear the error")
	}

	v.submit(&timeouts)

	if v.Ack == "" {
		t.Fatalf("no acknowledgement shown")
	}
	for f, field := range v.Fields {
		if field.Text != "" {
			t.Errorf("%v field kept %q", ContactField(f), field.Text)
		}
	}
	if v.HasFocus() {
		t.Errorf("a field kept focus after submit")
	}

	timeouts.Advance(acknowledgeLength)
	if v.Ack != "" {
		t.Errorf("acknowledgement still shown after %v", acknowledgeLength)
	}
}
