package firstx

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

const ContactEmail = "sayakdps@gmail.com"

var (
	ErrMissingField = errors.New("this field is required")
	ErrInvalidEmail = errors.New("that doesn't look like an email address")
)

type ContactField int

const (
	FieldName ContactField = iota
	FieldEmail
	FieldMessage

	ContactFieldSize
)

func (f ContactField) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldMessage:
		return "message"
	}
	return fmt.Sprintf("ContactField(%d)", int(f))
}

// FieldError tells which field failed validation.
type FieldError struct {
	Field ContactField
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

type ContactRequest struct {
	Name    string
	Email   string
	Message string
}

func (r ContactRequest) Field(f ContactField) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldMessage:
		return r.Message
	}
	return ""
}

func (r *ContactRequest) SetField(f ContactField, v string) {
	switch f {
	case FieldName:
		r.Name = v
	case FieldEmail:
		r.Email = v
	case FieldMessage:
		r.Message = v
	}
}

type Acknowledgement struct {
	Request ContactRequest
	Message string
	At      time.Time
}

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingField
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	return nil
}

// Validate returns a *FieldError for the first invalid field.
func (r ContactRequest) Validate() error {
	for f := ContactField(0); f < ContactFieldSize; f++ {
		if strings.TrimSpace(r.Field(f)) == "" {
			return &FieldError{Field: f, Err: ErrMissingField}
		}
	}

	if err := ValidateEmail(r.Email); err != nil {
		return &FieldError{Field: FieldEmail, Err: err}
	}

	return nil
}

// ContactForm holds what the visitor typed. Nothing is sent anywhere,
// a submission is logged and acknowledged.
type ContactForm struct {
	Request ContactRequest

	// where the acknowledgement says replies come from
	ReplyTo string

	Now func() time.Time
}

func NewContactForm(replyTo string) *ContactForm {
	f := new(ContactForm)
	f.ReplyTo = replyTo
	f.Now = time.Now
	return f
}

// Submit validates the current request, logs it and resets the form.
// On error the form keeps its values.
func (f *ContactForm) Submit() (Acknowledgement, error) {
	req := ContactRequest{
		Name:    strings.TrimSpace(f.Request.Name),
		Email:   strings.TrimSpace(f.Request.Email),
		Message: strings.TrimSpace(f.Request.Message),
	}

	if err := req.Validate(); err != nil {
		return Acknowledgement{}, err
	}

	InfoLogger.Printf("form submitted: %+v", req)

	ack := Acknowledgement{
		Request: req,
		Message: fmt.Sprintf("Thanks! I'll get back to you soon at %s", f.ReplyTo),
		At:      f.Now(),
	}

	f.Request = ContactRequest{}

	return ack, nil
}
