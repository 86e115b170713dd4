package forms

type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = messages{
	"LoginForm.Username": "Please enter your username.",
	"LoginForm.Password": "Please enter your password.",
}

// Validate trims the username and checks both fields are present.
func (f *LoginForm) Validate() error {
	trim(&f.Username)
	return check(f, loginMessages)
}

// RegisterForm is the signup form. Password2 is the confirmation field and is
// never sent to the backend.
type RegisterForm struct {
	Email     string `validate:"required,email"`
	Username  string `validate:"required"`
	Password  string `validate:"required"`
	Password2 string `validate:"eqfield=Password"`
	Phone     string
	Address   string
}

var registerMessages = messages{
	"RegisterForm.Email.required": "Please enter your email.",
	"RegisterForm.Email.email":    "Please enter a valid email address.",
	"RegisterForm.Username":       "Please enter a username.",
	"RegisterForm.Password":       "Please enter a password.",
	"RegisterForm.Password2":      "Passwords do not match.",
}

func (f *RegisterForm) Validate() error {
	trim(&f.Email, &f.Username, &f.Phone, &f.Address)
	return check(f, registerMessages)
}

// Payload is the request body of the registration endpoint.
func (f *RegisterForm) Payload() map[string]string {
	return map[string]string{
		"email":        f.Email,
		"username":     f.Username,
		"password":     f.Password,
		"phone_number": f.Phone,
		"address":      f.Address,
	}
}
