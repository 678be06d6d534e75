package validation

import "strings"

type LoginInput struct {
	Username string
	Password string
}

func ValidateLogin(raw map[string]string) (LoginInput, Errors) {
	errs := Errors{}

	in := LoginInput{
		Username: strings.TrimSpace(raw["username"]),
		Password: raw["password"],
	}

	if in.Username == "" {
		errs.Add("username", "Username is required")
	}
	if in.Password == "" {
		errs.Add("password", "Password is required")
	}

	return in, errs
}
