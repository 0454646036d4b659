package request

import (
	"net/url"
	"strings"

	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"
)

type RegisterForm struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=4,max=20"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func NewRegisterForm(values url.Values) *RegisterForm {
	return &RegisterForm{
		Email:           strings.TrimSpace(values.Get("email")),
		Password:        values.Get("password"),
		ConfirmPassword: values.Get("confirm_password"),
	}
}

func (f *RegisterForm) Validate() map[string]string {
	return utils.ValidateStruct(f)
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func NewLoginForm(values url.Values) *LoginForm {
	return &LoginForm{
		Email:    strings.TrimSpace(values.Get("email")),
		Password: values.Get("password"),
	}
}

func (f *LoginForm) Validate() map[string]string {
	return utils.ValidateStruct(f)
}
