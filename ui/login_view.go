package ui

import (
	"errors"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"hospital-desk/core"
	"hospital-desk/core/models"
)

// LoginView asks for a user and password. It validates against the
// registered users and opens the session when saved.
type LoginView struct {
	viewBase
	ac *core.AppController

	user     *widget.SelectEntry
	password *widget.Entry
	content  fyne.CanvasObject
}

func NewLoginView(ac *core.AppController) *LoginView {
	users := make([]string, 0, len(ac.DB.Users))
	for name := range ac.DB.Users {
		users = append(users, name)
	}
	sort.Strings(users)

	v := &LoginView{
		viewBase: newViewBase(),
		ac:       ac,
		user:     widget.NewSelectEntry(users),
		password: widget.NewPasswordEntry(),
	}
	v.user.SetPlaceHolder("User")
	v.password.SetPlaceHolder("Password")

	form := widget.NewForm(
		widget.NewFormItem("User", v.user),
		widget.NewFormItem("Password", v.password),
	)
	v.content = container.NewVBox(form, v.status)
	return v
}

func (v *LoginView) CanvasObject() fyne.CanvasObject { return v.content }

// SetCredentials fills the form, as typing would.
func (v *LoginView) SetCredentials(user, password string) {
	v.user.SetText(user)
	v.password.SetText(password)
}

func (v *LoginView) ValidateThis() bool {
	err := v.ac.CheckCredentials(v.user.Text, v.password.Text)
	switch {
	case err == nil:
		return v.accept()
	case errors.Is(err, models.ErrWrongPassword):
		return v.reject("Wrong password.")
	default:
		return v.reject("Unknown user.")
	}
}

func (v *LoginView) SaveThis() error {
	_, err := v.ac.Login(v.user.Text, v.password.Text)
	return err
}

func (v *LoginView) CleanThis() {
	v.password.SetText("")
	v.accept()
}
