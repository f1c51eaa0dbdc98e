package views

import (
	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
)

type User struct {
	ID      string
	Name    string
	Email   string
	Role    string
	Program string
}

func NewUser(u models.User) User {
	program := u.ProgramName
	if u.ProgramAbbreviation != "" {
		program = u.ProgramAbbreviation
	}
	return User{
		ID:      u.ID,
		Name:    nameOr(u.Name, u.Email),
		Email:   u.Email,
		Role:    RoleLabel(u.Role),
		Program: program,
	}
}

type EPA struct {
	ID       string
	Code     string
	Title    string
	Category string
	Active   bool
}

func NewEPA(e models.EPA) EPA {
	return EPA{
		ID:       e.ID,
		Code:     FormatEPACode(e.Code),
		Title:    e.Title,
		Category: e.CategoryTitle,
		Active:   e.IsActive,
	}
}
