package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa o perfil de um usuário do sistema.
// O ID é o mesmo do registro no provedor de credenciais; a senha nunca é guardada aqui.
type User struct {
	ID            string
	Username      string
	Email         valueobjects.Email
	Role          Role
	FirstName     string
	LastName      string
	ContactNumber *string
	Address       *string
	FCMToken      *string
	IsDeleted     bool
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName retorna nome e sobrenome
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete(now time.Time) {
	u.IsDeleted = true
	u.DeletedAt = &now
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return errors.New("username is required")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if strings.TrimSpace(u.FirstName) == "" || strings.TrimSpace(u.LastName) == "" {
		return errors.New("first and last name are required")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
