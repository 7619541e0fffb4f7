package entities

// Role representa o papel de um usuário no sistema (coluna usertype)
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePatient Role = "patient"
	RoleDentist Role = "dentist"
)

// AppRoles são os papéis aceitos no login e no cadastro do aplicativo
var AppRoles = []Role{RolePatient, RoleDentist}

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePatient, RoleDentist:
		return true
	}
	return false
}

// In verifica se o role pertence ao conjunto informado
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
