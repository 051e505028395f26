package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// User representa un usuario del sistema (personal de la clínica/tienda).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | bodeguero | vendedor
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
