package role

// Rol del usuario dentro del sistema
type Role int

const (
	Operador Role = iota // usuario estándar del back-office
	Gestor               // gestiona solicitudes y mantenimientos
	Admin                // administra el catálogo y el directorio
)
