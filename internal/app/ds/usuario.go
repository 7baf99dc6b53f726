package ds

// Tabla de usuarios del sistema
type Usuario struct {
	ID             uint   `gorm:"primaryKey"`
	Login          string `gorm:"type:varchar(50);unique;not null"`
	Password       string `gorm:"type:varchar(255);not null"`
	Rol            int    `gorm:"type:int;default:0;not null"`
	Correo         string `gorm:"type:varchar(100)"`
	NombreCompleto string `gorm:"type:varchar(100)"`
}
