package ds

// Cargo (puesto de trabajo) de un empleado
type Cargo struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"type:varchar(50);unique;not null"`
	Descripcion string `gorm:"type:text"`
}

// Tabla de empleados del club
type Empleado struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"type:varchar(100);not null"`
	Documento string `gorm:"type:varchar(20);unique;not null"`
	Telefono  string `gorm:"type:varchar(20)"`
	Correo    string `gorm:"type:varchar(100)"`
	CargoID   uint   `gorm:"not null;index"`

	Cargo Cargo `gorm:"foreignKey:CargoID"`
}
