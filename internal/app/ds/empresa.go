package ds

// Tabla de empresas afiliadas al club
type Empresa struct {
	ID        uint   `gorm:"primaryKey"`
	Nit       string `gorm:"type:varchar(20);unique;not null"`
	Nombre    string `gorm:"type:varchar(100);not null"`
	Direccion string `gorm:"type:varchar(150)"`
	Ciudad    string `gorm:"type:varchar(50)"`
	Telefono  string `gorm:"type:varchar(20)"`
}

// Representante legal de una empresa (cero o uno por empresa)
type Representante struct {
	ID        uint   `gorm:"primaryKey"`
	EmpresaID uint   `gorm:"not null;uniqueIndex"`
	Nombre    string `gorm:"type:varchar(100);not null"`
	Documento string `gorm:"type:varchar(20);not null"`
	Telefono  string `gorm:"type:varchar(20)"`
	Correo    string `gorm:"type:varchar(100)"`

	Empresa Empresa `gorm:"foreignKey:EmpresaID"`
}
