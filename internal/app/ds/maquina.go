package ds

// Estados posibles de una máquina (enum sin máquina de estados, se
// sobreescribe directamente)
const (
	MaquinaDisponible    = "disponible"
	MaquinaMantenimiento = "mantenimiento"
	MaquinaReparacion    = "reparacion"
)

// Categoría de máquina (pesada, liviana, etc.)
type CategoriaMaquina struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"type:varchar(50);unique;not null"`
	Descripcion string `gorm:"type:text"`
}

// Tabla de máquinas del catálogo
type Maquina struct {
	ID          uint   `gorm:"primaryKey"`
	Tipo        string `gorm:"type:varchar(100);not null"` // texto libre: retroexcavadora, grúa...
	CategoriaID uint   `gorm:"not null;index"`
	EmpresaID   *uint  `gorm:"default:null;index"` // propietaria opcional
	Estado      string `gorm:"type:varchar(20);not null;default:'disponible'"`

	Categoria CategoriaMaquina `gorm:"foreignKey:CategoriaID"`
	Empresa   *Empresa         `gorm:"foreignKey:EmpresaID"`
}
