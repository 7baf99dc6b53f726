package repository

import (
	"errors"
	"fmt"
	"time"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos del agregado solicitud: la solicitud, sus líneas de reserva
// (máquina + cantidad) y sus empleados asignados se escriben siempre
// dentro de una misma transacción.

// LineaSolicitud es la entrada de una línea de reserva
type LineaSolicitud struct {
	MaquinaID uint
	Cantidad  int
}

// NuevaSolicitud agrupa los datos de creación del agregado
type NuevaSolicitud struct {
	EmpresaID        uint
	Codigo           string
	FechaSolicitud   time.Time
	FechaProgramada  time.Time
	Descripcion      string
	CantidadMaquinas *int // si es nil se deriva como suma de cantidades
	FotoEvidencia    *string
	Lineas           []LineaSolicitud
	EmpleadoIDs      []uint
}

// LineaDetalle es una línea de reserva con los datos de la máquina
type LineaDetalle struct {
	ID              uint
	MaquinaID       uint
	MaquinaTipo     string
	Categoria       string
	Cantidad        int
	MantenimientoID *uint
}

// SolicitudDetalle es la vista completa del agregado
type SolicitudDetalle struct {
	Solicitud ds.Solicitud
	Lineas    []LineaDetalle
	Empleados []ds.Empleado
}

// validarLineas revisa existencia de máquinas, cantidades y duplicados
func (r *Repository) validarLineas(lineas []LineaSolicitud) error {
	vistos := make(map[uint]bool)
	for i, linea := range lineas {
		if linea.Cantidad < 1 {
			return apperr.NewValidationField(
				fmt.Sprintf("maquinas[%d].cantidad", i), "la cantidad debe ser al menos 1")
		}
		if vistos[linea.MaquinaID] {
			return apperr.NewValidationField(
				fmt.Sprintf("maquinas[%d].maquina_id", i), "máquina repetida en la solicitud")
		}
		vistos[linea.MaquinaID] = true
		if !r.MaquinaExiste(linea.MaquinaID) {
			return apperr.NewValidationField(
				fmt.Sprintf("maquinas[%d].maquina_id", i), "la máquina no existe")
		}
	}
	return nil
}

func (r *Repository) validarEmpleados(ids []uint) error {
	for i, id := range ids {
		if !r.EmpleadoExiste(id) {
			return apperr.NewValidationField(
				fmt.Sprintf("empleados[%d]", i), "el empleado no existe")
		}
	}
	return nil
}

// CreateSolicitud persiste la solicitud con sus líneas y asignaciones en
// una sola transacción: o queda todo o no queda nada
func (r *Repository) CreateSolicitud(entrada NuevaSolicitud) (*ds.Solicitud, error) {
	if !r.EmpresaExiste(entrada.EmpresaID) {
		return nil, apperr.NewValidationField("empresa_id", "la empresa no existe")
	}
	if err := r.validarLineas(entrada.Lineas); err != nil {
		return nil, err
	}
	if err := r.validarEmpleados(entrada.EmpleadoIDs); err != nil {
		return nil, err
	}

	cantidad := 0
	if entrada.CantidadMaquinas != nil {
		cantidad = *entrada.CantidadMaquinas
	} else {
		for _, linea := range entrada.Lineas {
			cantidad += linea.Cantidad
		}
	}

	solicitud := ds.Solicitud{
		Codigo:           entrada.Codigo,
		FechaSolicitud:   entrada.FechaSolicitud,
		FechaProgramada:  entrada.FechaProgramada,
		Descripcion:      entrada.Descripcion,
		CantidadMaquinas: cantidad,
		FotoEvidencia:    entrada.FotoEvidencia,
		Estado:           ds.SolicitudPendiente,
		EmpresaID:        entrada.EmpresaID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&solicitud).Error; err != nil {
			return traducirError(err, "solicitud")
		}
		for _, linea := range entrada.Lineas {
			registro := ds.SolicitudMaquina{
				SolicitudID: solicitud.ID,
				MaquinaID:   linea.MaquinaID,
				Cantidad:    linea.Cantidad,
			}
			if err := tx.Create(&registro).Error; err != nil {
				return traducirError(err, "línea de reserva")
			}
		}
		for _, empleadoID := range entrada.EmpleadoIDs {
			registro := ds.SolicitudEmpleado{
				SolicitudID: solicitud.ID,
				EmpleadoID:  empleadoID,
			}
			if err := tx.Create(&registro).Error; err != nil {
				return traducirError(err, "asignación de empleado")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &solicitud, nil
}

func (r *Repository) GetSolicitudByID(id uint) (*ds.Solicitud, error) {
	var solicitud ds.Solicitud
	err := r.db.Preload("Empresa").First(&solicitud, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("solicitud", id)
		}
		return nil, err
	}
	return &solicitud, nil
}

// GetSolicitudDetalle devuelve el agregado completo: solicitud, líneas
// con su máquina y empleados asignados
func (r *Repository) GetSolicitudDetalle(id uint) (*SolicitudDetalle, error) {
	solicitud, err := r.GetSolicitudByID(id)
	if err != nil {
		return nil, err
	}

	lineas, err := r.GetLineasDeSolicitud(id)
	if err != nil {
		return nil, err
	}

	var empleados []ds.Empleado
	err = r.db.Joins("JOIN solicitud_empleados ON solicitud_empleados.empleado_id = empleados.id").
		Where("solicitud_empleados.solicitud_id = ?", id).
		Preload("Cargo").
		Find(&empleados).Error
	if err != nil {
		return nil, err
	}

	return &SolicitudDetalle{
		Solicitud: *solicitud,
		Lineas:    lineas,
		Empleados: empleados,
	}, nil
}

// GetLineasDeSolicitud devuelve las líneas de reserva con datos de máquina
func (r *Repository) GetLineasDeSolicitud(solicitudID uint) ([]LineaDetalle, error) {
	var registros []ds.SolicitudMaquina
	err := r.db.Where("solicitud_id = ?", solicitudID).
		Preload("Maquina").Preload("Maquina.Categoria").
		Order("id").
		Find(&registros).Error
	if err != nil {
		return nil, err
	}

	lineas := make([]LineaDetalle, len(registros))
	for i, registro := range registros {
		lineas[i] = LineaDetalle{
			ID:              registro.ID,
			MaquinaID:       registro.MaquinaID,
			MaquinaTipo:     registro.Maquina.Tipo,
			Categoria:       registro.Maquina.Categoria.Nombre,
			Cantidad:        registro.Cantidad,
			MantenimientoID: registro.MantenimientoID,
		}
	}
	return lineas, nil
}

// FiltroSolicitudes filtra el listado (todo opcional)
type FiltroSolicitudes struct {
	Estado    *string
	EmpresaID *uint
}

func (r *Repository) GetAllSolicitudes(filtro FiltroSolicitudes) ([]ds.Solicitud, error) {
	query := r.db.Preload("Empresa").Order("id")
	if filtro.Estado != nil {
		query = query.Where("estado = ?", *filtro.Estado)
	}
	if filtro.EmpresaID != nil {
		query = query.Where("empresa_id = ?", *filtro.EmpresaID)
	}

	var solicitudes []ds.Solicitud
	err := query.Find(&solicitudes).Error
	return solicitudes, err
}

// ActualizarSolicitud: todos los campos opcionales. Si vienen líneas o
// empleados, el conjunto anterior se REEMPLAZA completo (borrar e
// insertar, nunca mezclar).
type ActualizarSolicitud struct {
	FechaSolicitud   *time.Time
	FechaProgramada  *time.Time
	Descripcion      *string
	CantidadMaquinas *int
	FotoEvidencia    *string
	Estado           *string
	EmpresaID        *uint
	Lineas           *[]LineaSolicitud
	EmpleadoIDs      *[]uint
}

func (r *Repository) UpdateSolicitud(id uint, cambios ActualizarSolicitud) (*ds.Solicitud, error) {
	solicitud, err := r.GetSolicitudByID(id)
	if err != nil {
		return nil, err
	}

	if cambios.Estado != nil && !estadoSolicitudValido(*cambios.Estado) {
		return nil, apperr.NewValidationField("estado", "estado de solicitud inválido")
	}
	if cambios.EmpresaID != nil && !r.EmpresaExiste(*cambios.EmpresaID) {
		return nil, apperr.NewValidationField("empresa_id", "la empresa no existe")
	}
	if cambios.Lineas != nil {
		if err := r.validarLineas(*cambios.Lineas); err != nil {
			return nil, err
		}
	}
	if cambios.EmpleadoIDs != nil {
		if err := r.validarEmpleados(*cambios.EmpleadoIDs); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if cambios.FechaSolicitud != nil {
		updates["fecha_solicitud"] = *cambios.FechaSolicitud
	}
	if cambios.FechaProgramada != nil {
		updates["fecha_programada"] = *cambios.FechaProgramada
	}
	if cambios.Descripcion != nil {
		updates["descripcion"] = *cambios.Descripcion
	}
	if cambios.CantidadMaquinas != nil {
		updates["cantidad_maquinas"] = *cambios.CantidadMaquinas
	}
	if cambios.FotoEvidencia != nil {
		updates["foto_evidencia"] = *cambios.FotoEvidencia
	}
	if cambios.Estado != nil {
		// Sin guarda de transiciones: cualquier estado se puede asignar
		updates["estado"] = *cambios.Estado
	}
	if cambios.EmpresaID != nil {
		updates["empresa_id"] = *cambios.EmpresaID
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(solicitud).Updates(updates).Error; err != nil {
				return traducirError(err, "solicitud")
			}
		}
		if cambios.Lineas != nil {
			if err := tx.Where("solicitud_id = ?", id).Delete(&ds.SolicitudMaquina{}).Error; err != nil {
				return err
			}
			for _, linea := range *cambios.Lineas {
				registro := ds.SolicitudMaquina{
					SolicitudID: id,
					MaquinaID:   linea.MaquinaID,
					Cantidad:    linea.Cantidad,
				}
				if err := tx.Create(&registro).Error; err != nil {
					return traducirError(err, "línea de reserva")
				}
			}
		}
		if cambios.EmpleadoIDs != nil {
			if err := tx.Where("solicitud_id = ?", id).Delete(&ds.SolicitudEmpleado{}).Error; err != nil {
				return err
			}
			for _, empleadoID := range *cambios.EmpleadoIDs {
				registro := ds.SolicitudEmpleado{
					SolicitudID: id,
					EmpleadoID:  empleadoID,
				}
				if err := tx.Create(&registro).Error; err != nil {
					return traducirError(err, "asignación de empleado")
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetSolicitudByID(id)
}

// DeleteSolicitud borra el agregado en cascada: líneas y asignaciones
// caen con la solicitud. Los mantenimientos enlazados sobreviven (la
// solicitud solo los referencia, no los posee).
func (r *Repository) DeleteSolicitud(id uint) error {
	if _, err := r.GetSolicitudByID(id); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ds.Mantenimiento{}).
			Where("solicitud_id = ?", id).
			Update("solicitud_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("solicitud_id = ?", id).Delete(&ds.SolicitudMaquina{}).Error; err != nil {
			return err
		}
		if err := tx.Where("solicitud_id = ?", id).Delete(&ds.SolicitudEmpleado{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Solicitud{}, id).Error
	})
}

func (r *Repository) SolicitudExiste(id uint) bool {
	var count int64
	r.db.Model(&ds.Solicitud{}).Where("id = ?", id).Count(&count)
	return count > 0
}

func estadoSolicitudValido(estado string) bool {
	switch estado {
	case ds.SolicitudPendiente, ds.SolicitudAprobada, ds.SolicitudRechazada, ds.SolicitudCompletada:
		return true
	}
	return false
}
