package repository

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"gorm.io/gorm"
)

var (
	// ErrAlmacenNoDisponible: la conexión al almacén no existe; el lote
	// completo se rechaza sin efectos parciales.
	ErrAlmacenNoDisponible = errors.New("almacén de datos no disponible")
	// ErrVaciadoFallido: la transacción de vaciado no pudo confirmarse;
	// las tres tablas quedan intactas.
	ErrVaciadoFallido = errors.New("el vaciado no pudo completarse")
)

var dniValido = regexp.MustCompile(`^\d{7,9}$`)

type PreviaRepository struct {
	db *gorm.DB
}

func NewPreviaRepository(db *gorm.DB) *PreviaRepository {
	return &PreviaRepository{db: db}
}

// ImportarLote ejecuta un upsert por registro contra la clave natural
// (dni, id_materia, anio, cursando_id_division, materia_id_division) y
// clasifica cada resultado en insertado, actualizado o sin cambios. Los
// fallos por registro se describen con su índice de fila (base 1, contado
// desde la primera fila de datos) y el lote continúa; ningún fallo de fila
// aborta el lote.
func (r *PreviaRepository) ImportarLote(registros []dto.RegistroPrevia) (*dto.ResultadoLote, error) {
	if r.db == nil {
		return nil, ErrAlmacenNoDisponible
	}

	resultado := &dto.ResultadoLote{Errores: []string{}}
	hoy := time.Now()

	for i, registro := range registros {
		fila := i + 1

		if registro.Anio == 0 {
			registro.Anio = hoy.Year()
		}
		if err := validarClave(registro); err != nil {
			resultado.Errores = append(resultado.Errores,
				fmt.Sprintf("fila %d: %v (%s)", fila, err, claveNatural(registro)))
			continue
		}

		clase, err := r.upsert(registro, hoy)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				resultado.Errores = append(resultado.Errores,
					fmt.Sprintf("fila %d: clave natural duplicada (%s)", fila, claveNatural(registro)))
			} else {
				resultado.Errores = append(resultado.Errores,
					fmt.Sprintf("fila %d: %v (%s)", fila, err, claveNatural(registro)))
			}
			continue
		}

		switch clase {
		case claseInsertado:
			resultado.Insertados++
		case claseActualizado:
			resultado.Actualizados++
		case claseSinCambios:
			resultado.SinCambios++
		}
	}
	return resultado, nil
}

type claseUpsert int

const (
	claseInsertado claseUpsert = iota
	claseActualizado
	claseSinCambios
)

// upsert busca por clave natural y decide entre alta, actualización o
// no-op. La búsqueda previa da la clasificación de tres vías que un
// ON CONFLICT no distingue de forma portable; una inserción que pierde la
// carrera contra otro escritor igualmente aflora como ErrDuplicatedKey.
func (r *PreviaRepository) upsert(registro dto.RegistroPrevia, hoy time.Time) (claseUpsert, error) {
	var existente domain.Previa
	err := r.db.Where(
		"dni = ? AND id_materia = ? AND anio = ? AND cursando_id_division = ? AND materia_id_division = ?",
		registro.DNI, registro.IDMateria, registro.Anio,
		registro.CursandoIDDivision, registro.MateriaIDDivision,
	).First(&existente).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		nueva := domain.Previa{
			DNI:                registro.DNI,
			Alumno:             registro.Alumno,
			CursandoIDCurso:    registro.CursandoIDCurso,
			CursandoIDDivision: registro.CursandoIDDivision,
			IDMateria:          registro.IDMateria,
			MateriaIDCurso:     registro.MateriaIDCurso,
			MateriaIDDivision:  registro.MateriaIDDivision,
			IDCondicion:        registro.IDCondicion,
			Inscripcion:        registro.Inscripcion,
			Anio:               registro.Anio,
			FechaCarga:         hoy,
		}
		if err := r.db.Create(&nueva).Error; err != nil {
			return 0, err
		}
		return claseInsertado, nil
	}
	if err != nil {
		return 0, err
	}

	if sinCambios(existente, registro) {
		return claseSinCambios, nil
	}

	err = r.db.Model(&existente).Updates(map[string]interface{}{
		"alumno":            registro.Alumno,
		"cursando_id_curso": registro.CursandoIDCurso,
		"materia_id_curso":  registro.MateriaIDCurso,
		"id_condicion":      registro.IDCondicion,
		"inscripcion":       registro.Inscripcion,
		"fecha_carga":       hoy,
	}).Error
	if err != nil {
		return 0, err
	}
	return claseActualizado, nil
}

// sinCambios compara los campos no clave; los de la clave no pueden
// diferir porque la búsqueda fue exactamente por ellos.
func sinCambios(p domain.Previa, r dto.RegistroPrevia) bool {
	return p.Alumno == r.Alumno &&
		p.CursandoIDCurso == r.CursandoIDCurso &&
		p.MateriaIDCurso == r.MateriaIDCurso &&
		p.IDCondicion == r.IDCondicion &&
		p.Inscripcion == r.Inscripcion
}

func validarClave(r dto.RegistroPrevia) error {
	if !dniValido.MatchString(r.DNI) {
		return errors.New("dni inválido, se esperan 7 a 9 dígitos")
	}
	if r.IDMateria <= 0 {
		return errors.New("id_materia debe ser positivo")
	}
	return nil
}

func claveNatural(r dto.RegistroPrevia) string {
	return fmt.Sprintf(
		"dni=%s, id_materia=%d, anio=%d, cursando_id_division=%d, materia_id_division=%d",
		r.DNI, r.IDMateria, r.Anio, r.CursandoIDDivision, r.MateriaIDDivision,
	)
}

// Vaciar borra mesas, grupos de mesas y previas, en ese orden de
// dependencia, dentro de una única transacción: ante cualquier fallo no
// persiste ningún borrado parcial. Tras confirmar, reinicia los contadores
// de identidad a 1 a mejor esfuerzo; un fallo ahí no invalida el vaciado.
func (r *PreviaRepository) Vaciar() (*dto.ResultadoVaciado, error) {
	if r.db == nil {
		return nil, ErrAlmacenNoDisponible
	}

	resultado := &dto.ResultadoVaciado{}
	r.db.Model(&domain.Previa{}).Count(&resultado.PreviasAntes)
	r.db.Model(&domain.Mesa{}).Count(&resultado.MesasAntes)
	r.db.Model(&domain.MesaGrupo{}).Count(&resultado.MesasGruposAntes)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Mesa{})
		if res.Error != nil {
			return res.Error
		}
		resultado.MesasBorradas = res.RowsAffected

		res = tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.MesaGrupo{})
		if res.Error != nil {
			return res.Error
		}
		resultado.MesasGruposBorrados = res.RowsAffected

		res = tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Previa{})
		if res.Error != nil {
			return res.Error
		}
		resultado.PreviasBorradas = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVaciadoFallido, err)
	}

	for _, tabla := range []string{"mesas", "mesas_grupos", "previas"} {
		r.reiniciarIdentidad(tabla)
	}

	resultado.Mensaje = "vaciado completado"
	return resultado, nil
}

// reiniciarIdentidad es por dialecto y a mejor esfuerzo.
func (r *PreviaRepository) reiniciarIdentidad(tabla string) {
	var err error
	switch r.db.Dialector.Name() {
	case "postgres":
		err = r.db.Exec(fmt.Sprintf("ALTER SEQUENCE IF EXISTS %s_id_seq RESTART WITH 1", tabla)).Error
	case "sqlite":
		err = r.db.Exec("DELETE FROM sqlite_sequence WHERE name = ?", tabla).Error
	}
	if err != nil {
		log.Printf("no se pudo reiniciar la identidad de %s: %v", tabla, err)
	}
}

// Asegurar verifica la existencia de las tres tablas del pipeline y crea
// las que falten. Es idempotente.
func (r *PreviaRepository) Asegurar() error {
	if r.db == nil {
		return ErrAlmacenNoDisponible
	}
	modelos := []interface{}{&domain.Previa{}, &domain.MesaGrupo{}, &domain.Mesa{}}
	for _, modelo := range modelos {
		if r.db.Migrator().HasTable(modelo) {
			continue
		}
		if err := r.db.AutoMigrate(modelo); err != nil {
			return err
		}
	}
	return nil
}

// --- CRUD de previas (carga manual) ---

func (r *PreviaRepository) Listar(filtro dto.FiltroPrevias) ([]domain.Previa, int64, error) {
	query := r.db.Model(&domain.Previa{})
	if filtro.DNI != "" {
		query = query.Where("dni = ?", filtro.DNI)
	}
	if filtro.Anio > 0 {
		query = query.Where("anio = ?", filtro.Anio)
	}
	if filtro.Inscripcion != nil {
		query = query.Where("inscripcion = ?", *filtro.Inscripcion)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filtro.PorPagina <= 0 {
		filtro.PorPagina = 50
	}
	if filtro.Pagina <= 0 {
		filtro.Pagina = 1
	}

	var previas []domain.Previa
	err := query.
		Order("alumno ASC, anio DESC").
		Limit(filtro.PorPagina).
		Offset((filtro.Pagina - 1) * filtro.PorPagina).
		Find(&previas).Error
	return previas, total, err
}

func (r *PreviaRepository) BuscarPorID(id int) (*domain.Previa, error) {
	var previa domain.Previa
	if err := r.db.First(&previa, id).Error; err != nil {
		return nil, err
	}
	return &previa, nil
}

func (r *PreviaRepository) Crear(previa *domain.Previa) error {
	previa.FechaCarga = time.Now()
	return r.db.Create(previa).Error
}

func (r *PreviaRepository) Actualizar(previa *domain.Previa) error {
	return r.db.Save(previa).Error
}

func (r *PreviaRepository) Eliminar(id int) error {
	return r.db.Delete(&domain.Previa{}, id).Error
}

// CambiarInscripcion fija el flag de inscripción; es idempotente.
func (r *PreviaRepository) CambiarInscripcion(id int, inscripto bool) error {
	valor := 0
	if inscripto {
		valor = 1
	}
	res := r.db.Model(&domain.Previa{}).Where("id = ?", id).Update("inscripcion", valor)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var existe int64
		r.db.Model(&domain.Previa{}).Where("id = ?", id).Count(&existe)
		if existe == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// ListarPorDNI devuelve las previas de un alumno, para el formulario
// público de inscripción.
func (r *PreviaRepository) ListarPorDNI(dni string) ([]domain.Previa, error) {
	var previas []domain.Previa
	err := r.db.Where("dni = ?", dni).Order("anio DESC, id_materia ASC").Find(&previas).Error
	return previas, err
}
