package repository

import (
	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"gorm.io/gorm"
)

type CatedraRepository struct {
	db *gorm.DB
}

func NewCatedraRepository(db *gorm.DB) *CatedraRepository {
	return &CatedraRepository{db: db}
}

func (r *CatedraRepository) Crear(catedra *domain.Catedra) error {
	return r.db.Create(catedra).Error
}

func (r *CatedraRepository) BuscarPorID(id int) (*domain.Catedra, error) {
	var catedra domain.Catedra
	if err := r.db.First(&catedra, id).Error; err != nil {
		return nil, err
	}
	return &catedra, nil
}

func (r *CatedraRepository) Actualizar(catedra *domain.Catedra) error {
	return r.db.Save(catedra).Error
}

func (r *CatedraRepository) Eliminar(id int) error {
	return r.db.Delete(&domain.Catedra{}, id).Error
}

// AsignarProfesor fija (o con nil, quita) el profesor de la cátedra.
func (r *CatedraRepository) AsignarProfesor(id int, idProfesor *int) error {
	res := r.db.Model(&domain.Catedra{}).Where("id = ?", id).Update("id_profesor", idProfesor)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var existe int64
		r.db.Model(&domain.Catedra{}).Where("id = ?", id).Count(&existe)
		if existe == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// Listar devuelve las cátedras con las etiquetas de materia, curso,
// división y profesor ya resueltas en un único viaje.
func (r *CatedraRepository) Listar() ([]dto.CatedraDetalle, error) {
	var detalles []dto.CatedraDetalle
	err := r.db.Table("catedras").
		Select(`catedras.id AS id_catedra,
			catedras.id_materia AS id_materia,
			materias.nombre AS materia,
			catedras.id_curso AS id_curso,
			cursos.nombre AS curso,
			catedras.id_division AS id_division,
			divisiones.nombre AS division,
			catedras.id_profesor AS id_profesor,
			CASE WHEN profesores.id IS NULL THEN NULL
			     ELSE profesores.apellido || ', ' || profesores.nombre END AS profesor`).
		Joins("JOIN materias ON materias.id = catedras.id_materia").
		Joins("JOIN cursos ON cursos.id = catedras.id_curso").
		Joins("JOIN divisiones ON divisiones.id = catedras.id_division").
		Joins("LEFT JOIN profesores ON profesores.id = catedras.id_profesor").
		Order("cursos.nombre ASC, divisiones.nombre ASC, materias.nombre ASC").
		Scan(&detalles).Error
	return detalles, err
}
