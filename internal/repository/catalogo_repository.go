package repository

import (
	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"gorm.io/gorm"
)

// CatalogoRepository sirve los listados de referencia que pueblan los
// formularios del panel y del formulario público.
type CatalogoRepository struct {
	db *gorm.DB
}

func NewCatalogoRepository(db *gorm.DB) *CatalogoRepository {
	return &CatalogoRepository{db: db}
}

func (r *CatalogoRepository) Condiciones() ([]domain.Condicion, error) {
	var condiciones []domain.Condicion
	err := r.db.Order("id ASC").Find(&condiciones).Error
	return condiciones, err
}

func (r *CatalogoRepository) Cursos() ([]domain.Curso, error) {
	var cursos []domain.Curso
	err := r.db.Order("id ASC").Find(&cursos).Error
	return cursos, err
}

func (r *CatalogoRepository) Divisiones() ([]domain.Division, error) {
	var divisiones []domain.Division
	err := r.db.Order("id ASC").Find(&divisiones).Error
	return divisiones, err
}

func (r *CatalogoRepository) Materias() ([]domain.Materia, error) {
	var materias []domain.Materia
	err := r.db.Order("nombre ASC").Find(&materias).Error
	return materias, err
}
