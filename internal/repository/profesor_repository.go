package repository

import (
	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"gorm.io/gorm"
)

type ProfesorRepository struct {
	db *gorm.DB
}

func NewProfesorRepository(db *gorm.DB) *ProfesorRepository {
	return &ProfesorRepository{db: db}
}

func (r *ProfesorRepository) Crear(profesor *domain.Profesor) error {
	return r.db.Create(profesor).Error
}

func (r *ProfesorRepository) BuscarPorID(id int) (*domain.Profesor, error) {
	var profesor domain.Profesor
	if err := r.db.First(&profesor, id).Error; err != nil {
		return nil, err
	}
	return &profesor, nil
}

func (r *ProfesorRepository) Actualizar(profesor *domain.Profesor) error {
	return r.db.Save(profesor).Error
}

func (r *ProfesorRepository) Eliminar(id int) error {
	// Las cátedras quedan sin profesor asignado, no se borran.
	if err := r.db.Model(&domain.Catedra{}).
		Where("id_profesor = ?", id).
		Update("id_profesor", nil).Error; err != nil {
		return err
	}
	return r.db.Delete(&domain.Profesor{}, id).Error
}

// ListarConMaterias arma la relación profesor → materias dictadas con una
// segunda consulta normalizada agrupada en memoria por id de profesor, en
// lugar de aplanar la lista en un string delimitado.
func (r *ProfesorRepository) ListarConMaterias() ([]dto.ProfesorConMaterias, error) {
	var profesores []domain.Profesor
	if err := r.db.Order("apellido ASC, nombre ASC").Find(&profesores).Error; err != nil {
		return nil, err
	}

	type filaDictado struct {
		IDProfesor int
		IDCatedra  int
		IDMateria  int
		Materia    string
		Curso      string
		Division   string
	}
	var dictados []filaDictado
	err := r.db.Table("catedras").
		Select(`catedras.id_profesor AS id_profesor,
			catedras.id AS id_catedra,
			catedras.id_materia AS id_materia,
			materias.nombre AS materia,
			cursos.nombre AS curso,
			divisiones.nombre AS division`).
		Joins("JOIN materias ON materias.id = catedras.id_materia").
		Joins("JOIN cursos ON cursos.id = catedras.id_curso").
		Joins("JOIN divisiones ON divisiones.id = catedras.id_division").
		Where("catedras.id_profesor IS NOT NULL").
		Order("materias.nombre ASC").
		Scan(&dictados).Error
	if err != nil {
		return nil, err
	}

	porProfesor := make(map[int][]dto.MateriaDictada, len(profesores))
	for _, d := range dictados {
		porProfesor[d.IDProfesor] = append(porProfesor[d.IDProfesor], dto.MateriaDictada{
			IDCatedra: d.IDCatedra,
			IDMateria: d.IDMateria,
			Materia:   d.Materia,
			Curso:     d.Curso,
			Division:  d.Division,
		})
	}

	salida := make([]dto.ProfesorConMaterias, 0, len(profesores))
	for _, p := range profesores {
		materias := porProfesor[p.ID]
		if materias == nil {
			materias = []dto.MateriaDictada{}
		}
		salida = append(salida, dto.ProfesorConMaterias{
			IDProfesor:     p.ID,
			Apellido:       p.Apellido,
			Nombre:         p.Nombre,
			NombreCompleto: p.NombreCompleto(),
			Materias:       materias,
		})
	}
	return salida, nil
}
