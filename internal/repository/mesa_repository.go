package repository

import (
	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"gorm.io/gorm"
)

type MesaRepository struct {
	db *gorm.DB
}

func NewMesaRepository(db *gorm.DB) *MesaRepository {
	return &MesaRepository{db: db}
}

func (r *MesaRepository) Crear(mesa *domain.Mesa) error {
	return r.db.Create(mesa).Error
}

func (r *MesaRepository) BuscarPorID(id int) (*domain.Mesa, error) {
	var mesa domain.Mesa
	if err := r.db.First(&mesa, id).Error; err != nil {
		return nil, err
	}
	return &mesa, nil
}

func (r *MesaRepository) Eliminar(id int) error {
	return r.db.Delete(&domain.Mesa{}, id).Error
}

func (r *MesaRepository) CrearGrupo(grupo *domain.MesaGrupo) error {
	return r.db.Create(grupo).Error
}

func (r *MesaRepository) EliminarGrupo(id int) error {
	// Las mesas del grupo quedan sin grupo, no se borran.
	if err := r.db.Model(&domain.Mesa{}).
		Where("id_grupo = ?", id).
		Update("id_grupo", nil).Error; err != nil {
		return err
	}
	return r.db.Delete(&domain.MesaGrupo{}, id).Error
}

func (r *MesaRepository) ListarGrupos() ([]domain.MesaGrupo, error) {
	var grupos []domain.MesaGrupo
	err := r.db.Order("id ASC").Find(&grupos).Error
	return grupos, err
}

// Listar resuelve en un viaje la previa y el grupo de cada mesa.
func (r *MesaRepository) Listar() ([]dto.MesaDetalle, error) {
	var detalles []dto.MesaDetalle
	err := r.db.Table("mesas").
		Select(`mesas.id AS id_mesa,
			mesas.id_previa AS id_previa,
			previas.dni AS dni,
			previas.alumno AS alumno,
			materias.nombre AS materia,
			mesas.id_grupo AS id_grupo,
			mesas_grupos.fecha AS fecha,
			mesas_grupos.turno AS turno`).
		Joins("JOIN previas ON previas.id = mesas.id_previa").
		Joins("LEFT JOIN materias ON materias.id = previas.id_materia").
		Joins("LEFT JOIN mesas_grupos ON mesas_grupos.id = mesas.id_grupo").
		Order("previas.alumno ASC").
		Scan(&detalles).Error
	return detalles, err
}
