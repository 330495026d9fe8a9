package repository

import (
	"testing"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El listado arma profesor → materias con una consulta normalizada por id
// de profesor, sin aplanar en strings delimitados.
func TestListarConMaterias(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfesorRepository(db)

	gomez := domain.Profesor{Apellido: "GOMEZ", Nombre: "Laura"}
	perez := domain.Profesor{Apellido: "PEREZ", Nombre: "Juan"}
	require.NoError(t, db.Create(&gomez).Error)
	require.NoError(t, db.Create(&perez).Error)

	matematica := domain.Materia{Nombre: "Matemática"}
	lengua := domain.Materia{Nombre: "Lengua"}
	require.NoError(t, db.Create(&matematica).Error)
	require.NoError(t, db.Create(&lengua).Error)

	curso := domain.Curso{Nombre: "1°"}
	division := domain.Division{Nombre: "A"}
	require.NoError(t, db.Create(&curso).Error)
	require.NoError(t, db.Create(&division).Error)

	require.NoError(t, db.Create(&domain.Catedra{
		IDMateria: matematica.ID, IDCurso: curso.ID, IDDivision: division.ID, IDProfesor: &gomez.ID,
	}).Error)
	require.NoError(t, db.Create(&domain.Catedra{
		IDMateria: lengua.ID, IDCurso: curso.ID, IDDivision: division.ID, IDProfesor: &gomez.ID,
	}).Error)

	profesores, err := repo.ListarConMaterias()
	require.NoError(t, err)
	require.Len(t, profesores, 2)

	// orden alfabético por apellido
	assert.Equal(t, "GOMEZ, Laura", profesores[0].NombreCompleto)
	require.Len(t, profesores[0].Materias, 2)
	assert.Equal(t, "Lengua", profesores[0].Materias[0].Materia)
	assert.Equal(t, "Matemática", profesores[0].Materias[1].Materia)
	assert.Equal(t, "A", profesores[0].Materias[0].Division)

	// sin cátedras asignadas: lista vacía, no nil
	assert.Equal(t, "PEREZ, Juan", profesores[1].NombreCompleto)
	assert.NotNil(t, profesores[1].Materias)
	assert.Empty(t, profesores[1].Materias)
}

// Al eliminar un profesor sus cátedras quedan sin titular, no se borran.
func TestEliminarProfesorDesasignaCatedras(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfesorRepository(db)

	profesor := domain.Profesor{Apellido: "SOSA", Nombre: "Mario"}
	require.NoError(t, db.Create(&profesor).Error)
	require.NoError(t, db.Create(&domain.Catedra{
		IDMateria: 1, IDCurso: 1, IDDivision: 1, IDProfesor: &profesor.ID,
	}).Error)

	require.NoError(t, repo.Eliminar(profesor.ID))

	var catedra domain.Catedra
	require.NoError(t, db.First(&catedra).Error)
	assert.Nil(t, catedra.IDProfesor)

	var cuenta int64
	db.Model(&domain.Profesor{}).Count(&cuenta)
	assert.Equal(t, int64(0), cuenta)
}
