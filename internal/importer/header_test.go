package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapearEncabezadosAliasBasicos(t *testing.T) {
	encabezado := []string{
		"DNI", "Apellido y Nombre", "Cursando Año", "Cursando División",
		"IdMateria", "Año Materia", "División Materia", "Condición", "Año", "Inscripcion",
	}

	mapa := MapearEncabezados(encabezado)

	assert.Equal(t, 0, mapa[CampoDNI])
	assert.Equal(t, 1, mapa[CampoAlumno])
	assert.Equal(t, 2, mapa[CampoCursandoIDCurso])
	assert.Equal(t, 3, mapa[CampoCursandoIDDivision])
	assert.Equal(t, 4, mapa[CampoIDMateria])
	assert.Equal(t, 5, mapa[CampoMateriaIDCurso])
	assert.Equal(t, 6, mapa[CampoMateriaIDDivision])
	assert.Equal(t, 7, mapa[CampoIDCondicion])
	assert.Equal(t, 8, mapa[CampoAnio])
	assert.Equal(t, 9, mapa[CampoInscripcion])
}

// La comparación ignora acentos, mayúsculas y espacios alrededor.
func TestMapearEncabezadosInsensibleAAcentos(t *testing.T) {
	conAcentos := MapearEncabezados([]string{"  CONDICIÓN  ", "división materia"})
	sinAcentos := MapearEncabezados([]string{"condicion", "DIVISION MATERIA"})

	assert.Equal(t, 0, conAcentos[CampoIDCondicion])
	assert.Equal(t, 0, sinAcentos[CampoIDCondicion])
	assert.Equal(t, 1, conAcentos[CampoMateriaIDDivision])
	assert.Equal(t, 1, sinAcentos[CampoMateriaIDDivision])
}

func TestMapearEncabezadosCampoAusente(t *testing.T) {
	mapa := MapearEncabezados([]string{"dni", "apellido y nombre"})

	assert.Equal(t, 0, mapa[CampoDNI])
	assert.Equal(t, 1, mapa[CampoAlumno])
	assert.Equal(t, Ausente, mapa[CampoInscripcion])
	assert.Equal(t, Ausente, mapa[CampoAnio])
	assert.Equal(t, Ausente, mapa[CampoIDMateria])
}

// "año" solo no debe capturar "cursando año" ni "año materia": la
// coincidencia es por celda exacta, y gana el primer alias en orden de
// tabla.
func TestMapearEncabezadosCoincidenciaExacta(t *testing.T) {
	mapa := MapearEncabezados([]string{"cursando año", "año materia", "año"})

	assert.Equal(t, 0, mapa[CampoCursandoIDCurso])
	assert.Equal(t, 1, mapa[CampoMateriaIDCurso])
	assert.Equal(t, 2, mapa[CampoAnio])
}

func TestMapearEncabezadosAliasAlternativos(t *testing.T) {
	mapa := MapearEncabezados([]string{"cod materia", "alumno", "inscripto"})

	assert.Equal(t, 0, mapa[CampoIDMateria])
	assert.Equal(t, 1, mapa[CampoAlumno])
	assert.Equal(t, 2, mapa[CampoInscripcion])
}
