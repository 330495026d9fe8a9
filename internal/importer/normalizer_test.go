package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var encabezadoCompleto = []string{
	"dni", "apellido y nombre", "cursando año", "cursando división",
	"idmateria", "año materia", "división materia", "condición", "inscripcion", "año",
}

func TestNormalizarFilasEscenarioCompleto(t *testing.T) {
	matriz := [][]string{
		encabezadoCompleto,
		{"12345678", "PEREZ, ANA", "1", "1", "10", "1", "1", "2", "", "2024"},
		{"", "", "", "", "", "", "", "", "", ""}, // vacía: se descarta
	}

	registros := NormalizarFilas(matriz)

	require.Len(t, registros, 1)
	r := registros[0]
	assert.Equal(t, "12345678", r.DNI)
	assert.Equal(t, "PEREZ, ANA", r.Alumno)
	assert.Equal(t, 10, r.IDMateria)
	assert.Equal(t, 2024, r.Anio)
	assert.Equal(t, 0, r.Inscripcion)
	assert.Equal(t, 2, r.IDCondicion)
}

func TestNormalizarFilasDescartaEncabezadoSiempre(t *testing.T) {
	// Aunque el encabezado no coincida con ningún alias, la primera fila
	// nunca llega como dato.
	matriz := [][]string{
		{"columna rara", "otra"},
		{"dato", "dato"},
	}
	registros := NormalizarFilas(matriz)
	require.Len(t, registros, 1)
	assert.Equal(t, "", registros[0].DNI) // sin columna vinculada
}

func TestNormalizarFilasSoloEncabezado(t *testing.T) {
	assert.Nil(t, NormalizarFilas([][]string{encabezadoCompleto}))
	assert.Nil(t, NormalizarFilas(nil))
}

func TestNormalizarFilasPreservaOrden(t *testing.T) {
	matriz := [][]string{
		encabezadoCompleto,
		{"11111111", "A", "1", "1", "1", "1", "1", "1", "0", "2023"},
		{"   ", "", "", "", "", "", "", "", "", ""}, // vacía tras recortar
		{"22222222", "B", "1", "1", "2", "1", "1", "1", "0", "2023"},
	}
	registros := NormalizarFilas(matriz)
	require.Len(t, registros, 2)
	assert.Equal(t, "11111111", registros[0].DNI)
	assert.Equal(t, "22222222", registros[1].DNI)
}

func TestNormalizarFilasFilasCortas(t *testing.T) {
	// Filas más cortas que el encabezado: las columnas faltantes quedan
	// vacías y los enteros coercen a 0.
	matriz := [][]string{
		encabezadoCompleto,
		{"12345678", "GOMEZ, LUIS"},
	}
	registros := NormalizarFilas(matriz)
	require.Len(t, registros, 1)
	assert.Equal(t, 0, registros[0].IDMateria)
	assert.Equal(t, 0, registros[0].Anio)
}

func TestAEntero(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado int
	}{
		{"42", 42},
		{" 42 ", 42},
		{"4.2", 42},   // se descartan los no dígitos
		{"a1b2", 12},
		{"-5", -5},
		{"", 0},
		{"-", 0},
		{"+", 0},
		{"abc", 0},
		{"1º", 1},
	}
	for _, caso := range casos {
		assert.Equal(t, caso.esperado, aEntero(caso.entrada), "entrada %q", caso.entrada)
	}
}
