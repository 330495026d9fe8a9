package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLeerCSV(t *testing.T) {
	csv := "dni,apellido y nombre,año\n12345678,\"PEREZ, ANA\",2024\n87654321,\"GOMEZ, LUIS\",2023\n"

	filas, err := Leer(strings.NewReader(csv), "previas.csv")
	require.NoError(t, err)
	require.Len(t, filas, 3)
	assert.Equal(t, []string{"dni", "apellido y nombre", "año"}, filas[0])
	assert.Equal(t, "PEREZ, ANA", filas[1][1])
}

func TestLeerCSVColumnasVariables(t *testing.T) {
	csv := "a,b,c\n1,2\n1,2,3,4\n"
	filas, err := Leer(strings.NewReader(csv), "datos.csv")
	require.NoError(t, err)
	require.Len(t, filas, 3)
	assert.Len(t, filas[1], 2)
	assert.Len(t, filas[2], 4)
}

func TestLeerXLSXPrimeraHoja(t *testing.T) {
	libro := excelize.NewFile()
	require.NoError(t, libro.SetSheetRow("Sheet1", "A1", &[]interface{}{"dni", "alumno"}))
	require.NoError(t, libro.SetSheetRow("Sheet1", "A2", &[]interface{}{"12345678", "PEREZ, ANA"}))
	// una segunda hoja que debe ignorarse
	_, err := libro.NewSheet("Otra")
	require.NoError(t, err)
	require.NoError(t, libro.SetSheetRow("Otra", "A1", &[]interface{}{"no", "debe", "leerse"}))

	var buf bytes.Buffer
	require.NoError(t, libro.Write(&buf))

	filas, err := Leer(&buf, "previas.xlsx")
	require.NoError(t, err)
	require.Len(t, filas, 2)
	assert.Equal(t, "12345678", filas[1][0])
}

func TestLeerArchivoIlegible(t *testing.T) {
	_, err := Leer(strings.NewReader("no es un zip"), "previas.xlsx")
	assert.ErrorIs(t, err, ErrArchivoIlegible)

	_, err = Leer(strings.NewReader("da igual"), "previas.pdf")
	assert.ErrorIs(t, err, ErrArchivoIlegible)
}
