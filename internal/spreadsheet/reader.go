package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrArchivoIlegible indica que el binario no pudo interpretarse como
// planilla.
var ErrArchivoIlegible = errors.New("el archivo no pudo leerse como planilla")

// Leer interpreta el archivo como planilla según su extensión (.csv o
// .xlsx) y devuelve la matriz de celdas de la primera hoja, preservando el
// orden de filas, incluidas las vacías. No valida contenido.
func Leer(r io.Reader, nombre string) ([][]string, error) {
	nombre = strings.ToLower(nombre)
	switch {
	case strings.HasSuffix(nombre, ".csv"):
		return leerCSV(r)
	case strings.HasSuffix(nombre, ".xlsx"):
		return leerXLSX(r)
	default:
		return nil, fmt.Errorf("%w: extensión no soportada", ErrArchivoIlegible)
	}
}

func leerCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // filas con distinta cantidad de columnas

	var filas [][]string
	for {
		registro, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrArchivoIlegible, err)
		}
		filas = append(filas, registro)
	}
	return filas, nil
}

func leerXLSX(r io.Reader) ([][]string, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchivoIlegible, err)
	}
	defer xlsx.Close()

	hojas := xlsx.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("%w: sin hojas", ErrArchivoIlegible)
	}

	// Solo la primera hoja.
	filas, err := xlsx.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchivoIlegible, err)
	}
	return filas, nil
}
