package importer

import (
	"strconv"
	"strings"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
)

// NormalizarFilas convierte la matriz de celdas en registros canónicos.
// La primera fila es siempre encabezado y se descarta; las filas totalmente
// vacías (todas las celdas en blanco tras recortar) se omiten en silencio.
// El orden de las filas del archivo se preserva.
func NormalizarFilas(matriz [][]string) []dto.RegistroPrevia {
	if len(matriz) <= 1 {
		return nil
	}

	mapa := MapearEncabezados(matriz[0])

	var registros []dto.RegistroPrevia
	for _, fila := range matriz[1:] {
		if filaVacia(fila) {
			continue
		}
		registros = append(registros, normalizarFila(fila, mapa))
	}
	return registros
}

func normalizarFila(fila []string, mapa map[string]int) dto.RegistroPrevia {
	return dto.RegistroPrevia{
		DNI:                celda(fila, mapa[CampoDNI]),
		Alumno:             celda(fila, mapa[CampoAlumno]),
		CursandoIDCurso:    aEntero(celda(fila, mapa[CampoCursandoIDCurso])),
		CursandoIDDivision: aEntero(celda(fila, mapa[CampoCursandoIDDivision])),
		IDMateria:          aEntero(celda(fila, mapa[CampoIDMateria])),
		MateriaIDCurso:     aEntero(celda(fila, mapa[CampoMateriaIDCurso])),
		MateriaIDDivision:  aEntero(celda(fila, mapa[CampoMateriaIDDivision])),
		IDCondicion:        aEntero(celda(fila, mapa[CampoIDCondicion])),
		Inscripcion:        aEntero(celda(fila, mapa[CampoInscripcion])),
		Anio:               aEntero(celda(fila, mapa[CampoAnio])),
	}
}

// celda devuelve el valor recortado de la columna idx, o "" si el campo
// quedó sin columna o la fila es más corta.
func celda(fila []string, idx int) string {
	if idx == Ausente || idx >= len(fila) {
		return ""
	}
	return strings.TrimSpace(fila[idx])
}

// aEntero descarta todo lo que no sea dígito o signo menos y parsea el
// resto. Resultados vacíos o de solo signos coercen a 0.
func aEntero(s string) int {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	limpio := b.String()
	if limpio == "" || strings.Trim(limpio, "-") == "" {
		return 0
	}
	n, err := strconv.Atoi(limpio)
	if err != nil {
		return 0
	}
	return n
}

func filaVacia(fila []string) bool {
	for _, c := range fila {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
