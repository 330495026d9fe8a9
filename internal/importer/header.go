package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Campos canónicos de una fila de previa.
const (
	CampoDNI                = "dni"
	CampoAlumno             = "alumno"
	CampoCursandoIDCurso    = "cursando_id_curso"
	CampoCursandoIDDivision = "cursando_id_division"
	CampoIDMateria          = "id_materia"
	CampoMateriaIDCurso     = "materia_id_curso"
	CampoMateriaIDDivision  = "materia_id_division"
	CampoIDCondicion        = "id_condicion"
	CampoInscripcion        = "inscripcion"
	CampoAnio               = "anio"
)

// Ausente marca un campo canónico sin columna en el encabezado.
const Ausente = -1

type aliasCampo struct {
	campo string
	alias []string // ya en forma normalizada (minúsculas, sin acentos)
}

// Tabla de alias por campo. El orden importa: gana la primera coincidencia
// en orden de tabla. Los alias se comparan normalizados, así "Año",
// "año " y "ANO" son equivalentes.
var tablaAlias = []aliasCampo{
	{CampoDNI, []string{"dni", "documento"}},
	{CampoAlumno, []string{"apellido y nombre", "apellido y nombres", "alumno"}},
	{CampoCursandoIDCurso, []string{"cursando ano", "cursando curso", "curso cursando"}},
	{CampoCursandoIDDivision, []string{"cursando division", "division cursando"}},
	{CampoIDMateria, []string{"idmateria", "cod materia", "id materia", "codigo materia"}},
	{CampoMateriaIDCurso, []string{"ano materia", "curso materia"}},
	{CampoMateriaIDDivision, []string{"division materia"}},
	{CampoIDCondicion, []string{"condicion", "id condicion"}},
	{CampoAnio, []string{"ano", "anio"}},
	{CampoInscripcion, []string{"inscripcion", "inscripto"}},
}

// MapearEncabezados vincula cada campo canónico con el índice de columna de
// la fila de encabezado. La comparación ignora mayúsculas, acentos y
// espacios alrededor; un campo sin columna queda en Ausente.
func MapearEncabezados(encabezado []string) map[string]int {
	normalizado := make([]string, len(encabezado))
	for i, celda := range encabezado {
		normalizado[i] = normalizarTexto(celda)
	}

	mapa := make(map[string]int, len(tablaAlias))
	for _, entrada := range tablaAlias {
		mapa[entrada.campo] = Ausente
		for _, alias := range entrada.alias {
			if idx := indiceDe(normalizado, alias); idx != Ausente {
				mapa[entrada.campo] = idx
				break
			}
		}
	}
	return mapa
}

func indiceDe(columnas []string, valor string) int {
	for i, c := range columnas {
		if c == valor {
			return i
		}
	}
	return Ausente
}

// normalizarTexto pasa a minúsculas, quita acentos (NFD → quitar Mn → NFC),
// recorta espacios y colapsa los internos.
func normalizarTexto(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	ascii, _, err := transform.String(t, s)
	if err != nil {
		ascii = s
	}

	return strings.Join(strings.Fields(ascii), " ")
}
