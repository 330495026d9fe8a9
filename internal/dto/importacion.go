package dto

// RegistroPrevia es una fila canónica del pipeline de importación, con los
// nombres cortos originales del contrato de la API.
type RegistroPrevia struct {
	DNI                string `json:"dni"`
	Alumno             string `json:"alumno"`
	CursandoIDCurso    int    `json:"cursando_id_curso"`
	CursandoIDDivision int    `json:"cursando_id_division"`
	IDMateria          int    `json:"id_materia"`
	MateriaIDCurso     int    `json:"materia_id_curso"`
	MateriaIDDivision  int    `json:"materia_id_division"`
	IDCondicion        int    `json:"id_condicion"`
	Inscripcion        int    `json:"inscripcion"`
	Anio               int    `json:"anio"`
}

// LoteImportacion es el cuerpo del endpoint de importación.
type LoteImportacion struct {
	Rows []RegistroPrevia `json:"rows"`
}

// ResultadoLote es el resultado de un lote: los tres contadores suman a lo
// sumo la cantidad de filas enviadas; las filas fallidas quedan en Errores.
type ResultadoLote struct {
	Insertados   int      `json:"insertados"`
	Actualizados int      `json:"actualizados"`
	SinCambios   int      `json:"sin_cambios"`
	Errores      []string `json:"errores"`
}

// ResultadoVaciado reporta los conteos antes/después del vaciado.
type ResultadoVaciado struct {
	PreviasAntes        int64  `json:"previas_antes"`
	MesasAntes          int64  `json:"mesas_antes"`
	MesasGruposAntes    int64  `json:"mesas_grupos_antes"`
	MesasBorradas       int64  `json:"mesas_borradas"`
	MesasGruposBorrados int64  `json:"mesas_grupos_borrados"`
	PreviasBorradas     int64  `json:"previas_borradas"`
	Mensaje             string `json:"mensaje"`
}
