package dto

// CrearPreviaRequest es el alta manual de una previa.
type CrearPreviaRequest struct {
	DNI                string `json:"dni"`
	Alumno             string `json:"alumno"`
	CursandoIDCurso    int    `json:"cursando_id_curso"`
	CursandoIDDivision int    `json:"cursando_id_division"`
	IDMateria          int    `json:"id_materia"`
	MateriaIDCurso     int    `json:"materia_id_curso"`
	MateriaIDDivision  int    `json:"materia_id_division"`
	IDCondicion        int    `json:"id_condicion"`
	Inscripcion        *int   `json:"inscripcion"`
	Anio               int    `json:"anio"`
}

// ActualizarPreviaRequest modifica campos no clave; los punteros distinguen
// "no enviado" de cero.
type ActualizarPreviaRequest struct {
	Alumno          *string `json:"alumno"`
	CursandoIDCurso *int    `json:"cursando_id_curso"`
	MateriaIDCurso  *int    `json:"materia_id_curso"`
	IDCondicion     *int    `json:"id_condicion"`
	Inscripcion     *int    `json:"inscripcion"`
}

// FiltroPrevias son los filtros de listado.
type FiltroPrevias struct {
	DNI         string
	Anio        int
	Inscripcion *int
	Pagina      int
	PorPagina   int
}
