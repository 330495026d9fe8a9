package dto

type CatedraRequest struct {
	IDMateria  int  `json:"id_materia"`
	IDCurso    int  `json:"id_curso"`
	IDDivision int  `json:"id_division"`
	IDProfesor *int `json:"id_profesor"`
}

type AsignarProfesorRequest struct {
	IDProfesor *int `json:"id_profesor"`
}

// CatedraDetalle es la fila de listado con las etiquetas ya resueltas.
type CatedraDetalle struct {
	IDCatedra  int     `json:"id_catedra"`
	IDMateria  int     `json:"id_materia"`
	Materia    string  `json:"materia"`
	IDCurso    int     `json:"id_curso"`
	Curso      string  `json:"curso"`
	IDDivision int     `json:"id_division"`
	Division   string  `json:"division"`
	IDProfesor *int    `json:"id_profesor"`
	Profesor   *string `json:"profesor"`
}
