package dto

// ProfesorRequest sirve para alta y modificación.
type ProfesorRequest struct {
	Apellido string `json:"apellido"`
	Nombre   string `json:"nombre"`
}

// ProfesorConMaterias es la vista de listado: el profesor con las materias
// que dicta, armada con una segunda consulta normalizada (sin aplanado por
// delimitadores).
type ProfesorConMaterias struct {
	IDProfesor     int              `json:"id_profesor"`
	Apellido       string           `json:"apellido"`
	Nombre         string           `json:"nombre"`
	NombreCompleto string           `json:"nombre_completo"`
	Materias       []MateriaDictada `json:"materias"`
}

// MateriaDictada es una materia que un profesor dicta en un curso/división.
type MateriaDictada struct {
	IDCatedra int    `json:"id_catedra"`
	IDMateria int    `json:"id_materia"`
	Materia   string `json:"materia"`
	Curso     string `json:"curso"`
	Division  string `json:"division"`
}
