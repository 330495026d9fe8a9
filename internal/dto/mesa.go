package dto

type CrearMesaRequest struct {
	IDPrevia int  `json:"id_previa"`
	IDGrupo  *int `json:"id_grupo"`
}

type CrearGrupoRequest struct {
	Fecha       *string `json:"fecha"`
	Turno       *string `json:"turno"`
	IDProfesor1 *int    `json:"id_profesor_1"`
	IDProfesor2 *int    `json:"id_profesor_2"`
	IDProfesor3 *int    `json:"id_profesor_3"`
}

// MesaDetalle es la fila de listado con los datos de la previa resueltos.
type MesaDetalle struct {
	IDMesa   int     `json:"id_mesa"`
	IDPrevia int     `json:"id_previa"`
	DNI      string  `json:"dni"`
	Alumno   string  `json:"alumno"`
	Materia  string  `json:"materia"`
	IDGrupo  *int    `json:"id_grupo"`
	Fecha    *string `json:"fecha"`
	Turno    *string `json:"turno"`
}
