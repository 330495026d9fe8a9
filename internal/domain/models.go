package domain

import "time"

// Rol de usuario
type RolUsuario string

const (
	RolAdmin    RolUsuario = "admin"
	RolConsulta RolUsuario = "consulta"
)

// Previa: materia adeudada por un alumno, candidata a inscripción en una
// mesa de examen. La clave natural (dni, id_materia, anio,
// cursando_id_division, materia_id_division) está declarada como índice
// único compuesto; el motor de importación resuelve colisiones contra ella.
type Previa struct {
	ID                 int       `gorm:"primaryKey;autoIncrement" json:"id_previa"`
	DNI                string    `gorm:"type:varchar(9);not null;uniqueIndex:ux_previas_clave_natural,priority:1" json:"dni"`
	Alumno             string    `gorm:"type:varchar(120);not null" json:"alumno"`
	CursandoIDCurso    int       `gorm:"not null;default:0" json:"cursando_id_curso"`
	CursandoIDDivision int       `gorm:"not null;default:0;uniqueIndex:ux_previas_clave_natural,priority:4" json:"cursando_id_division"`
	IDMateria          int       `gorm:"not null;uniqueIndex:ux_previas_clave_natural,priority:2" json:"id_materia"`
	MateriaIDCurso     int       `gorm:"not null;default:0" json:"materia_id_curso"`
	MateriaIDDivision  int       `gorm:"not null;default:0;uniqueIndex:ux_previas_clave_natural,priority:5" json:"materia_id_division"`
	IDCondicion        int       `gorm:"not null;default:0" json:"id_condicion"`
	Inscripcion        int       `gorm:"not null;default:0" json:"inscripcion"`
	Anio               int       `gorm:"not null;uniqueIndex:ux_previas_clave_natural,priority:3" json:"anio"`
	FechaCarga         time.Time `gorm:"not null" json:"fecha_carga"`
}

func (Previa) TableName() string { return "previas" }

// Profesor (docente)
type Profesor struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id_profesor"`
	Apellido string `gorm:"type:varchar(60);not null" json:"apellido"`
	Nombre   string `gorm:"type:varchar(60);not null" json:"nombre"`
}

func (Profesor) TableName() string { return "profesores" }

// NombreCompleto compone "APELLIDO, NOMBRE", la convención de visualización
// usada en listados y en el campo alumno de las previas.
func (p Profesor) NombreCompleto() string {
	if p.Nombre == "" {
		return p.Apellido
	}
	return p.Apellido + ", " + p.Nombre
}

type Materia struct {
	ID     int    `gorm:"primaryKey;autoIncrement" json:"id_materia"`
	Nombre string `gorm:"type:varchar(100);not null" json:"nombre"`
}

func (Materia) TableName() string { return "materias" }

type Curso struct {
	ID     int    `gorm:"primaryKey;autoIncrement" json:"id_curso"`
	Nombre string `gorm:"type:varchar(20);not null" json:"nombre"`
}

func (Curso) TableName() string { return "cursos" }

type Division struct {
	ID     int    `gorm:"primaryKey;autoIncrement" json:"id_division"`
	Nombre string `gorm:"type:varchar(20);not null" json:"nombre"`
}

func (Division) TableName() string { return "divisiones" }

// Condición de inscripción (regular, libre, etc.)
type Condicion struct {
	ID     int    `gorm:"primaryKey;autoIncrement" json:"id_condicion"`
	Nombre string `gorm:"type:varchar(40);not null" json:"nombre"`
}

func (Condicion) TableName() string { return "condiciones" }

// Cátedra: materia dictada en un curso/división, con profesor opcional.
type Catedra struct {
	ID         int  `gorm:"primaryKey;autoIncrement" json:"id_catedra"`
	IDMateria  int  `gorm:"not null;uniqueIndex:ux_catedras_dictado,priority:1" json:"id_materia"`
	IDCurso    int  `gorm:"not null;uniqueIndex:ux_catedras_dictado,priority:2" json:"id_curso"`
	IDDivision int  `gorm:"not null;uniqueIndex:ux_catedras_dictado,priority:3" json:"id_division"`
	IDProfesor *int `json:"id_profesor"`
}

func (Catedra) TableName() string { return "catedras" }

// MesaGrupo: tribunal de una mesa de examen, hasta tres profesores.
type MesaGrupo struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id_grupo"`
	Fecha       *string `gorm:"type:varchar(10)" json:"fecha"`
	Turno       *string `gorm:"type:varchar(30)" json:"turno"`
	IDProfesor1 *int    `json:"id_profesor_1"`
	IDProfesor2 *int    `json:"id_profesor_2"`
	IDProfesor3 *int    `json:"id_profesor_3"`
}

func (MesaGrupo) TableName() string { return "mesas_grupos" }

// Mesa: una previa asignada a una mesa de examen. Referencia previas y
// mesas_grupos, por eso el vaciado la borra primero.
type Mesa struct {
	ID       int  `gorm:"primaryKey;autoIncrement" json:"id_mesa"`
	IDPrevia int  `gorm:"not null;uniqueIndex" json:"id_previa"`
	IDGrupo  *int `json:"id_grupo"`
}

func (Mesa) TableName() string { return "mesas" }

type Usuario struct {
	ID         int        `gorm:"primaryKey;autoIncrement" json:"id_usuario"`
	Usuario    string     `gorm:"type:varchar(60);not null;uniqueIndex" json:"usuario"`
	Contrasena string     `gorm:"type:varchar(100);not null" json:"-"`
	Rol        RolUsuario `gorm:"type:varchar(20);not null;default:'consulta'" json:"rol"`
	Activo     bool       `gorm:"not null;default:true" json:"activo"`
}

func (Usuario) TableName() string { return "usuarios" }

// Todos devuelve la lista de modelos para AutoMigrate.
func Todos() []interface{} {
	return []interface{}{
		&Usuario{}, &Profesor{}, &Materia{}, &Curso{}, &Division{},
		&Condicion{}, &Catedra{}, &Previa{}, &MesaGrupo{}, &Mesa{},
	}
}
