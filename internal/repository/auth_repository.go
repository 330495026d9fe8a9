package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Credenciales es la forma canónica de un registro de usuario en el borde
// de acceso a datos. El esquema real de la tabla usuarios derivó entre
// despliegues (distintos nombres de columna para usuario y contraseña);
// toda esa incertidumbre se resuelve una sola vez en resolverCredenciales
// y el resto del sistema trabaja tipado.
type Credenciales struct {
	ID      int
	Usuario string
	Hash    string
	Rol     string
	Activo  bool
}

var (
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	errSinColumnaUsuario   = errors.New("ninguna columna candidata de usuario presente")
	errSinColumnaClave     = errors.New("ninguna columna candidata de contraseña presente")
)

// Columnas candidatas, en orden de preferencia.
var (
	columnasUsuario = []string{"usuario", "nombre_usuario", "user", "nombre"}
	columnasClave   = []string{"contrasena", "hash", "password", "pass", "clave"}
	columnasRol     = []string{"rol", "role", "tipo"}
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// BuscarPorUsuario recorre la tabla usuarios (acotada por diseño) y
// devuelve las credenciales cuyo nombre de usuario coincide.
func (r *AuthRepository) BuscarPorUsuario(nombre string) (*Credenciales, error) {
	var filas []map[string]interface{}
	if err := r.db.Table("usuarios").Find(&filas).Error; err != nil {
		return nil, err
	}

	for _, fila := range filas {
		cred, err := resolverCredenciales(fila)
		if err != nil {
			return nil, err
		}
		if cred.Usuario == nombre {
			return cred, nil
		}
	}
	return nil, ErrUsuarioNoEncontrado
}

// resolverCredenciales mapea una fila cruda al registro canónico probando
// las columnas candidatas en orden.
func resolverCredenciales(fila map[string]interface{}) (*Credenciales, error) {
	usuario, ok := primeraCadena(fila, columnasUsuario)
	if !ok {
		return nil, errSinColumnaUsuario
	}
	hash, ok := primeraCadena(fila, columnasClave)
	if !ok {
		return nil, errSinColumnaClave
	}

	cred := &Credenciales{
		Usuario: usuario,
		Hash:    hash,
		Rol:     "consulta",
		Activo:  true,
	}
	if rol, ok := primeraCadena(fila, columnasRol); ok && rol != "" {
		cred.Rol = rol
	}
	if id, ok := fila["id"]; ok {
		cred.ID = aEnteroCrudo(id)
	}
	if activo, ok := fila["activo"]; ok {
		cred.Activo = aBoolCrudo(activo)
	}
	return cred, nil
}

func primeraCadena(fila map[string]interface{}, candidatas []string) (string, bool) {
	for _, col := range candidatas {
		if v, ok := fila[col]; ok && v != nil {
			return fmt.Sprintf("%v", v), true
		}
	}
	return "", false
}

func aEnteroCrudo(v interface{}) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int32:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}

func aBoolCrudo(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case int:
		return b != 0
	default:
		return true
	}
}
