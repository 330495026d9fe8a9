package repository

import (
	"testing"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestBuscarPorUsuarioEsquemaCanonico(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthRepository(db)

	require.NoError(t, db.Create(&domain.Usuario{
		Usuario:    "admin",
		Contrasena: "$2a$10$hashfalso",
		Rol:        domain.RolAdmin,
		Activo:     true,
	}).Error)

	cred, err := repo.BuscarPorUsuario("admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", cred.Usuario)
	assert.Equal(t, "$2a$10$hashfalso", cred.Hash)
	assert.Equal(t, "admin", cred.Rol)
	assert.True(t, cred.Activo)
}

func TestBuscarPorUsuarioNoEncontrado(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthRepository(db)

	_, err := repo.BuscarPorUsuario("nadie")
	assert.ErrorIs(t, err, ErrUsuarioNoEncontrado)
}

// El esquema de usuarios derivó entre despliegues: la resolución de
// columnas candidatas tolera nombres alternativos sin tocar el resto del
// sistema.
func TestBuscarPorUsuarioEsquemaDerivado(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE usuarios (
		id INTEGER PRIMARY KEY,
		nombre_usuario TEXT NOT NULL,
		pass TEXT NOT NULL
	)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO usuarios (nombre_usuario, pass) VALUES (?, ?)`,
		"secretaria", "$2a$10$otrohash",
	).Error)

	repo := NewAuthRepository(db)
	cred, err := repo.BuscarPorUsuario("secretaria")
	require.NoError(t, err)
	assert.Equal(t, "secretaria", cred.Usuario)
	assert.Equal(t, "$2a$10$otrohash", cred.Hash)
	// sin columna de rol ni de activo: valores por defecto
	assert.Equal(t, "consulta", cred.Rol)
	assert.True(t, cred.Activo)
	assert.Equal(t, 1, cred.ID)
}

func TestResolverCredencialesSinColumnas(t *testing.T) {
	_, err := resolverCredenciales(map[string]interface{}{"columna": "x"})
	assert.ErrorIs(t, err, errSinColumnaUsuario)

	_, err = resolverCredenciales(map[string]interface{}{"usuario": "a"})
	assert.ErrorIs(t, err, errSinColumnaClave)
}
