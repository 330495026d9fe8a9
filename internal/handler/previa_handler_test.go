package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPreviaApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Todos()...))

	previaHandler := NewPreviaHandler(repository.NewPreviaRepository(db))

	app := fiber.New()
	app.Get("/previas", previaHandler.Listar)
	return app, db
}

func listarPrevias(t *testing.T, app *fiber.App, ruta string) (*http.Response, dto.RespuestaPaginada) {
	req := httptest.NewRequest(http.MethodGet, ruta, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envoltura dto.RespuestaPaginada
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envoltura))
	return resp, envoltura
}

// Valores de paginación no positivos en la query se reemplazan por los
// predeterminados antes de consultar y de calcular el total de páginas.
func TestListarPaginacionNoPositiva(t *testing.T) {
	app, db := setupPreviaApp(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&domain.Previa{
			DNI: fmt.Sprintf("%08d", 60000000+i), Alumno: "LISTA, ALUMNO",
			IDMateria: i + 1, Anio: 2024,
		}).Error)
	}

	for _, ruta := range []string{
		"/previas?por_pagina=0",
		"/previas?por_pagina=-3",
		"/previas?pagina=0&por_pagina=0",
	} {
		resp, envoltura := listarPrevias(t, app, ruta)

		assert.Equal(t, http.StatusOK, resp.StatusCode, ruta)
		require.True(t, envoltura.Exito, ruta)
		require.NotNil(t, envoltura.Meta, ruta)
		assert.Equal(t, 1, envoltura.Meta.Pagina, ruta)
		assert.Equal(t, 50, envoltura.Meta.PorPagina, ruta)
		assert.Equal(t, 1, envoltura.Meta.TotalPaginas, ruta)
		assert.Equal(t, int64(3), envoltura.Meta.Total, ruta)
	}
}

func TestListarMetaPaginada(t *testing.T) {
	app, db := setupPreviaApp(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&domain.Previa{
			DNI: fmt.Sprintf("%08d", 61000000+i), Alumno: "LISTA, ALUMNO",
			IDMateria: i + 1, Anio: 2024,
		}).Error)
	}

	resp, envoltura := listarPrevias(t, app, "/previas?pagina=2&por_pagina=2")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, envoltura.Meta)
	assert.Equal(t, 2, envoltura.Meta.Pagina)
	assert.Equal(t, 2, envoltura.Meta.PorPagina)
	assert.Equal(t, 3, envoltura.Meta.TotalPaginas)
	assert.Equal(t, int64(5), envoltura.Meta.Total)

	filas := envoltura.Data.([]interface{})
	assert.Len(t, filas, 2)
}
