package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
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

func setupImportApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Todos()...))

	previaRepo := repository.NewPreviaRepository(db)
	importHandler := NewImportHandler(previaRepo, nil, 5)

	app := fiber.New()
	app.Post("/previas/importar", importHandler.ImportarPrevias)
	app.Post("/previas/importar-archivo", importHandler.ImportarArchivo)
	app.Post("/previas/asegurar", importHandler.Asegurar)
	app.Post("/previas/vaciar", importHandler.Vaciar)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, ruta string, cuerpo interface{}) (*http.Response, dto.Respuesta) {
	raw, err := json.Marshal(cuerpo)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, ruta, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envoltura dto.Respuesta
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envoltura))
	return resp, envoltura
}

func TestImportarPreviasOK(t *testing.T) {
	app, db := setupImportApp(t)

	rows := make([]dto.RegistroPrevia, 3)
	for i := range rows {
		rows[i] = dto.RegistroPrevia{
			DNI:       fmt.Sprintf("%08d", 20000000+i),
			Alumno:    "PRUEBA, ALUMNO",
			IDMateria: i + 1,
			Anio:      2024,
		}
	}

	resp, envoltura := postJSON(t, app, "/previas/importar", dto.LoteImportacion{Rows: rows})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envoltura.Exito)

	data := envoltura.Data.(map[string]interface{})
	assert.Equal(t, float64(3), data["insertados"])
	assert.Equal(t, float64(0), data["actualizados"])

	var cuenta int64
	db.Model(&domain.Previa{}).Count(&cuenta)
	assert.Equal(t, int64(3), cuenta)
}

// Un cuerpo sin arreglo rows es una solicitud malformada: se rechaza la
// llamada completa sin efecto parcial.
func TestImportarPreviasCuerpoInvalido(t *testing.T) {
	app, db := setupImportApp(t)

	resp, envoltura := postJSON(t, app, "/previas/importar", fiber.Map{"otra_cosa": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, envoltura.Exito)

	req := httptest.NewRequest(http.MethodPost, "/previas/importar", bytes.NewReader([]byte("no json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var cuenta int64
	db.Model(&domain.Previa{}).Count(&cuenta)
	assert.Equal(t, int64(0), cuenta)
}

// Las filas fallidas no voltean el lote: HTTP 200 con errores por fila.
func TestImportarPreviasParcial(t *testing.T) {
	app, _ := setupImportApp(t)

	rows := []dto.RegistroPrevia{
		{DNI: "30000001", Alumno: "OK", IDMateria: 1, Anio: 2024},
		{DNI: "malo", Alumno: "FALLA", IDMateria: 1, Anio: 2024},
	}
	resp, envoltura := postJSON(t, app, "/previas/importar", dto.LoteImportacion{Rows: rows})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envoltura.Exito)

	data := envoltura.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["insertados"])
	errores := data["errores"].([]interface{})
	require.Len(t, errores, 1)
	assert.Contains(t, errores[0].(string), "fila 2")
}

func TestImportarArchivoCSV(t *testing.T) {
	app, db := setupImportApp(t)

	csv := "dni,apellido y nombre,idmateria,año\n40000001,\"LOPEZ, MARA\",7,2024\n,,,\n"

	var cuerpo bytes.Buffer
	writer := multipart.NewWriter(&cuerpo)
	parte, err := writer.CreateFormFile("archivo", "previas.csv")
	require.NoError(t, err)
	_, err = io.WriteString(parte, csv)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/previas/importar-archivo", &cuerpo)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envoltura dto.Respuesta
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envoltura))
	require.True(t, envoltura.Exito)

	data := envoltura.Data.(map[string]interface{})
	// la fila en blanco se descarta antes de llegar al almacén
	assert.Equal(t, float64(1), data["insertados"])

	var previa domain.Previa
	require.NoError(t, db.First(&previa).Error)
	assert.Equal(t, "40000001", previa.DNI)
	assert.Equal(t, 7, previa.IDMateria)
}

// Una extensión desconocida se rechaza antes de tocar el almacén.
func TestImportarArchivoIlegible(t *testing.T) {
	app, db := setupImportApp(t)

	var cuerpo bytes.Buffer
	writer := multipart.NewWriter(&cuerpo)
	parte, err := writer.CreateFormFile("archivo", "previas.pdf")
	require.NoError(t, err)
	_, err = io.WriteString(parte, "%PDF-1.4")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/previas/importar-archivo", &cuerpo)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var cuenta int64
	db.Model(&domain.Previa{}).Count(&cuenta)
	assert.Equal(t, int64(0), cuenta)
}

func TestAsegurarYVaciar(t *testing.T) {
	app, db := setupImportApp(t)

	resp, envoltura := postJSON(t, app, "/previas/asegurar", fiber.Map{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envoltura.Exito)

	require.NoError(t, db.Create(&domain.Previa{
		DNI: "50000001", Alumno: "X", IDMateria: 1, Anio: 2024,
	}).Error)

	resp, envoltura = postJSON(t, app, "/previas/vaciar", fiber.Map{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envoltura.Exito)

	data := envoltura.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["previas_antes"])
	assert.Equal(t, float64(1), data["previas_borradas"])

	var cuenta int64
	db.Model(&domain.Previa{}).Count(&cuenta)
	assert.Equal(t, int64(0), cuenta)
}
