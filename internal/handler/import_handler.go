package handler

import (
	"bytes"
	"errors"
	"log"
	"sync"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/importer"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/middleware"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/repository"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/spreadsheet"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ImportHandler struct {
	previaRepo  *repository.PreviaRepository
	archivador  *storage.MinIOClient // puede ser nil
	maxUploadMB int

	// serializa vaciado contra importación; ninguna otra pieza del
	// sistema coordina estas dos operaciones.
	mu sync.Mutex
}

func NewImportHandler(previaRepo *repository.PreviaRepository, archivador *storage.MinIOClient, maxUploadMB int) *ImportHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 5
	}
	return &ImportHandler{
		previaRepo:  previaRepo,
		archivador:  archivador,
		maxUploadMB: maxUploadMB,
	}
}

// ImportarPrevias procesa un lote JSON {rows: [...]} con upsert por fila.
func (h *ImportHandler) ImportarPrevias(c *fiber.Ctx) error {
	var lote dto.LoteImportacion
	if err := c.BodyParser(&lote); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("el cuerpo debe ser un objeto JSON con un arreglo rows"))
	}
	if lote.Rows == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("falta el arreglo rows"))
	}

	h.mu.Lock()
	resultado, err := h.previaRepo.ImportarLote(lote.Rows)
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, repository.ErrAlmacenNoDisponible) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("base de datos no disponible"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo procesar el lote"))
	}

	return c.JSON(dto.OK(resultado, ""))
}

// ImportarArchivo recibe la planilla por multipart y corre el pipeline
// completo del lado del servidor: lectura, mapeo de encabezados,
// normalización y upsert.
func (h *ImportHandler) ImportarArchivo(c *fiber.Ctx) error {
	file, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("archivo no encontrado"))
	}

	if file.Size > int64(h.maxUploadMB)*1024*1024 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("el archivo supera el tamaño máximo permitido"))
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo abrir el archivo"))
	}
	defer f.Close()

	var contenido bytes.Buffer
	if _, err := contenido.ReadFrom(f); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo leer el archivo"))
	}

	objectKey := ""
	if h.archivador != nil {
		nombre := uuid.New().String() + "_" + file.Filename
		objectKey, err = h.archivador.ArchivarPlanilla(c.Context(), nombre,
			bytes.NewReader(contenido.Bytes()), int64(contenido.Len()))
		if err != nil {
			// A mejor esfuerzo: la importación no depende del archivo.
			log.Printf("no se pudo archivar la planilla %s: %v", file.Filename, err)
		}
	}

	matriz, err := spreadsheet.Leer(bytes.NewReader(contenido.Bytes()), file.Filename)
	if err != nil {
		if objectKey != "" {
			if err := h.archivador.DescartarPlanilla(c.Context(), objectKey); err != nil {
				log.Printf("no se pudo descartar la planilla ilegible %s: %v", objectKey, err)
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("el archivo no pudo leerse como planilla"))
	}

	registros := importer.NormalizarFilas(matriz)
	if len(registros) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("la planilla no tiene filas de datos"))
	}

	h.mu.Lock()
	resultado, err := h.previaRepo.ImportarLote(registros)
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, repository.ErrAlmacenNoDisponible) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("base de datos no disponible"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo procesar la planilla"))
	}

	return c.JSON(dto.OK(resultado, ""))
}

// Asegurar verifica (y crea si faltan) las tablas del pipeline.
func (h *ImportHandler) Asegurar(c *fiber.Ctx) error {
	if err := h.previaRepo.Asegurar(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron verificar las tablas"))
	}
	return c.JSON(dto.OK(fiber.Map{"ok": true}, ""))
}

// Vaciar borra mesas, grupos y previas en una transacción.
func (h *ImportHandler) Vaciar(c *fiber.Ctx) error {
	log.Printf("vaciado solicitado por el usuario %d", middleware.IDUsuario(c))

	h.mu.Lock()
	resultado, err := h.previaRepo.Vaciar()
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, repository.ErrAlmacenNoDisponible) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("base de datos no disponible"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("el vaciado falló y fue revertido"))
	}

	return c.JSON(dto.OK(resultado, resultado.Mensaje))
}
