package handler

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/repository"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var dniManual = regexp.MustCompile(`^\d{7,9}$`)

type PreviaHandler struct {
	previaRepo *repository.PreviaRepository
}

func NewPreviaHandler(previaRepo *repository.PreviaRepository) *PreviaHandler {
	return &PreviaHandler{previaRepo: previaRepo}
}

func (h *PreviaHandler) Listar(c *fiber.Ctx) error {
	filtro := dto.FiltroPrevias{
		DNI:       c.Query("dni"),
		Anio:      c.QueryInt("anio"),
		Pagina:    c.QueryInt("pagina", 1),
		PorPagina: c.QueryInt("por_pagina", 50),
	}
	if v := c.Query("inscripcion"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			filtro.Inscripcion = &n
		}
	}
	if filtro.Pagina <= 0 {
		filtro.Pagina = 1
	}
	if filtro.PorPagina <= 0 {
		filtro.PorPagina = 50
	}

	previas, total, err := h.previaRepo.Listar(filtro)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron listar las previas"))
	}

	totalPaginas := int((total + int64(filtro.PorPagina) - 1) / int64(filtro.PorPagina))
	return c.JSON(dto.OKPaginado(previas, &dto.Meta{
		Pagina:       filtro.Pagina,
		PorPagina:    filtro.PorPagina,
		TotalPaginas: totalPaginas,
		Total:        total,
	}))
}

func (h *PreviaHandler) Obtener(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}

	previa, err := h.previaRepo.BuscarPorID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("previa no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo obtener la previa"))
	}
	return c.JSON(dto.OK(previa, ""))
}

func (h *PreviaHandler) Crear(c *fiber.Ctx) error {
	var req dto.CrearPreviaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}

	if !dniManual.MatchString(req.DNI) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("dni inválido, se esperan 7 a 9 dígitos"))
	}
	if req.Alumno == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("alumno es obligatorio"))
	}
	if req.IDMateria <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id_materia debe ser positivo"))
	}
	if req.Anio == 0 {
		req.Anio = time.Now().Year()
	}

	inscripcion := 0
	if req.Inscripcion != nil {
		inscripcion = *req.Inscripcion
	}

	previa := &domain.Previa{
		DNI:                req.DNI,
		Alumno:             req.Alumno,
		CursandoIDCurso:    req.CursandoIDCurso,
		CursandoIDDivision: req.CursandoIDDivision,
		IDMateria:          req.IDMateria,
		MateriaIDCurso:     req.MateriaIDCurso,
		MateriaIDDivision:  req.MateriaIDDivision,
		IDCondicion:        req.IDCondicion,
		Inscripcion:        inscripcion,
		Anio:               req.Anio,
	}

	if err := h.previaRepo.Crear(previa); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(dto.Fallo("ya existe una previa con esa clave"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo crear la previa"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(previa, "previa creada"))
}

func (h *PreviaHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}

	var req dto.ActualizarPreviaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}

	previa, err := h.previaRepo.BuscarPorID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("previa no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo obtener la previa"))
	}

	if req.Alumno != nil {
		previa.Alumno = *req.Alumno
	}
	if req.CursandoIDCurso != nil {
		previa.CursandoIDCurso = *req.CursandoIDCurso
	}
	if req.MateriaIDCurso != nil {
		previa.MateriaIDCurso = *req.MateriaIDCurso
	}
	if req.IDCondicion != nil {
		previa.IDCondicion = *req.IDCondicion
	}
	if req.Inscripcion != nil {
		previa.Inscripcion = *req.Inscripcion
	}

	if err := h.previaRepo.Actualizar(previa); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo actualizar la previa"))
	}
	return c.JSON(dto.OK(previa, "previa actualizada"))
}

func (h *PreviaHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	if err := h.previaRepo.Eliminar(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo eliminar la previa"))
	}
	return c.JSON(dto.OK(nil, "previa eliminada"))
}

// Inscribir y Desinscribir alternan el flag de inscripción; ambos son
// idempotentes.
func (h *PreviaHandler) Inscribir(c *fiber.Ctx) error {
	return h.cambiarInscripcion(c, true)
}

func (h *PreviaHandler) Desinscribir(c *fiber.Ctx) error {
	return h.cambiarInscripcion(c, false)
}

func (h *PreviaHandler) cambiarInscripcion(c *fiber.Ctx, inscripto bool) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	if err := h.previaRepo.CambiarInscripcion(id, inscripto); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("previa no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo cambiar la inscripción"))
	}
	return c.JSON(dto.OK(fiber.Map{"id_previa": id, "inscripto": inscripto}, ""))
}

// ConsultarPorDNI es el endpoint del formulario público: lista las previas
// de un alumno para que elija en cuáles inscribirse.
func (h *PreviaHandler) ConsultarPorDNI(c *fiber.Ctx) error {
	dni := c.Query("dni")
	if !dniManual.MatchString(dni) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("dni inválido"))
	}
	previas, err := h.previaRepo.ListarPorDNI(dni)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron consultar las previas"))
	}
	return c.JSON(dto.OK(previas, ""))
}
