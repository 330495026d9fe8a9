package handler

import (
	"errors"
	"strings"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/repository"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProfesorHandler struct {
	profesorRepo *repository.ProfesorRepository
}

func NewProfesorHandler(profesorRepo *repository.ProfesorRepository) *ProfesorHandler {
	return &ProfesorHandler{profesorRepo: profesorRepo}
}

func (h *ProfesorHandler) Listar(c *fiber.Ctx) error {
	profesores, err := h.profesorRepo.ListarConMaterias()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron listar los profesores"))
	}
	return c.JSON(dto.OK(profesores, ""))
}

func (h *ProfesorHandler) Obtener(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	profesor, err := h.profesorRepo.BuscarPorID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("profesor no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo obtener el profesor"))
	}
	return c.JSON(dto.OK(profesor, ""))
}

func (h *ProfesorHandler) Crear(c *fiber.Ctx) error {
	var req dto.ProfesorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}

	req.Apellido = strings.TrimSpace(req.Apellido)
	req.Nombre = strings.TrimSpace(req.Nombre)
	if req.Apellido == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("apellido es obligatorio"))
	}

	profesor := &domain.Profesor{
		Apellido: strings.ToUpper(req.Apellido),
		Nombre:   req.Nombre,
	}
	if err := h.profesorRepo.Crear(profesor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo crear el profesor"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(profesor, "profesor creado"))
}

func (h *ProfesorHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}

	var req dto.ProfesorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}

	profesor, err := h.profesorRepo.BuscarPorID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("profesor no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo obtener el profesor"))
	}

	if apellido := strings.TrimSpace(req.Apellido); apellido != "" {
		profesor.Apellido = strings.ToUpper(apellido)
	}
	if nombre := strings.TrimSpace(req.Nombre); nombre != "" {
		profesor.Nombre = nombre
	}

	if err := h.profesorRepo.Actualizar(profesor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo actualizar el profesor"))
	}
	return c.JSON(dto.OK(profesor, "profesor actualizado"))
}

func (h *ProfesorHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	if err := h.profesorRepo.Eliminar(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo eliminar el profesor"))
	}
	return c.JSON(dto.OK(nil, "profesor eliminado"))
}
