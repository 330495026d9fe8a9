package handler

import (
	"errors"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/repository"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CatedraHandler struct {
	catedraRepo *repository.CatedraRepository
}

func NewCatedraHandler(catedraRepo *repository.CatedraRepository) *CatedraHandler {
	return &CatedraHandler{catedraRepo: catedraRepo}
}

func (h *CatedraHandler) Listar(c *fiber.Ctx) error {
	catedras, err := h.catedraRepo.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron listar las cátedras"))
	}
	return c.JSON(dto.OK(catedras, ""))
}

func (h *CatedraHandler) Crear(c *fiber.Ctx) error {
	var req dto.CatedraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	if req.IDMateria <= 0 || req.IDCurso <= 0 || req.IDDivision <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id_materia, id_curso e id_division deben ser positivos"))
	}

	catedra := &domain.Catedra{
		IDMateria:  req.IDMateria,
		IDCurso:    req.IDCurso,
		IDDivision: req.IDDivision,
		IDProfesor: req.IDProfesor,
	}
	if err := h.catedraRepo.Crear(catedra); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(dto.Fallo("la cátedra ya existe para ese curso y división"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo crear la cátedra"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(catedra, "cátedra creada"))
}

func (h *CatedraHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}

	var req dto.CatedraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}

	catedra, err := h.catedraRepo.BuscarPorID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("cátedra no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo obtener la cátedra"))
	}

	if req.IDMateria > 0 {
		catedra.IDMateria = req.IDMateria
	}
	if req.IDCurso > 0 {
		catedra.IDCurso = req.IDCurso
	}
	if req.IDDivision > 0 {
		catedra.IDDivision = req.IDDivision
	}
	if req.IDProfesor != nil {
		catedra.IDProfesor = req.IDProfesor
	}

	if err := h.catedraRepo.Actualizar(catedra); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(dto.Fallo("la cátedra ya existe para ese curso y división"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo actualizar la cátedra"))
	}
	return c.JSON(dto.OK(catedra, "cátedra actualizada"))
}

func (h *CatedraHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	if err := h.catedraRepo.Eliminar(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo eliminar la cátedra"))
	}
	return c.JSON(dto.OK(nil, "cátedra eliminada"))
}

// AsignarProfesor fija o quita (id_profesor: null) el titular.
func (h *CatedraHandler) AsignarProfesor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}

	var req dto.AsignarProfesorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}

	if err := h.catedraRepo.AsignarProfesor(id, req.IDProfesor); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("cátedra no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo asignar el profesor"))
	}
	return c.JSON(dto.OK(fiber.Map{"id_catedra": id, "id_profesor": req.IDProfesor}, ""))
}
