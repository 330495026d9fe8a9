package handler

import (
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/repository"
	"github.com/gofiber/fiber/v2"
)

// CatalogoHandler expone los listados de referencia (condiciones, cursos,
// divisiones, materias) que consumen los formularios.
type CatalogoHandler struct {
	catalogoRepo *repository.CatalogoRepository
}

func NewCatalogoHandler(catalogoRepo *repository.CatalogoRepository) *CatalogoHandler {
	return &CatalogoHandler{catalogoRepo: catalogoRepo}
}

func (h *CatalogoHandler) Condiciones(c *fiber.Ctx) error {
	condiciones, err := h.catalogoRepo.Condiciones()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron listar las condiciones"))
	}
	return c.JSON(dto.OK(condiciones, ""))
}

func (h *CatalogoHandler) Cursos(c *fiber.Ctx) error {
	cursos, err := h.catalogoRepo.Cursos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron listar los cursos"))
	}
	return c.JSON(dto.OK(cursos, ""))
}

func (h *CatalogoHandler) Divisiones(c *fiber.Ctx) error {
	divisiones, err := h.catalogoRepo.Divisiones()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron listar las divisiones"))
	}
	return c.JSON(dto.OK(divisiones, ""))
}

func (h *CatalogoHandler) Materias(c *fiber.Ctx) error {
	materias, err := h.catalogoRepo.Materias()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron listar las materias"))
	}
	return c.JSON(dto.OK(materias, ""))
}
