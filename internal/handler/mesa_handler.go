package handler

import (
	"errors"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/repository"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MesaHandler struct {
	mesaRepo *repository.MesaRepository
}

func NewMesaHandler(mesaRepo *repository.MesaRepository) *MesaHandler {
	return &MesaHandler{mesaRepo: mesaRepo}
}

func (h *MesaHandler) Listar(c *fiber.Ctx) error {
	mesas, err := h.mesaRepo.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron listar las mesas"))
	}
	return c.JSON(dto.OK(mesas, ""))
}

func (h *MesaHandler) Obtener(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	mesa, err := h.mesaRepo.BuscarPorID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("mesa no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo obtener la mesa"))
	}
	return c.JSON(dto.OK(mesa, ""))
}

func (h *MesaHandler) Crear(c *fiber.Ctx) error {
	var req dto.CrearMesaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	if req.IDPrevia <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id_previa debe ser positivo"))
	}

	mesa := &domain.Mesa{IDPrevia: req.IDPrevia, IDGrupo: req.IDGrupo}
	if err := h.mesaRepo.Crear(mesa); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(dto.Fallo("la previa ya tiene mesa asignada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo crear la mesa"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(mesa, "mesa creada"))
}

func (h *MesaHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	if err := h.mesaRepo.Eliminar(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo eliminar la mesa"))
	}
	return c.JSON(dto.OK(nil, "mesa eliminada"))
}

func (h *MesaHandler) ListarGrupos(c *fiber.Ctx) error {
	grupos, err := h.mesaRepo.ListarGrupos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudieron listar los grupos"))
	}
	return c.JSON(dto.OK(grupos, ""))
}

func (h *MesaHandler) CrearGrupo(c *fiber.Ctx) error {
	var req dto.CrearGrupoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}

	grupo := &domain.MesaGrupo{
		Fecha:       req.Fecha,
		Turno:       req.Turno,
		IDProfesor1: req.IDProfesor1,
		IDProfesor2: req.IDProfesor2,
		IDProfesor3: req.IDProfesor3,
	}
	if err := h.mesaRepo.CrearGrupo(grupo); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo crear el grupo"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(grupo, "grupo creado"))
}

func (h *MesaHandler) EliminarGrupo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	if err := h.mesaRepo.EliminarGrupo(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo eliminar el grupo"))
	}
	return c.JSON(dto.OK(nil, "grupo eliminado"))
}
