package handler

import (
	"errors"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/auth"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/repository"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	authRepo *repository.AuthRepository
	jwt      *auth.JWTService
}

func NewAuthHandler(authRepo *repository.AuthRepository, jwt *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		authRepo: authRepo,
		jwt:      jwt,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	if req.Usuario == "" || req.Contrasena == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("usuario y contraseña son obligatorios"))
	}

	cred, err := h.authRepo.BuscarPorUsuario(req.Usuario)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNoEncontrado) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("usuario o contraseña incorrectos"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo verificar el usuario"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.Hash), []byte(req.Contrasena)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("usuario o contraseña incorrectos"))
	}

	if !cred.Activo {
		return c.Status(fiber.StatusForbidden).JSON(dto.Fallo("la cuenta está deshabilitada"))
	}

	token, expiraEn, err := h.jwt.GenerarToken(cred.ID, cred.Rol)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("no se pudo generar el token"))
	}

	return c.JSON(dto.OK(dto.LoginResponse{
		Token:    token,
		ExpiraEn: expiraEn,
		Usuario:  cred.Usuario,
		Rol:      cred.Rol,
	}, ""))
}
