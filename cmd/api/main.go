package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/auth"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/config"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/database"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/domain"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/handler"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/middleware"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/repository"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(domain.Todos()...); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	var archivador *storage.MinIOClient
	if cfg.MinIO.Enabled {
		archivador, err = storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
	}

	jwtService := auth.NewJWTService(cfg)

	// Repositories
	previaRepo := repository.NewPreviaRepository(db)
	profesorRepo := repository.NewProfesorRepository(db)
	catedraRepo := repository.NewCatedraRepository(db)
	mesaRepo := repository.NewMesaRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	authRepo := repository.NewAuthRepository(db)

	// Handlers
	authHandler := handler.NewAuthHandler(authRepo, jwtService)
	previaHandler := handler.NewPreviaHandler(previaRepo)
	importHandler := handler.NewImportHandler(previaRepo, archivador, cfg.Import.MaxUploadMB)
	profesorHandler := handler.NewProfesorHandler(profesorRepo)
	catedraHandler := handler.NewCatedraHandler(catedraRepo)
	mesaHandler := handler.NewMesaHandler(mesaRepo)
	catalogoHandler := handler.NewCatalogoHandler(catalogoRepo)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"exito":   false,
				"mensaje": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.Origins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth
	api.Post("/auth/login", authHandler.Login)

	// Formulario público de inscripción
	api.Get("/inscripcion/previas", previaHandler.ConsultarPorDNI)
	api.Post("/inscripcion/previas/:id/inscribir", previaHandler.Inscribir)
	api.Post("/inscripcion/previas/:id/desinscribir", previaHandler.Desinscribir)

	// Catálogos (públicos, pueblan formularios)
	api.Get("/condiciones", catalogoHandler.Condiciones)
	api.Get("/cursos", catalogoHandler.Cursos)
	api.Get("/divisiones", catalogoHandler.Divisiones)
	api.Get("/materias", catalogoHandler.Materias)

	// Panel de administración
	admin := api.Group("/admin", authMiddleware.Required(), authMiddleware.AdminOnly())

	// Previas
	admin.Get("/previas", previaHandler.Listar)
	admin.Get("/previas/:id", previaHandler.Obtener)
	admin.Post("/previas", previaHandler.Crear)
	admin.Patch("/previas/:id", previaHandler.Actualizar)
	admin.Delete("/previas/:id", previaHandler.Eliminar)
	admin.Post("/previas/:id/inscribir", previaHandler.Inscribir)
	admin.Post("/previas/:id/desinscribir", previaHandler.Desinscribir)

	// Pipeline de importación y utilidades
	admin.Post("/previas/importar", importHandler.ImportarPrevias)
	admin.Post("/previas/importar-archivo", importHandler.ImportarArchivo)
	admin.Post("/previas/asegurar", importHandler.Asegurar)
	admin.Post("/previas/vaciar", importHandler.Vaciar)

	// Profesores
	admin.Get("/profesores", profesorHandler.Listar)
	admin.Get("/profesores/:id", profesorHandler.Obtener)
	admin.Post("/profesores", profesorHandler.Crear)
	admin.Patch("/profesores/:id", profesorHandler.Actualizar)
	admin.Delete("/profesores/:id", profesorHandler.Eliminar)

	// Cátedras
	admin.Get("/catedras", catedraHandler.Listar)
	admin.Post("/catedras", catedraHandler.Crear)
	admin.Patch("/catedras/:id", catedraHandler.Actualizar)
	admin.Delete("/catedras/:id", catedraHandler.Eliminar)
	admin.Put("/catedras/:id/profesor", catedraHandler.AsignarProfesor)

	// Mesas
	admin.Get("/mesas", mesaHandler.Listar)
	admin.Get("/mesas/:id", mesaHandler.Obtener)
	admin.Post("/mesas", mesaHandler.Crear)
	admin.Delete("/mesas/:id", mesaHandler.Eliminar)
	admin.Get("/mesas-grupos", mesaHandler.ListarGrupos)
	admin.Post("/mesas-grupos", mesaHandler.CrearGrupo)
	admin.Delete("/mesas-grupos/:id", mesaHandler.EliminarGrupo)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down server...")
		_ = app.Shutdown()
	}()

	log.Printf("Starting server on port %s", cfg.App.Port)
	if err := app.Listen(":" + cfg.App.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
