package main

import (
	_ "Backend-SGI/docs"
	"Backend-SGI/src/database"
	"Backend-SGI/src/jobs"
	"Backend-SGI/src/routes"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
)

func main() {

	// Carrega o .env quando presente
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using environment variables")
	}

	// Conecta ao MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis e Asynq são opcionais: sem Redis o cache é ignorado
	// e as exportações rodam de forma síncrona
	database.InitRedis()
	database.InitAsynq()

	// Cria a instância do app
	app := fiber.New()

	// ✅ Habilita o CORS Middleware
	origins := os.Getenv("ALLOWED_ORIGINS")
	fmt.Println(origins)

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ precisa ser false com "*"
	}))

	// Habilita o Swagger em /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Junta as rotas de cada módulo
	routes.InitRoutes(app)

	// Worker de tarefas em segundo plano (exportações e recálculo de resumos)
	jobs.StartWorker()

	// lê a porta do .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // 8888 como padrão
	}

	// Sobe o servidor
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
