package main

import (
	"campushub/config"
	"campushub/delivery"
	"campushub/middleware"
	"campushub/repository"
	"campushub/service"
	"campushub/utils"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system environment variables")
	}

	utils.InitLogger()

	// Boot DB
	db, err := config.BootDB()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Redis is only used for rate limiting; run without it when
	// unconfigured or unreachable.
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient, err := config.InitRedisDB(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Printf("Failed to connect to Redis, rate limiting disabled: %v", err)
		} else {
			middleware.InitRateLimiter(redisClient)
		}
	} else {
		log.Println("REDIS_ADDR not set, rate limiting disabled")
	}

	// Init repositories
	courseRepo := repository.NewCourseRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	// Init services
	courseService := service.NewCourseService(courseRepo)
	studentService := service.NewStudentService(studentRepo)
	instructorService := service.NewInstructorService(instructorRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)

	// Init Gin
	app := gin.New()
	config.InitMiddleware(app)

	delivery.NewCourseHandler(app, courseService, enrollmentService)
	delivery.NewStudentHandler(app, studentService, enrollmentService)
	delivery.NewInstructorHandler(app, instructorService)
	delivery.NewEnrollmentHandler(app, enrollmentService)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:           ":" + port,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running at http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
