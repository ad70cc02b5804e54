package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/alled0/databaseProject/internal/database"
	"github.com/alled0/databaseProject/internal/middleware"
	"github.com/alled0/databaseProject/internal/modules/assignment"
	"github.com/alled0/databaseProject/internal/modules/auth"
	"github.com/alled0/databaseProject/internal/modules/catalog"
	"github.com/alled0/databaseProject/internal/modules/profile"
	"github.com/alled0/databaseProject/internal/modules/reminder"
	"github.com/alled0/databaseProject/internal/modules/report"
	"github.com/alled0/databaseProject/internal/modules/reservation"
	"github.com/alled0/databaseProject/internal/modules/waitlist"
	jwtsvc "github.com/alled0/databaseProject/internal/pkg/jwt"
	"github.com/alled0/databaseProject/internal/pkg/mailer"
	"github.com/alled0/databaseProject/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "railway.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	catalogRepo := repository.NewCatalogRepository(db)
	passengerRepo := repository.NewPassengerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	waitlistRepo := repository.NewWaitlistRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	reminderRepo := repository.NewReminderRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(passengerRepo, staffRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo))
	reservationHandler := reservation.NewHandler(reservation.NewService(reservationRepo, catalogRepo, passengerRepo))
	waitlistHandler := waitlist.NewHandler(waitlist.NewService(waitlistRepo))
	assignmentHandler := assignment.NewHandler(assignment.NewService(assignmentRepo, catalogRepo, staffRepo))
	reportHandler := report.NewHandler(report.NewService(reportRepo))
	profileHandler := profile.NewHandler(profile.NewService(passengerRepo))

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	root := r.Group("/")
	{
		authHandler.RegisterRoutes(root)
		catalogHandler.RegisterRoutes(root)
		reservationHandler.RegisterRoutes(root)
		waitlistHandler.RegisterRoutes(root)
		assignmentHandler.RegisterRoutes(root)
		reportHandler.RegisterRoutes(root)
	}

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			profileHandler.RegisterRoutes(protected)
		}
	}

	scheduler := startReminders(reminderRepo)

	srv := &http.Server{
		Addr:    ":" + port(),
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()
	log.Printf("listening on %s", srv.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if scheduler != nil {
		scheduler.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}

// startReminders wires the reminder jobs when SMTP is configured. Returns nil
// and logs when it is not, so a dev setup runs without a mail server.
func startReminders(reminderRepo *repository.ReminderRepository) *cron.Cron {
	m, err := mailer.NewFromEnv()
	if err != nil {
		log.Printf("reminders disabled: %v", err)
		return nil
	}

	svc := reminder.NewService(reminderRepo, m)

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc("0 22 * * *", func() {
		n, err := svc.SendUnpaidReminders(context.Background())
		if err != nil {
			log.Printf("unpaid reminder sweep failed: %v", err)
			return
		}
		log.Printf("unpaid reminders sent: %d", n)
	}); err != nil {
		log.Fatalf("schedule unpaid reminders: %v", err)
	}
	if _, err := c.AddFunc("@hourly", func() {
		n, err := svc.SendDepartureReminders(context.Background())
		if err != nil {
			log.Printf("departure reminder sweep failed: %v", err)
			return
		}
		log.Printf("departure reminders sent: %d", n)
	}); err != nil {
		log.Fatalf("schedule departure reminders: %v", err)
	}
	c.Start()
	return c
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
