package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/config"
	appHTTP "github.com/hadirin/hadirin-backend-go/internal/handler/http"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/database"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/jwt"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/storage"
	"github.com/hadirin/hadirin-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hadirin/hadirin-backend-go/internal/service/attendance"
	authService "github.com/hadirin/hadirin-backend-go/internal/service/auth"
	calendarService "github.com/hadirin/hadirin-backend-go/internal/service/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/service/file"
	"github.com/hadirin/hadirin-backend-go/internal/service/geofence"
	leaveService "github.com/hadirin/hadirin-backend-go/internal/service/leave"
	locationService "github.com/hadirin/hadirin-backend-go/internal/service/location"
	reportService "github.com/hadirin/hadirin-backend-go/internal/service/report"
	tripService "github.com/hadirin/hadirin-backend-go/internal/service/trip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	tripRepo := postgresql.NewTripRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	calendarResolver := calendarService.NewResolver()
	geofenceValidator := geofence.NewValidator()
	classifier := attendanceService.NewClassifier(loc)
	tripResolver := tripService.NewResolver()

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	calendarSvc := calendarService.NewCalendarService(scheduleRepo, holidayRepo)
	locationSvc := locationService.NewLocationService(locationRepo)
	tripSvc := tripService.NewTripService(tripRepo, employeeRepo, locationRepo, tripResolver)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, fileSvc, loc)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		scheduleRepo,
		holidayRepo,
		leaveRequestRepo,
		tripRepo,
		locationRepo,
		fileSvc,
		calendarResolver,
		geofenceValidator,
		classifier,
		loc,
	)
	reportSvc := reportService.NewReportService(
		employeeRepo,
		attendanceRepo,
		scheduleRepo,
		holidayRepo,
		leaveRequestRepo,
		tripRepo,
		calendarResolver,
		classifier,
		loc,
	)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtSvc,
		appHTTP.NewAuthHandler(jwtSvc, authSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewTripHandler(tripSvc),
		appHTTP.NewCalendarHandler(calendarSvc),
		appHTTP.NewLocationHandler(locationSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
