package http

import (
	"net/http"

	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	doctorHandler        *handler.DoctorHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	messageHandler       *handler.MessageHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	messageHandler *handler.MessageHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		doctorHandler:        doctorHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		messageHandler:       messageHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public). The two login routes share one flow.
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login/doctor", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/login/patient", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected). Registration requires an authenticated caller.
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	authProtected.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor directory is public
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)

	// Everything below requires authentication
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id:[0-9]+}/image", r.doctorHandler.UploadImage).Methods(http.MethodPost)

	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/ordered", r.appointmentHandler.GetOrderedAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.RescheduleAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id:[0-9]+}/confirm", r.appointmentHandler.ConfirmAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id:[0-9]+}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id:[0-9]+}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPut)

	protected.HandleFunc("/records", r.medicalRecordHandler.CreateRecord).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id:[0-9]+}/records", r.medicalRecordHandler.GetPatientRecords).Methods(http.MethodGet)

	protected.HandleFunc("/conversations", r.messageHandler.CreateConversation).Methods(http.MethodPost)
	protected.HandleFunc("/messages", r.messageHandler.GetAllMessages).Methods(http.MethodGet)
	protected.HandleFunc("/messages", r.messageHandler.CreateMessage).Methods(http.MethodPost)
	protected.HandleFunc("/messages/create", r.messageHandler.CreateMessage).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
