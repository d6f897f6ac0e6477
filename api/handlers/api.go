package handlers

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/justiceflow/justiceflow-api/api"
	"github.com/justiceflow/justiceflow-api/api/scheduler"
	"github.com/justiceflow/justiceflow-api/config"
	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/storage"
)

// App stores the router and storage backend, so it can be reused
type App struct {
	Router  *mux.Router
	Config  config.Config
	backend storage.Backend
}

// Initialize sets up the storage backend and the router
func (a *App) Initialize() error {
	backend, err := storage.New(&a.Config)
	if err != nil {
		// if we fail to create the storage backend, then kill the pod
		zap.S().With(err).Error("failed to create storage backend")
		return err
	}
	a.backend = backend

	sched := scheduler.NewScheduler(backend)
	if err := sched.Start(); err != nil {
		zap.S().With(err).Error("failed to start snapshot scheduler")
		return err
	}

	a.initializeRoutes()
	return nil
}

// InitializeWithBackend wires the app over an already-built backend; tests use
// this with the in-memory backend.
func (a *App) InitializeWithBackend(backend storage.Backend) {
	a.backend = backend
	a.initializeRoutes()
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewAccountDatabase(a.backend)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	caseDB := databases.NewCaseDatabase(a.backend)
	c := Case{DB: caseDB}
	ruling := Ruling{DB: caseDB}
	patient := Patient{DB: caseDB}
	attorney := Attorney{DB: caseDB}
	report := Report{DB: caseDB}
	stations := Organization{DB: databases.NewStationDatabase(a.backend), Kind: "station"}
	hospitals := Organization{DB: databases.NewHospitalDatabase(a.backend), Kind: "hospital"}
	courts := Organization{DB: databases.NewCourtDatabase(a.backend), Kind: "court"}
	account := Account{DB: databases.NewAccountDatabase(a.backend)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", http.HandlerFunc(m.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(c.CaseListHandler))).Methods("GET")
	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(c.CaseCreateHandler))).Methods("POST")
	apiCreate.Handle("/cases/{case_id}", api.Middleware(http.HandlerFunc(c.CaseByIDHandler))).Methods("GET")
	apiCreate.Handle("/cases/{case_id}", api.Middleware(http.HandlerFunc(c.CaseEditHandler))).Methods("PATCH")
	apiCreate.Handle("/cases/{case_id}/status", api.Middleware(http.HandlerFunc(c.CaseStatusHandler))).Methods("PUT")

	apiCreate.Handle("/court/cases/{case_id}", api.Middleware(http.HandlerFunc(ruling.CourtCaseHandler))).Methods("GET")
	apiCreate.Handle("/court/cases/{case_id}/ruling", api.Middleware(http.HandlerFunc(ruling.SaveRulingHandler))).Methods("POST")

	apiCreate.Handle("/patients", api.Middleware(http.HandlerFunc(patient.PatientListHandler))).Methods("GET")
	apiCreate.Handle("/cases/{case_id}/parties/{party_index}/medical-report", api.Middleware(http.HandlerFunc(patient.SubmitMedicalReportHandler))).Methods("PUT")

	apiCreate.Handle("/attorney/cases/{case_id}", api.Middleware(http.HandlerFunc(attorney.CaseReviewHandler))).Methods("GET")

	apiCreate.Handle("/stations", api.Middleware(http.HandlerFunc(stations.ListHandler))).Methods("GET")
	apiCreate.Handle("/stations", api.Middleware(http.HandlerFunc(stations.CreateHandler))).Methods("POST")
	apiCreate.Handle("/stations/{org_id}", api.Middleware(http.HandlerFunc(stations.UpdateHandler))).Methods("PUT")
	apiCreate.Handle("/stations/{org_id}", api.Middleware(http.HandlerFunc(stations.DeleteHandler))).Methods("DELETE")

	apiCreate.Handle("/hospitals", api.Middleware(http.HandlerFunc(hospitals.ListHandler))).Methods("GET")
	apiCreate.Handle("/hospitals", api.Middleware(http.HandlerFunc(hospitals.CreateHandler))).Methods("POST")
	apiCreate.Handle("/hospitals/{org_id}", api.Middleware(http.HandlerFunc(hospitals.UpdateHandler))).Methods("PUT")
	apiCreate.Handle("/hospitals/{org_id}", api.Middleware(http.HandlerFunc(hospitals.DeleteHandler))).Methods("DELETE")

	apiCreate.Handle("/courts", api.Middleware(http.HandlerFunc(courts.ListHandler))).Methods("GET")
	apiCreate.Handle("/courts", api.Middleware(http.HandlerFunc(courts.CreateHandler))).Methods("POST")
	apiCreate.Handle("/courts/{org_id}", api.Middleware(http.HandlerFunc(courts.UpdateHandler))).Methods("PUT")
	apiCreate.Handle("/courts/{org_id}", api.Middleware(http.HandlerFunc(courts.DeleteHandler))).Methods("DELETE")

	apiCreate.Handle("/accounts", api.Middleware(http.HandlerFunc(account.ListHandler))).Methods("GET")
	apiCreate.Handle("/accounts", api.Middleware(http.HandlerFunc(account.CreateHandler))).Methods("POST")
	// registered before the {account_id} routes so "password" is not taken as an id
	apiCreate.Handle("/accounts/password", api.Middleware(http.HandlerFunc(account.UpdatePasswordHandler))).Methods("PUT")
	apiCreate.Handle("/accounts/{account_id}", api.Middleware(http.HandlerFunc(account.UpdateHandler))).Methods("PUT")
	apiCreate.Handle("/accounts/{account_id}", api.Middleware(http.HandlerFunc(account.DeleteHandler))).Methods("DELETE")

	apiCreate.Handle("/reports", api.Middleware(http.HandlerFunc(report.GenerateHandler))).Methods("GET")

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, `{"alive": true}`)
}
