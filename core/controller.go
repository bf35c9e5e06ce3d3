// Package core drives the hospital desk: it owns the services, the loaded
// database and the login session, and exposes the operations the dialogs
// call into.
package core

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"hospital-desk/core/config"
	"hospital-desk/core/models"
	"hospital-desk/core/services"
	"hospital-desk/internal/debuglog"
	"hospital-desk/internal/platform"
	"hospital-desk/internal/process"
)

var (
	// ErrNotCloneable is returned by AppController.Clone.
	ErrNotCloneable = errors.New("the application controller cannot be cloned")
	// ErrNotLoggedIn is returned by operations that need a session.
	ErrNotLoggedIn = errors.New("no user is logged in")
	// ErrWrongRole is returned when the session's role may not do the operation.
	ErrWrongRole = errors.New("operation not allowed for this role")
)

// AppController - the main structure encapsulating all application state and logic.
type AppController struct {
	FileService  *services.FileService
	StateService *services.StateService
	StoreService *services.StoreService
	UIService    *services.UIService

	Config config.Config
	DB     *models.Database

	exitOnce sync.Once
}

var (
	controllerMu sync.Mutex
	controller   *AppController
)

// Instance returns the process-wide controller, building it next to the
// executable on first use.
func Instance() (*AppController, error) {
	controllerMu.Lock()
	defer controllerMu.Unlock()
	if controller != nil {
		return controller, nil
	}
	fs, err := services.NewFileService()
	if err != nil {
		return nil, fmt.Errorf("Instance: %w", err)
	}
	ac, err := NewAppController(fs)
	if err != nil {
		return nil, fmt.Errorf("Instance: %w", err)
	}
	controller = ac
	return controller, nil
}

// Clone always fails: there is one controller per process.
func (ac *AppController) Clone() (*AppController, error) {
	return nil, ErrNotCloneable
}

// NewAppController loads the configuration and the database found through
// fs. It does not touch the UI; set UIService before showing dialogs.
func NewAppController(fs *services.FileService) (*AppController, error) {
	if err := config.WriteTemplate(fs.ConfigPath); err != nil {
		log.Printf("NewAppController: cannot write config template: %v", err)
	}
	cfg, err := config.Load(fs.ConfigPath, fs.ExecDir)
	if err != nil {
		return nil, fmt.Errorf("NewAppController: %w", err)
	}
	debuglog.SetGlobalLevel(debuglog.ParseLevel(cfg.LogLevel))
	fs.DataPath = cfg.DataFile

	store := services.NewStoreService(cfg.DataFile)
	db, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("NewAppController: %w", err)
	}
	// A role left over from a crash must not skip the login.
	db.CurrentRole = models.RoleNone

	return &AppController{
		FileService:  fs,
		StateService: services.NewStateService(),
		StoreService: store,
		Config:       cfg,
		DB:           db,
	}, nil
}

// Role returns the role of the logged-in user.
func (ac *AppController) Role() models.Role {
	return ac.StateService.Role()
}

// CheckCredentials reports whether user may log in with password, without
// starting a session.
func (ac *AppController) CheckCredentials(user, password string) error {
	_, err := ac.DB.Authenticate(user, password)
	return err
}

// Login authenticates user and opens a session for the role found.
func (ac *AppController) Login(user, password string) (models.Role, error) {
	role, err := ac.DB.Authenticate(user, password)
	if err != nil {
		return models.RoleNone, fmt.Errorf("Login: %w", err)
	}
	session := ac.StateService.StartSession(string(role), role)
	ac.DB.CurrentRole = role
	ac.DB.LastSession = session
	log.Printf("Login: %s logged in (session %s)", role, session.ID)
	return role, nil
}

// Logout ends the session. It is a no-op when nobody is logged in.
func (ac *AppController) Logout() {
	ended := ac.StateService.EndSession()
	ac.DB.CurrentRole = models.RoleNone
	if ended == nil {
		return
	}
	ac.DB.LastSession = ended
	log.Printf("Logout: %s logged out (session %s)", ended.Role, ended.ID)
}

func (ac *AppController) requireRole(op string, role models.Role) (*models.Session, error) {
	session := ac.StateService.Session()
	if session == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotLoggedIn)
	}
	if session.Role != role {
		return nil, fmt.Errorf("%s: %s: %w", op, session.Role, ErrWrongRole)
	}
	return session, nil
}

// SetPriority records a triage priority and queues the patient.
func (ac *AppController) SetPriority(code int64, priority int) error {
	if _, err := ac.requireRole("SetPriority", models.RoleTriage); err != nil {
		return err
	}
	return ac.DB.SetPriority(code, priority)
}

// StartAttention admits the patient for the logged-in doctor and makes it
// the active patient.
func (ac *AppController) StartAttention(code int64) (*models.Patient, error) {
	session, err := ac.requireRole("StartAttention", models.RoleDoctor)
	if err != nil {
		return nil, err
	}
	if _, err := ac.DB.StartAttention(code, session.User, session.ID); err != nil {
		return nil, err
	}
	ac.StateService.SetActivePatient(code)
	p, _ := ac.DB.Patient(code)
	return p, nil
}

// FinishAttention clears the active patient once its record is closed.
func (ac *AppController) FinishAttention() {
	ac.StateService.SetActivePatient(0)
}

// SaveDatabase writes the database to the configured data file.
func (ac *AppController) SaveDatabase() error {
	if err := ac.StoreService.Save(ac.DB); err != nil {
		return fmt.Errorf("SaveDatabase: %w", err)
	}
	return nil
}

// OthersRunning lists the other running copies of the application.
func (ac *AppController) OthersRunning() []process.ProcessInfo {
	if !ac.Config.SingleInstance {
		return nil
	}
	others, err := process.FindOthersByName(platform.GetProcessNameForCheck())
	if err != nil {
		log.Printf("OthersRunning: error listing processes: %v", err)
		return nil
	}
	return others
}

// OpenDataFolder shows the data directory in the file manager.
func (ac *AppController) OpenDataFolder() error {
	return platform.OpenFolder(platform.GetDataDir(ac.FileService.ExecDir))
}

// GracefulExit ends the session, saves the database and quits. Only the
// first call does anything.
func (ac *AppController) GracefulExit() {
	ac.exitOnce.Do(func() {
		ac.Logout()
		debuglog.RunAndLog("GracefulExit: save database", ac.SaveDatabase)
		log.Println("GracefulExit: shutting down")
		if ac.UIService != nil {
			ac.UIService.QuitApplication()
		}
		ac.FileService.CloseLogFiles()
	})
}
