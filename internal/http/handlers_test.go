package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "itask.com/itask/internal/errors"
	model "itask.com/itask/internal/models"
	repository "itask.com/itask/internal/repositories"
	"itask.com/itask/internal/services"
	"itask.com/itask/internal/sessions"
)

const testCookie = "utilizador"

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&model.Utilizador{},
		&model.Gestor{},
		&model.Programador{},
		&model.TipoTarefa{},
		&model.Tarefa{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	users := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tipoRepo := repository.NewTipoTarefaRepository(db)
	store := sessions.NewMemoryStore(time.Hour)

	h := NewHandler(
		services.NewAuthService(users, store),
		services.NewTaskService(db),
		services.NewLifecycleService(db, 2, false),
		services.NewTeamService(users),
		services.NewReportService(taskRepo),
		services.NewTipoTarefaService(tipoRepo),
		testCookie,
		time.Hour,
	)

	e := echo.New()
	Register(e, h, store, RouteConfig{
		SessionCookie: testCookie,
		CORSOrigin:    "http://localhost:5173",
	})
	return e
}

func do(t *testing.T, e *echo.Echo, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func registerGestor(t *testing.T, e *echo.Echo, username string) *http.Cookie {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/register", echo.Map{
		"Nome": "Gestor " + username, "Username": username, "Password": "Password1!",
		"Papel": "Gestor", "Departamento": "IT",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("gestor registration failed with %d: %s", rec.Code, rec.Body.String())
	}
	return login(t, e, username)
}

func login(t *testing.T, e *echo.Echo, username string) *http.Cookie {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/login", echo.Map{
		"Username": username, "Password": "Password1!",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", rec.Code, rec.Body.String())
	}

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookie && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}

func registerProgramador(t *testing.T, e *echo.Echo, gestor *http.Cookie, username string) uint {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/register", echo.Map{
		"Nome": "Programador " + username, "Username": username, "Password": "Password1!",
		"Papel": "Programador", "NivelExperiencia": "Junior",
	}, gestor)
	if rec.Code != http.StatusCreated {
		t.Fatalf("programador registration failed with %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		User model.Account `json:"user"`
	}
	decode(t, rec, &body)
	return body.User.Id
}

func createTipo(t *testing.T, e *echo.Echo, gestor *http.Cookie, nome string) uint {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/tipos-tarefa", echo.Map{"Nome": nome}, gestor)
	if rec.Code != http.StatusCreated {
		t.Fatalf("tipo creation failed with %d: %s", rec.Code, rec.Body.String())
	}

	var tipo model.TipoTarefa
	decode(t, rec, &tipo)
	return tipo.Id
}

func createTarefa(t *testing.T, e *echo.Echo, gestor *http.Cookie, programadorID, tipoID uint, ordem int) uint {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/tarefas", echo.Map{
		"Descricao":          "Implementar endpoint",
		"StoryPoints":        3,
		"OrdemExecucao":      ordem,
		"DataPrevistaInicio": "2025-04-01",
		"DataPrevistaFim":    "2025-04-04",
		"IdTipoTarefa":       tipoID,
		"IdProgramador":      programadorID,
	}, gestor)
	if rec.Code != http.StatusCreated {
		t.Fatalf("task creation failed with %d: %s", rec.Code, rec.Body.String())
	}

	var task model.Tarefa
	decode(t, rec, &task)
	return task.Id
}

// End-to-end pass over the board: provision users, create tasks, and walk the
// first task through the lifecycle while the ordering guard holds the second.
func TestBoardFlow(t *testing.T) {
	e := newTestServer(t)
	gestor := registerGestor(t, e, "maria")
	devID := registerProgramador(t, e, gestor, "joao")
	tipoID := createTipo(t, e, gestor, "Bug")

	t1 := createTarefa(t, e, gestor, devID, tipoID, 1)
	t2 := createTarefa(t, e, gestor, devID, tipoID, 2)

	dev := login(t, e, "joao")

	rec := do(t, e, http.MethodPut, taskEstadoPath(t2), echo.Map{"novoEstado": "Doing"}, dev)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for out-of-order start, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "ordem 1") {
		t.Fatalf("expected blocking rank in body, got %s", rec.Body.String())
	}

	rec = do(t, e, http.MethodPut, taskEstadoPath(t1), echo.Map{"novoEstado": "Doing"}, dev)
	if rec.Code != http.StatusOK {
		t.Fatalf("task 1 should start, got %d: %s", rec.Code, rec.Body.String())
	}
	var estado struct {
		Message string       `json:"message"`
		Tarefa  model.Tarefa `json:"tarefa"`
	}
	decode(t, rec, &estado)
	if estado.Message != "Estado atualizado com sucesso." {
		t.Fatalf("unexpected message %q", estado.Message)
	}
	if estado.Tarefa.DataRealInicio == nil {
		t.Fatal("expected stamped DataRealInicio in response")
	}

	rec = do(t, e, http.MethodPut, taskEstadoPath(t1), echo.Map{"novoEstado": "Done"}, dev)
	if rec.Code != http.StatusOK {
		t.Fatalf("task 1 should complete, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPut, taskEstadoPath(t2), echo.Map{"novoEstado": "Doing"}, dev)
	if rec.Code != http.StatusOK {
		t.Fatalf("task 2 should start once task 1 is done, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodGet, "/tarefas", nil, dev)
	if rec.Code != http.StatusOK {
		t.Fatalf("board listing failed with %d", rec.Code)
	}
	var board []model.TarefaDetalhe
	decode(t, rec, &board)
	if len(board) != 2 {
		t.Fatalf("expected 2 tasks on the board, got %d", len(board))
	}
}

func taskEstadoPath(id uint) string {
	return fmt.Sprintf("/tarefas/%d/estado", id)
}

func TestSessionGuards(t *testing.T) {
	e := newTestServer(t)
	gestor := registerGestor(t, e, "maria")
	devID := registerProgramador(t, e, gestor, "joao")

	rec := do(t, e, http.MethodGet, "/tarefas", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session, got %d", rec.Code)
	}

	rec = do(t, e, http.MethodGet, "/tarefas", nil, &http.Cookie{Name: testCookie, Value: "stale-token"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", rec.Code)
	}

	dev := login(t, e, "joao")
	rec = do(t, e, http.MethodPost, "/tarefas", echo.Map{
		"Descricao": "x", "StoryPoints": 1, "OrdemExecucao": 1,
		"DataPrevistaInicio": "2025-04-01", "DataPrevistaFim": "2025-04-02",
		"IdTipoTarefa": 1, "IdProgramador": devID,
	}, dev)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for developer creating tasks, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodGet, "/gestor/previsao-todo", nil, dev)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for developer on manager report, got %d", rec.Code)
	}
}

func TestLoginFailures(t *testing.T) {
	e := newTestServer(t)
	registerGestor(t, e, "maria")

	rec := do(t, e, http.MethodPost, "/login", echo.Map{
		"Username": "maria", "Password": "wrong",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}

	rec = do(t, e, http.MethodPost, "/login", echo.Map{
		"Username": "ninguem", "Password": "Password1!",
	}, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	e := newTestServer(t)
	gestor := registerGestor(t, e, "maria")

	rec := do(t, e, http.MethodGet, "/loginStatus", nil, gestor)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected live session, got %d", rec.Code)
	}
	var status struct {
		LoggedIn bool          `json:"loggedIn"`
		User     model.Account `json:"user"`
	}
	decode(t, rec, &status)
	if !status.LoggedIn || status.User.Username != "maria" {
		t.Fatalf("unexpected login status %+v", status)
	}

	rec = do(t, e, http.MethodPost, "/logout", nil, gestor)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout failed with %d", rec.Code)
	}

	rec = do(t, e, http.MethodGet, "/loginStatus", nil, gestor)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/register", echo.Map{
		"Nome": "Maria", "Username": "maria", "Password": "Password1!",
		"Papel": "Gestor",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for gestor without department, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/register", echo.Map{
		"Nome": "João", "Username": "joao", "Password": "Password1!",
		"Papel": "Programador", "NivelExperiencia": "Junior",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous programador provisioning, got %d: %s", rec.Code, rec.Body.String())
	}
}

// Catalogued exceptions keep their status and message; anything else stays an
// opaque 500.
func TestHttpErrorMapping(t *testing.T) {
	he, ok := httpError(apperrors.ErrLimiteWip).(*echo.HTTPError)
	if !ok {
		t.Fatal("expected an echo.HTTPError")
	}
	if he.Code != http.StatusConflict || he.Message != apperrors.ErrLimiteWip.Message {
		t.Fatalf("unexpected mapping %d %v", he.Code, he.Message)
	}

	he, ok = httpError(errors.New("disk full")).(*echo.HTTPError)
	if !ok {
		t.Fatal("expected an echo.HTTPError")
	}
	if he.Code != http.StatusInternalServerError || he.Message != "Erro interno do servidor." {
		t.Fatalf("store failures must stay opaque, got %d %v", he.Code, he.Message)
	}
}

func TestExportarCSVDownload(t *testing.T) {
	e := newTestServer(t)
	gestor := registerGestor(t, e, "maria")

	rec := do(t, e, http.MethodGet, "/gestor/exportar-tarefas-csv", nil, gestor)
	if rec.Code != http.StatusOK {
		t.Fatalf("export failed with %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", got)
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(got, `filename="tarefas_concluidas.csv"`) {
		t.Fatalf("expected attachment disposition, got %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "Id,Descricao,Programador") {
		t.Fatalf("expected CSV header, got %q", rec.Body.String())
	}
}
