package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/helo/handler"
	"github.com/dmitrymomot/helo/pkg/sanitizer"
	"github.com/dmitrymomot/helo/pkg/validator"
)

// Response messages are part of the public API contract.
const (
	msgRegistered         = "Usuário cadastrado com sucesso."
	msgEmailExists        = "E-mail já existe."
	msgRegisterIncomplete = "E-mail e/ou senha não enviados."
	msgLoginIncomplete    = "Email e/ou senha não enviados."
	msgInvalidCredentials = "Credenciais inválidas!"
	msgInternal           = "Erro interno no servidor."
	msgUserFound          = "Usuário encontrado"
	msgUpdateIncomplete   = "Os dados enviados estão incompletos."
	msgUserNotFound       = "Usuário não encontrado."
	msgUserUpdated        = "Usuário atualizado com sucesso."
	msgUpdateFailed       = "Erro ao atualizar usuário."
	msgDeleteFailed       = "Ocorreu um erro ao remover o usuário."
)

type errorBody struct {
	Error string `json:"error"`
}

type loginResult struct {
	Status  bool   `json:"status"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

type registerRequest struct {
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	Senha      string `json:"senha"`
	Disciplina string `json:"disciplina"`
}

type registerResponse struct {
	Message     string `json:"message"`
	NovoUsuario *User  `json:"novoUsuario"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type listUsersResponse struct {
	Usuarios []User `json:"usuarios"`
}

type listEmailsResponse struct {
	ListaEmails []string `json:"listaEmails"`
}

type userIDRequest struct {
	ID string `path:"id"`
}

type getUserResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Usuario *User  `json:"usuario"`
}

type statusMessage struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// optionalString tells an absent key apart from a submitted one.
// A JSON null counts as submitted and empty.
type optionalString struct {
	Value string
	Set   bool
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = ""
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o optionalString) ptr() *string {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

type updateUserRequest struct {
	ID         string         `path:"id" json:"-"`
	Nome       optionalString `json:"nome"`
	Email      optionalString `json:"email"`
	Senha      optionalString `json:"senha"`
	Disciplina optionalString `json:"disciplina"`

	// Blank names the other keys of the body that were null or empty.
	// Their values are otherwise ignored.
	Blank []string `json:"-"`
}

var userFields = []string{"nome", "email", "senha", "disciplina"}

func (r *updateUserRequest) UnmarshalJSON(data []byte) error {
	type fields updateUserRequest
	f := fields{ID: r.ID}
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if !isUserField(key) && isBlankValue(value) {
			f.Blank = append(f.Blank, key)
		}
	}

	*r = updateUserRequest(f)
	return nil
}

// isUserField matches keys the way encoding/json matches struct fields.
func isUserField(key string) bool {
	for _, name := range userFields {
		if strings.EqualFold(key, name) {
			return true
		}
	}
	return false
}

// isBlankValue reports null, and strings that are empty once sanitized.
func isBlankValue(raw json.RawMessage) bool {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	return s == nil || sanitizer.UserInput(*s) == ""
}

func (r updateUserRequest) patch() UserPatch {
	return UserPatch{
		Nome:       r.Nome.ptr(),
		Email:      r.Email.ptr(),
		Senha:      r.Senha.ptr(),
		Disciplina: r.Disciplina.ptr(),
	}
}

type updateUserResponse struct {
	Mensagem          string `json:"mensagem"`
	Status            string `json:"status"`
	UsuarioAtualizado *User  `json:"usuarioAtualizado,omitempty"`
	Error             string `json:"error,omitempty"`
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}

func status(code int) string {
	return strconv.Itoa(code)
}

type httpHandler struct {
	svc *Service
}

func (h *httpHandler) register(ctx handler.Context, req registerRequest) handler.Response {
	user, err := h.svc.Register(ctx, NewUser{
		Nome:       req.Nome,
		Email:      req.Email,
		Senha:      req.Senha,
		Disciplina: req.Disciplina,
	})
	switch {
	case err == nil:
		return handler.JSON(registerResponse{Message: msgRegistered, NovoUsuario: user},
			handler.WithJSONStatus(http.StatusCreated))
	case validator.IsValidationError(err):
		return handler.JSON(errorBody{Error: msgRegisterIncomplete}, handler.WithJSONStatus(http.StatusBadRequest))
	case errors.Is(err, ErrEmailAlreadyExists):
		return handler.JSON(errorBody{Error: msgEmailExists}, handler.WithJSONStatus(http.StatusBadRequest))
	default:
		return handler.JSON(errorBody{Error: msgInternal}, handler.WithJSONStatus(http.StatusInternalServerError))
	}
}

func (h *httpHandler) login(ctx handler.Context, req loginRequest) handler.Response {
	token, err := h.svc.Login(ctx, req.Email, req.Senha)
	switch {
	case err == nil:
		return handler.JSON(loginResult{Status: true, Token: token})
	case validator.IsValidationError(err):
		return handler.JSON(loginResult{Message: msgLoginIncomplete}, handler.WithJSONStatus(http.StatusBadRequest))
	case errors.Is(err, ErrInvalidCredentials):
		return handler.JSON(loginResult{Message: msgInvalidCredentials}, handler.WithJSONStatus(http.StatusUnauthorized))
	default:
		return handler.JSON(loginResult{Message: msgInternal}, handler.WithJSONStatus(http.StatusInternalServerError))
	}
}

func (h *httpHandler) list(ctx handler.Context, _ struct{}) handler.Response {
	users, err := h.svc.List(ctx)
	if err != nil {
		return handler.JSON(errorBody{Error: msgInternal}, handler.WithJSONStatus(http.StatusInternalServerError))
	}
	return handler.JSON(listUsersResponse{Usuarios: users})
}

func (h *httpHandler) listEmails(ctx handler.Context, _ struct{}) handler.Response {
	emails, err := h.svc.ListEmails(ctx)
	if err != nil {
		return handler.JSON(errorBody{Error: msgInternal}, handler.WithJSONStatus(http.StatusInternalServerError))
	}
	return handler.JSON(listEmailsResponse{ListaEmails: emails})
}

// get answers 200 with a null user for unknown ids.
func (h *httpHandler) get(ctx handler.Context, req userIDRequest) handler.Response {
	fail := func(err error) handler.Response {
		return handler.JSON(statusMessage{
			Message: msgInternal,
			Status:  status(http.StatusInternalServerError),
			Error:   err.Error(),
		}, handler.WithJSONStatus(http.StatusInternalServerError))
	}

	id, err := parseUserID(req.ID)
	if err != nil {
		return fail(err)
	}

	user, err := h.svc.Get(ctx, id)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return fail(err)
	}
	return handler.JSON(getUserResponse{Message: msgUserFound, Status: status(http.StatusOK), Usuario: user})
}

// update checks for blank values before it looks at the id.
func (h *httpHandler) update(ctx handler.Context, req updateUserRequest) handler.Response {
	incomplete := handler.JSON(updateUserResponse{
		Mensagem: msgUpdateIncomplete,
		Status:   status(http.StatusBadRequest),
	}, handler.WithJSONStatus(http.StatusBadRequest))
	fail := func(err error) handler.Response {
		return handler.JSON(updateUserResponse{
			Mensagem: msgUpdateFailed,
			Status:   status(http.StatusInternalServerError),
			Error:    err.Error(),
		}, handler.WithJSONStatus(http.StatusInternalServerError))
	}

	patch := req.patch()
	if len(req.Blank) > 0 || patch.Validate() != nil {
		return incomplete
	}

	id, err := parseUserID(req.ID)
	if err != nil {
		return fail(err)
	}

	user, err := h.svc.Update(ctx, id, patch)
	switch {
	case err == nil:
		return handler.JSON(updateUserResponse{
			Mensagem:          msgUserUpdated,
			Status:            status(http.StatusOK),
			UsuarioAtualizado: user,
		})
	case validator.IsValidationError(err):
		return incomplete
	case errors.Is(err, ErrUserNotFound):
		return handler.JSON(updateUserResponse{
			Mensagem: msgUserNotFound,
			Status:   status(http.StatusNotFound),
		}, handler.WithJSONStatus(http.StatusNotFound))
	default:
		return fail(err)
	}
}

func (h *httpHandler) delete(ctx handler.Context, req userIDRequest) handler.Response {
	fail := func(err error) handler.Response {
		return handler.JSON(statusMessage{
			Message: msgDeleteFailed,
			Status:  status(http.StatusInternalServerError),
			Error:   err.Error(),
		}, handler.WithJSONStatus(http.StatusInternalServerError))
	}

	id, err := parseUserID(req.ID)
	if err != nil {
		return fail(err)
	}

	nome, err := h.svc.Delete(ctx, id)
	switch {
	case err == nil:
		return handler.JSON(statusMessage{
			Message: fmt.Sprintf("Usuário %s foi removido com sucesso.", nome),
			Status:  status(http.StatusOK),
		})
	case errors.Is(err, ErrUserNotFound):
		return handler.JSON(statusMessage{
			Message: fmt.Sprintf("Usuário com ID %s não encontrado.", req.ID),
			Status:  status(http.StatusNotFound),
		}, handler.WithJSONStatus(http.StatusNotFound))
	default:
		return fail(err)
	}
}
