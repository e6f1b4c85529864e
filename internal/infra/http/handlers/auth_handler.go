package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/funnelhq/leadfunnel/internal/entity"
	"github.com/funnelhq/leadfunnel/internal/usecase"
)

type AuthHandler struct {
	RegisterUC      *usecase.RegisterUseCase
	LoginUC         *usecase.LoginUseCase
	RequestResetUC  *usecase.RequestResetUseCase
	ResetPasswordUC *usecase.ResetPasswordUseCase
	Log             *zap.SugaredLogger
}

func NewAuthHandler(
	registerUC *usecase.RegisterUseCase,
	loginUC *usecase.LoginUseCase,
	requestResetUC *usecase.RequestResetUseCase,
	resetPasswordUC *usecase.ResetPasswordUseCase,
	log *zap.SugaredLogger,
) *AuthHandler {
	return &AuthHandler{
		RegisterUC:      registerUC,
		LoginUC:         loginUC,
		RequestResetUC:  requestResetUC,
		ResetPasswordUC: resetPasswordUC,
		Log:             log,
	}
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		if respondValidation(w, err) {
			return
		}
		if errors.Is(err, entity.ErrDuplicateAccount) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		h.Log.Errorw("register", "err", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(w, http.StatusCreated, output)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		// An unknown username and a wrong password look the same to the
		// caller.
		if errors.Is(err, entity.ErrAccountNotFound) || errors.Is(err, entity.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, entity.ErrInvalidCredentials.Error())
			return
		}
		h.Log.Errorw("login", "err", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(w, http.StatusOK, output)
}

func (h *AuthHandler) HandleRequestReset(w http.ResponseWriter, r *http.Request) {
	var input usecase.RequestResetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.RequestResetUC.Execute(r.Context(), input); err != nil {
		if respondNotFound(w, err) {
			return
		}
		h.Log.Errorw("request-reset", "err", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(w, http.StatusOK, map[string]string{"message": "reset instructions sent"})
}

func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var input usecase.ResetPasswordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.ResetPasswordUC.Execute(r.Context(), input); err != nil {
		if respondValidation(w, err) {
			return
		}
		if errors.Is(err, entity.ErrInvalidResetToken) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Errorw("reset-password", "err", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(w, http.StatusOK, map[string]string{"message": "password updated"})
}
