package donation_transition_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"donations/internal/dto"
	"donations/internal/entities"
	"donations/internal/service/donation"
	"donations/pkg/logger"
)

const (
	headerActorID   = "X-Actor-ID"
	headerActorRole = "X-Actor-Role"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["id"]

	actorID, err := strconv.ParseInt(r.Header.Get(headerActorID), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actorRole, ok := parseActorRole(r.Header.Get(headerActorRole))
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var transitionDTO dto.TransitionRequest
	err = json.NewDecoder(r.Body).Decode(&transitionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	target := entities.DonationStatusType(transitionDTO.TargetStatus)

	donationEntity, err := h.service.Transition(r.Context(), donationID, actorRole, actorID, target)
	if err != nil {
		switch {
		case errors.Is(err, donation.ErrInvalidDonationID),
			errors.Is(err, donation.ErrInvalidActorID),
			errors.Is(err, donation.ErrInvalidStatus),
			errors.Is(err, donation.ErrIllegalTransition):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, donation.ErrConflictOrNotFound):
			// Потерянная гонка неотличима от несуществующего ID
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TransitionResponse{
		DonationID: donationEntity.ID,
		Status:     donationEntity.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseActorRole(raw string) (entities.ActorRole, bool) {
	switch entities.ActorRole(raw) {
	case entities.RoleDonor, entities.RoleOperator, entities.RoleCourier:
		return entities.ActorRole(raw), true
	default:
		return "", false
	}
}
