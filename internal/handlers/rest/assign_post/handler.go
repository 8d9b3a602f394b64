package assign_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"donations/internal/dto"
	"donations/internal/service/donation"
	"donations/pkg/logger"
)

const headerActorID = "X-Actor-ID"

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
	actorID, err := strconv.ParseInt(r.Header.Get(headerActorID), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var assignDTO dto.AssignRequest
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	donationEntity, err := h.service.Commit(r.Context(), assignDTO.DonationID, assignDTO.CourierID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, donation.ErrInvalidDonationID),
			errors.Is(err, donation.ErrInvalidActorID),
			errors.Is(err, donation.ErrCourierNotFound),
			errors.Is(err, donation.ErrIneligibleCourier):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, donation.ErrConflictOrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AssignResponse{
		DonationID: donationEntity.ID,
		Status:     donationEntity.Status.String(),
	}
	if donationEntity.CourierID != nil {
		response.CourierID = *donationEntity.CourierID
	}
	if donationEntity.Drop != nil {
		response.Drop = &dto.DropPoint{
			Name: donationEntity.Drop.Name,
			Lat:  donationEntity.Drop.Location.Lat,
			Lng:  donationEntity.Drop.Location.Lng,
		}
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
