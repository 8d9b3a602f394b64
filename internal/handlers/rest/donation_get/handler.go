package donation_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"donations/internal/dto"
	"donations/internal/entities"
	"donations/internal/service/donation"
	"donations/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["id"]

	donationEntity, err := h.service.GetDonation(r.Context(), donationID)
	if err != nil {
		switch {
		case errors.Is(err, donation.ErrInvalidDonationID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, donation.ErrDonationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDonationDTO(donationEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDonationDTO(donationEntity *entities.Donation) dto.Donation {
	donationDTO := dto.Donation{
		ID:          donationEntity.ID,
		RequesterID: donationEntity.RequesterID,
		CourierID:   donationEntity.CourierID,
		Item:        donationEntity.Item,
		Quantity:    donationEntity.Quantity,
		Status:      donationEntity.Status.String(),
		CreatedAt:   donationEntity.CreatedAt,
		UpdatedAt:   donationEntity.UpdatedAt,
	}
	if donationEntity.Pickup != nil {
		donationDTO.Pickup = &dto.GeoPoint{
			Lat: donationEntity.Pickup.Lat,
			Lng: donationEntity.Pickup.Lng,
		}
	}
	if donationEntity.Drop != nil {
		donationDTO.Drop = &dto.DropPoint{
			Name: donationEntity.Drop.Name,
			Lat:  donationEntity.Drop.Location.Lat,
			Lng:  donationEntity.Drop.Location.Lng,
		}
	}
	return donationDTO
}
