package donation_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["id"]

	var donationUpdateDTO dto.DonationUpdate
	err := json.NewDecoder(r.Body).Decode(&donationUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	donationModify := entities.DonationModify{
		ID:          pointer.ToString(donationID),
		RequesterID: pointer.ToInt64(donationUpdateDTO.RequesterID),
		Item:        donationUpdateDTO.Item,
		Quantity:    donationUpdateDTO.Quantity,
	}
	if donationUpdateDTO.Pickup != nil {
		donationModify.Pickup = &entities.GeoPoint{
			Lat: donationUpdateDTO.Pickup.Lat,
			Lng: donationUpdateDTO.Pickup.Lng,
		}
	}

	donationEntity, err := h.service.UpdateDonation(r.Context(), donationModify)
	if err != nil {
		switch {
		case errors.Is(err, donation.ErrMissingRequiredFields),
			errors.Is(err, donation.ErrInvalidDonationID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, donation.ErrConflictOrNotFound):
			// Гонка с решением оператора неотличима от несуществующего ID
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
