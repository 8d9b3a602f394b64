package donation_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
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
	var donationCreateDTO dto.DonationCreate
	err := json.NewDecoder(r.Body).Decode(&donationCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	donationModify := entities.DonationModify{
		RequesterID: pointer.ToInt64(donationCreateDTO.RequesterID),
		Item:        pointer.ToString(donationCreateDTO.Item),
		Quantity:    pointer.ToString(donationCreateDTO.Quantity),
	}
	if donationCreateDTO.Pickup != nil {
		donationModify.Pickup = &entities.GeoPoint{
			Lat: donationCreateDTO.Pickup.Lat,
			Lng: donationCreateDTO.Pickup.Lng,
		}
	}

	donationEntity, err := h.service.CreateDonation(r.Context(), donationModify)
	if err != nil {
		switch {
		case errors.Is(err, donation.ErrMissingRequiredFields),
			errors.Is(err, donation.ErrInvalidActorID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, donation.ErrRequesterNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, donation.ErrConflictOrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDonationDTO(donationEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
