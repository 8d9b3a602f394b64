package suggest_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"donations/internal/dto"
	"donations/internal/service/dispatch"
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

	// limit необязателен, по умолчанию решает сервис
	var limit int
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	suggestions, err := h.service.Suggest(r.Context(), donationID, limit)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidDonationID),
			errors.Is(err, donation.ErrInvalidDonationID),
			errors.Is(err, dispatch.ErrNoPickupLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, donation.ErrDonationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.SuggestResponse{
		DonationID: donationID,
		Couriers:   make([]dto.SuggestedCourier, 0, len(suggestions)),
	}
	for _, suggestion := range suggestions {
		response.Couriers = append(response.Couriers, dto.SuggestedCourier{
			CourierID:  suggestion.Courier.ID,
			Name:       suggestion.Courier.Name,
			DistanceKM: suggestion.DistanceKM,
		})
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
