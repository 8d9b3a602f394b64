package courier_location_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"donations/internal/dto"
	"donations/internal/entities"
	"donations/internal/service/courier"
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
	idStr := mux.Vars(r)["id"]
	Id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var locationDTO dto.CourierLocationUpdate
	err = json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierEntity, err := h.service.UpdateCourierLocation(r.Context(), Id, entities.GeoPoint{
		Lat: locationDTO.Lat,
		Lng: locationDTO.Lng,
	})
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	courierDTO := dto.Courier{
		ID:        courierEntity.ID,
		Name:      courierEntity.Name,
		Phone:     courierEntity.Phone,
		Role:      courierEntity.Role.String(),
		IsBlocked: courierEntity.IsBlocked,
	}
	if courierEntity.Location != nil {
		courierDTO.Location = &dto.GeoPoint{
			Lat: courierEntity.Location.Lat,
			Lng: courierEntity.Location.Lng,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
