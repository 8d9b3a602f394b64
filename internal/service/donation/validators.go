package donation

import "strings"

func isValidDonationID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "accepted", "rejected",
		"courier_rejected", "courier_accepted",
		"collected", "not_found", "delivered":
		return true
	default:
		return false
	}
}

func isValidText(text string) bool {
	return strings.TrimSpace(text) != ""
}
